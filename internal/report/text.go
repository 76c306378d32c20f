package report

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/domain"
)

const reportWidth = 80

// TextReportData carries everything the text report renders. Values come
// straight from the analyzer; the report never recomputes them.
type TextReportData struct {
	GeneratedAt     time.Time
	TotalEmployees  int
	DepartmentStats map[string]domain.DepartmentStatistic
	TopPerformers   []domain.Employee
	Distribution    []domain.SalaryBucket
	Overall         domain.OverallStatistic
}

// BuildTextReport renders the human-readable analysis report. Department
// blocks are sorted by name so the layout is stable across runs.
func BuildTextReport(data TextReportData) string {
	var b strings.Builder

	rule := strings.Repeat("=", reportWidth)
	thin := strings.Repeat("-", reportWidth)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "EMPLOYEE DATA ANALYSIS REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Generated: %s\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Employees Analyzed: %d\n\n", data.TotalEmployees)

	fmt.Fprintln(&b, "DEPARTMENT STATISTICS:")
	fmt.Fprintln(&b, thin)
	for _, dept := range sortedDepartments(data.DepartmentStats) {
		stat := data.DepartmentStats[dept]
		fmt.Fprintf(&b, "\n%s:\n", stat.Department)
		fmt.Fprintf(&b, "  Number of Employees: %d\n", stat.Count)
		fmt.Fprintf(&b, "  Average Salary: %s\n", FormatCurrency(stat.AvgSalary))
		fmt.Fprintf(&b, "  Average Performance Score: %.2f/10\n", stat.AvgPerformance)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "TOP %d PERFORMERS:\n", len(data.TopPerformers))
	fmt.Fprintln(&b, thin)
	for rank, emp := range data.TopPerformers {
		fmt.Fprintf(&b, "%2d. %-25s (%-12s) - Score: %.1f/10\n",
			rank+1, emp.Name, emp.Department, emp.PerformanceScore)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "SALARY DISTRIBUTION:")
	fmt.Fprintln(&b, thin)
	for _, bucket := range data.Distribution {
		bar := strings.Repeat("#", int(bucket.Percent/2))
		fmt.Fprintf(&b, "%-12s: %3d employees (%5.1f%%) %s\n",
			bucket.Label, bucket.Count, bucket.Percent, bar)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "OVERALL STATISTICS:")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Average Salary (All Departments): %s\n", FormatCurrency(data.Overall.AvgSalary))
	fmt.Fprintf(&b, "Median Salary: %s\n", FormatCurrency(data.Overall.MedianSalary))
	fmt.Fprintf(&b, "Salary Range: %s - %s\n",
		FormatCurrency(data.Overall.MinSalary), FormatCurrency(data.Overall.MaxSalary))
	fmt.Fprintf(&b, "Average Performance Score: %.2f/10\n\n", data.Overall.AvgPerformance)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "End of Report")
	fmt.Fprintln(&b, rule)

	return b.String()
}

// SaveTextReport writes the rendered report to path.
func SaveTextReport(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing text report %s: %w", path, err)
	}
	return nil
}

func sortedDepartments(stats map[string]domain.DepartmentStatistic) []string {
	depts := make([]string, 0, len(stats))
	for dept := range stats {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	return depts
}

// FormatCurrency formats an amount with a dollar prefix and comma separators.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	intPart := int64(amount)
	decPart := int64((amount-float64(intPart))*100 + 0.5)
	if decPart == 100 {
		intPart++
		decPart = 0
	}

	intStr := fmt.Sprintf("%d", intPart)
	if len(intStr) > 3 {
		var parts []string
		for len(intStr) > 3 {
			parts = append([]string{intStr[len(intStr)-3:]}, parts...)
			intStr = intStr[:len(intStr)-3]
		}
		parts = append([]string{intStr}, parts...)
		intStr = strings.Join(parts, ",")
	}

	result := fmt.Sprintf("$%s.%02d", intStr, decPart)
	if negative {
		result = "-" + result
	}
	return result
}
