package analyzer

import (
	"math"
	"sort"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/domain"
)

// Analyzer computes descriptive statistics over an in-memory batch of
// employee records. Every operation is a pure function of the input slice:
// the batch is never mutated and repeated calls return identical results.
type Analyzer struct {
	employees []domain.Employee
}

func New(employees []domain.Employee) *Analyzer {
	return &Analyzer{employees: employees}
}

// DepartmentStatistics groups the batch by department and computes count,
// average salary and average performance per group. Only departments present
// in the data appear; an empty batch yields an empty map. Averages are
// rounded half away from zero to 2 decimals.
func (a *Analyzer) DepartmentStatistics() map[string]domain.DepartmentStatistic {
	type accum struct {
		count       int
		salary      float64
		performance float64
	}

	acc := make(map[string]*accum)
	for _, emp := range a.employees {
		s, ok := acc[emp.Department]
		if !ok {
			s = &accum{}
			acc[emp.Department] = s
		}
		s.count++
		s.salary += emp.Salary
		s.performance += emp.PerformanceScore
	}

	stats := make(map[string]domain.DepartmentStatistic, len(acc))
	for dept, s := range acc {
		n := float64(s.count)
		stats[dept] = domain.DepartmentStatistic{
			Department:     dept,
			Count:          s.count,
			AvgSalary:      roundTo2(s.salary / n),
			AvgPerformance: roundTo2(s.performance / n),
		}
	}
	return stats
}

// TopPerformers returns the k highest-scoring employees, ties broken by
// ascending ID so the ordering is reproducible. k larger than the batch
// returns the whole batch fully sorted; k <= 0 returns an empty slice.
func (a *Analyzer) TopPerformers(k int) []domain.Employee {
	if k <= 0 {
		return []domain.Employee{}
	}

	ranked := make([]domain.Employee, len(a.employees))
	copy(ranked, a.employees)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].PerformanceScore != ranked[j].PerformanceScore {
			return ranked[i].PerformanceScore > ranked[j].PerformanceScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}

// salaryRanges are the fixed histogram buckets of the salary distribution.
// Bounds are half-open: [low, high).
var salaryRanges = []struct {
	label string
	low   float64
	high  float64
}{
	{"0-50k", 0, 50000},
	{"50k-70k", 50000, 70000},
	{"70k-90k", 70000, 90000},
	{"90k-100k", 90000, 100000},
	{"100k+", 100000, math.Inf(1)},
}

// SalaryDistribution counts employees per fixed salary range. All buckets are
// always present, in ascending range order, so the histogram shape is stable.
func (a *Analyzer) SalaryDistribution() []domain.SalaryBucket {
	buckets := make([]domain.SalaryBucket, len(salaryRanges))
	for i, r := range salaryRanges {
		buckets[i].Label = r.label
	}

	for _, emp := range a.employees {
		for i, r := range salaryRanges {
			if emp.Salary >= r.low && emp.Salary < r.high {
				buckets[i].Count++
				break
			}
		}
	}

	total := len(a.employees)
	if total > 0 {
		for i := range buckets {
			buckets[i].Percent = roundTo2(float64(buckets[i].Count) / float64(total) * 100)
		}
	}
	return buckets
}

// Overall computes batch-wide salary and performance summaries. The median of
// an even-length batch takes the upper-middle element.
func (a *Analyzer) Overall() domain.OverallStatistic {
	n := len(a.employees)
	if n == 0 {
		return domain.OverallStatistic{}
	}

	salaries := make([]float64, n)
	var salarySum, perfSum float64
	for i, emp := range a.employees {
		salaries[i] = emp.Salary
		salarySum += emp.Salary
		perfSum += emp.PerformanceScore
	}
	sort.Float64s(salaries)

	return domain.OverallStatistic{
		Count:          n,
		AvgSalary:      roundTo2(salarySum / float64(n)),
		MedianSalary:   salaries[n/2],
		MinSalary:      salaries[0],
		MaxSalary:      salaries[n-1],
		AvgPerformance: roundTo2(perfSum / float64(n)),
	}
}

// roundTo2 rounds half away from zero to 2 decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
