package domain

import "time"

// DateLayout is the ISO 8601 layout used for joining dates in every export.
const DateLayout = "2006-01-02"

// Employee represents one synthesized employee record. Records are treated as
// immutable after generation; analysis and reporting never modify them.
type Employee struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Department       string    `json:"department"`
	Salary           float64   `json:"salary"`
	JoiningDate      time.Time `json:"joining_date"`
	PerformanceScore float64   `json:"performance_score"`
}

// DepartmentStatistic holds per-department aggregates, recomputed fresh from
// the current batch on every run.
type DepartmentStatistic struct {
	Department     string  `json:"department"`
	Count          int     `json:"count"`
	AvgSalary      float64 `json:"avg_salary"`
	AvgPerformance float64 `json:"avg_performance"`
}

// OverallStatistic summarizes the whole batch across departments.
type OverallStatistic struct {
	Count          int     `json:"count"`
	AvgSalary      float64 `json:"avg_salary"`
	MedianSalary   float64 `json:"median_salary"`
	MinSalary      float64 `json:"min_salary"`
	MaxSalary      float64 `json:"max_salary"`
	AvgPerformance float64 `json:"avg_performance"`
}

// SalaryBucket is one row of the salary distribution histogram.
type SalaryBucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}
