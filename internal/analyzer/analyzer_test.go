package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/domain"
)

func emp(id int, dept string, salary, score float64) domain.Employee {
	return domain.Employee{
		ID:               id,
		Name:             "Test Person",
		Department:       dept,
		Salary:           salary,
		JoiningDate:      time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
		PerformanceScore: score,
	}
}

func TestDepartmentStatistics(t *testing.T) {
	a := New([]domain.Employee{
		emp(1, "Engineering", 100000, 8.0),
		emp(2, "Engineering", 110000, 7.0),
		emp(3, "Engineering", 120000, 9.0),
		emp(4, "Sales", 60000, 6.5),
	})

	stats := a.DepartmentStatistics()
	require.Len(t, stats, 2)

	eng := stats["Engineering"]
	assert.Equal(t, 3, eng.Count)
	assert.Equal(t, 110000.00, eng.AvgSalary)
	assert.Equal(t, 8.0, eng.AvgPerformance)

	sales := stats["Sales"]
	assert.Equal(t, 1, sales.Count)
	assert.Equal(t, 60000.00, sales.AvgSalary)
	assert.Equal(t, 6.5, sales.AvgPerformance)
}

func TestDepartmentStatisticsOmitsEmptyGroups(t *testing.T) {
	a := New([]domain.Employee{emp(1, "HR", 50000, 5.0)})

	stats := a.DepartmentStatistics()
	require.Len(t, stats, 1)
	_, ok := stats["Engineering"]
	assert.False(t, ok)
}

func TestDepartmentStatisticsRoundsAverages(t *testing.T) {
	a := New([]domain.Employee{
		emp(1, "Finance", 70000.10, 7.1),
		emp(2, "Finance", 70000.15, 7.2),
		emp(3, "Finance", 70000.15, 7.2),
	})

	stats := a.DepartmentStatistics()
	fin := stats["Finance"]
	assert.Equal(t, 70000.13, fin.AvgSalary)
	assert.Equal(t, 7.17, fin.AvgPerformance)
}

func TestDepartmentStatisticsIdempotent(t *testing.T) {
	a := New([]domain.Employee{
		emp(1, "Engineering", 100000, 8.0),
		emp(2, "Sales", 60000, 6.5),
	})

	first := a.DepartmentStatistics()
	second := a.DepartmentStatistics()
	assert.Equal(t, first, second)
}

func TestTopPerformersTieBreakByID(t *testing.T) {
	a := New([]domain.Employee{
		emp(3, "Sales", 60000, 7.0),
		emp(2, "Engineering", 110000, 9.8),
		emp(1, "Engineering", 100000, 9.8),
	})

	top := a.TopPerformers(2)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].ID)
	assert.Equal(t, 2, top[1].ID)
}

func TestTopPerformersKExceedsPopulation(t *testing.T) {
	a := New([]domain.Employee{
		emp(1, "HR", 50000, 5.0),
		emp(2, "HR", 51000, 9.0),
	})

	top := a.TopPerformers(10)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ID)
	assert.Equal(t, 1, top[1].ID)
}

func TestTopPerformersNonPositiveK(t *testing.T) {
	a := New([]domain.Employee{emp(1, "HR", 50000, 5.0)})

	assert.Empty(t, a.TopPerformers(0))
	assert.Empty(t, a.TopPerformers(-3))
}

func TestTopPerformersDoesNotMutateInput(t *testing.T) {
	input := []domain.Employee{
		emp(1, "HR", 50000, 2.0),
		emp(2, "HR", 51000, 9.0),
		emp(3, "HR", 52000, 5.0),
	}
	a := New(input)
	a.TopPerformers(3)

	assert.Equal(t, 1, input[0].ID)
	assert.Equal(t, 2, input[1].ID)
	assert.Equal(t, 3, input[2].ID)
}

func TestSalaryDistribution(t *testing.T) {
	a := New([]domain.Employee{
		emp(1, "HR", 45000, 5.0),
		emp(2, "Sales", 65000, 5.0),
		emp(3, "Engineering", 95000, 5.0),
		emp(4, "Engineering", 120000, 5.0),
	})

	buckets := a.SalaryDistribution()
	require.Len(t, buckets, 5)

	byLabel := make(map[string]domain.SalaryBucket)
	for _, b := range buckets {
		byLabel[b.Label] = b
	}

	assert.Equal(t, 1, byLabel["0-50k"].Count)
	assert.Equal(t, 1, byLabel["50k-70k"].Count)
	assert.Equal(t, 0, byLabel["70k-90k"].Count)
	assert.Equal(t, 1, byLabel["90k-100k"].Count)
	assert.Equal(t, 1, byLabel["100k+"].Count)
	assert.Equal(t, 25.0, byLabel["0-50k"].Percent)
}

func TestOverall(t *testing.T) {
	a := New([]domain.Employee{
		emp(1, "HR", 40000, 4.0),
		emp(2, "Sales", 60000, 6.0),
		emp(3, "Engineering", 80000, 8.0),
	})

	stat := a.Overall()
	assert.Equal(t, 3, stat.Count)
	assert.Equal(t, 60000.00, stat.AvgSalary)
	assert.Equal(t, 60000.00, stat.MedianSalary)
	assert.Equal(t, 40000.00, stat.MinSalary)
	assert.Equal(t, 80000.00, stat.MaxSalary)
	assert.Equal(t, 6.0, stat.AvgPerformance)
}

func TestEmptyInput(t *testing.T) {
	a := New(nil)

	assert.Empty(t, a.DepartmentStatistics())
	assert.Empty(t, a.TopPerformers(5))
	assert.Equal(t, domain.OverallStatistic{}, a.Overall())

	for _, b := range a.SalaryDistribution() {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Percent)
	}
}
