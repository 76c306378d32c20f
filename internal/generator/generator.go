package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/config"
	"github.com/Anjuman-AI/employee-data-analysis-system/internal/domain"
)

// ErrInvalidCount is returned when a non-positive record count is requested.
var ErrInvalidCount = errors.New("record count must be positive")

// Generator synthesizes employee records from the reference tables in its
// profile. All randomness flows through the injected seeded source, so the
// same seed and profile always reproduce the same batch.
type Generator struct {
	profile config.GeneratorProfile
	rng     *rand.Rand
	now     func() time.Time
}

// New creates a generator with an explicitly seeded randomness source.
func New(profile config.GeneratorProfile, seed int64) *Generator {
	return &Generator{
		profile: profile,
		rng:     rand.New(rand.NewSource(seed)),
		now:     time.Now,
	}
}

// Generate produces exactly n employee records with sequential IDs starting
// at the profile's StartID. n <= 0 is rejected before any work begins.
func (g *Generator) Generate(n int) ([]domain.Employee, error) {
	if n <= 0 {
		return nil, fmt.Errorf("generate %d employees: %w", n, ErrInvalidCount)
	}

	employees := make([]domain.Employee, 0, n)
	for i := 0; i < n; i++ {
		dept := g.profile.Departments[g.rng.Intn(len(g.profile.Departments))]

		employees = append(employees, domain.Employee{
			ID:               g.profile.StartID + i,
			Name:             g.randomName(),
			Department:       dept,
			Salary:           g.randomSalary(dept),
			JoiningDate:      g.randomJoiningDate(),
			PerformanceScore: g.randomScore(),
		})
	}
	return employees, nil
}

func (g *Generator) randomName() string {
	first := g.profile.FirstNames[g.rng.Intn(len(g.profile.FirstNames))]
	last := g.profile.LastNames[g.rng.Intn(len(g.profile.LastNames))]
	return first + " " + last
}

// randomSalary perturbs the department base by up to ±SalaryVariance and
// rounds to currency precision. The result is clamped at zero.
func (g *Generator) randomSalary(dept string) float64 {
	base := g.profile.BaseSalaries[dept]
	variation := (g.rng.Float64()*2 - 1) * g.profile.SalaryVariance
	salary := roundTo(base*(1+variation), 2)
	if salary < 0 {
		salary = 0
	}
	return salary
}

// randomJoiningDate samples a whole day uniformly between the profile's
// earliest date and today. Day granularity keeps batches reproducible for a
// given seed regardless of the wall-clock time within the run.
func (g *Generator) randomJoiningDate() time.Time {
	earliest := g.profile.EarliestJoining
	now := g.now()
	days := int(now.Sub(earliest).Hours() / 24)
	if days <= 0 {
		return truncateDay(earliest)
	}
	date := truncateDay(earliest.AddDate(0, 0, g.rng.Intn(days+1)))
	for date.After(now) {
		date = date.AddDate(0, 0, -1)
	}
	return date
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (g *Generator) randomScore() float64 {
	min, max := g.profile.MinScore, g.profile.MaxScore
	return roundTo(min+g.rng.Float64()*(max-min), 1)
}

// roundTo rounds half away from zero at the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
