package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// profile.go - Generator profile loading and validation.
//
// The profile carries every reference table the generator draws from, so tests
// and deployments can swap the tables without touching code. Fields left empty
// in the YAML fall back to the built-in defaults.

// GeneratorProfile describes the reference data and bounds used to synthesize
// employee records.
type GeneratorProfile struct {
	Departments  []string           `yaml:"departments"`
	BaseSalaries map[string]float64 `yaml:"base_salaries"`
	FirstNames   []string           `yaml:"first_names"`
	LastNames    []string           `yaml:"last_names"`

	// SalaryVariance is the maximum relative perturbation applied to the
	// department base salary, e.g. 0.20 for ±20%.
	SalaryVariance float64 `yaml:"salary_variance"`

	// Joining dates are sampled uniformly between EarliestJoining and now.
	EarliestJoining time.Time `yaml:"earliest_joining"`

	MinScore float64 `yaml:"min_score"`
	MaxScore float64 `yaml:"max_score"`

	// StartID is the first employee ID assigned in a batch.
	StartID int `yaml:"start_id"`
}

// DefaultProfile returns the built-in reference tables.
func DefaultProfile() GeneratorProfile {
	return GeneratorProfile{
		Departments: []string{"Engineering", "Sales", "Marketing", "HR", "Finance", "Operations"},
		BaseSalaries: map[string]float64{
			"Engineering": 80000,
			"Sales":       60000,
			"Marketing":   55000,
			"HR":          50000,
			"Finance":     70000,
			"Operations":  52000,
		},
		FirstNames: []string{
			"Ahmed", "Fatima", "Mohammad", "Ayesha", "Karim",
			"Nadia", "Rahim", "Zara", "Ali", "Samira",
			"Hassan", "Laila", "Omar", "Sara", "Tariq",
			"Amina", "Bilal", "Huda", "Ibrahim", "Maryam",
		},
		LastNames: []string{
			"Khan", "Ahmed", "Rahman", "Hassan", "Ali",
			"Mahmud", "Hossain", "Islam", "Chowdhury", "Akter",
			"Siddiqui", "Malik", "Sheikh", "Hussain", "Begum",
		},
		SalaryVariance:  0.20,
		EarliestJoining: time.Now().AddDate(-5, 0, 0),
		MinScore:        1.0,
		MaxScore:        10.0,
		StartID:         1,
	}
}

// LoadProfile loads a generator profile from a YAML file.
func LoadProfile(path string) (GeneratorProfile, error) {
	file, err := os.Open(path)
	if err != nil {
		return GeneratorProfile{}, fmt.Errorf("opening profile file %s: %w", path, err)
	}
	defer file.Close()

	return LoadProfileFromReader(file)
}

// LoadProfileFromReader loads a profile from an io.Reader.
func LoadProfileFromReader(r io.Reader) (GeneratorProfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return GeneratorProfile{}, fmt.Errorf("reading profile: %w", err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return GeneratorProfile{}, fmt.Errorf("parsing YAML profile: %w", err)
	}

	profile.applyDefaults()

	if err := ValidateProfile(profile); err != nil {
		return GeneratorProfile{}, fmt.Errorf("validating profile: %w", err)
	}

	return profile, nil
}

// LoadProfileFromString loads a profile from a YAML string.
func LoadProfileFromString(yamlContent string) (GeneratorProfile, error) {
	return LoadProfileFromReader(strings.NewReader(yamlContent))
}

func (p *GeneratorProfile) applyDefaults() {
	def := DefaultProfile()
	if len(p.Departments) == 0 {
		p.Departments = def.Departments
	}
	if len(p.BaseSalaries) == 0 {
		p.BaseSalaries = def.BaseSalaries
	}
	if len(p.FirstNames) == 0 {
		p.FirstNames = def.FirstNames
	}
	if len(p.LastNames) == 0 {
		p.LastNames = def.LastNames
	}
	if p.SalaryVariance == 0 {
		p.SalaryVariance = def.SalaryVariance
	}
	if p.EarliestJoining.IsZero() {
		p.EarliestJoining = def.EarliestJoining
	}
	if p.MinScore == 0 && p.MaxScore == 0 {
		p.MinScore = def.MinScore
		p.MaxScore = def.MaxScore
	}
	if p.StartID == 0 {
		p.StartID = def.StartID
	}
}

// ValidateProfile checks that a profile can actually drive generation.
func ValidateProfile(p GeneratorProfile) error {
	if len(p.Departments) == 0 {
		return fmt.Errorf("profile has no departments")
	}
	for _, dept := range p.Departments {
		if _, ok := p.BaseSalaries[dept]; !ok {
			return fmt.Errorf("department %q has no base salary", dept)
		}
	}
	if len(p.FirstNames) == 0 || len(p.LastNames) == 0 {
		return fmt.Errorf("profile has empty name pools")
	}
	if p.SalaryVariance < 0 || p.SalaryVariance > 1 {
		return fmt.Errorf("salary variance %v outside [0, 1]", p.SalaryVariance)
	}
	if p.MinScore >= p.MaxScore {
		return fmt.Errorf("score bounds invalid: min %v >= max %v", p.MinScore, p.MaxScore)
	}
	if p.EarliestJoining.After(time.Now()) {
		return fmt.Errorf("earliest joining date %s is in the future", p.EarliestJoining.Format("2006-01-02"))
	}
	if p.StartID <= 0 {
		return fmt.Errorf("start id must be positive, got %d", p.StartID)
	}
	return nil
}
