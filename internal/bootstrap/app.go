package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/analyzer"
	"github.com/Anjuman-AI/employee-data-analysis-system/internal/config"
	"github.com/Anjuman-AI/employee-data-analysis-system/internal/generator"
	"github.com/Anjuman-AI/employee-data-analysis-system/internal/logger"
	"github.com/Anjuman-AI/employee-data-analysis-system/internal/report"
)

// ErrInvalidTopN is returned when a negative top-performer count is requested.
var ErrInvalidTopN = errors.New("top-N size must not be negative")

// Options configures one pipeline run. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	Count       int
	Seed        int64
	TopN        int
	CSVPath     string
	ReportPath  string
	ExcelPath   string // empty disables the Excel export
	ProfilePath string // empty uses the built-in reference tables
}

// DefaultOptions returns the documented defaults for a run.
func DefaultOptions() Options {
	return Options{
		Count:      100,
		Seed:       time.Now().UnixNano(),
		TopN:       3,
		CSVPath:    "employees.csv",
		ReportPath: "analysis_report.txt",
	}
}

// App wires configuration, logging and the three pipeline stages.
type App struct {
	profile config.GeneratorProfile
}

func NewApp() *App {
	return &App{}
}

// Initialize loads environment configuration and sets up logging.
func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.InfoLog(ctx, "Environment configuration loaded")

	a.profile = config.DefaultProfile()
	return nil
}

// Run executes generate → analyze → write sequentially and returns the first
// error. Validation failures abort before any output is produced; files
// already written when a later write fails are left on disk.
func (a *App) Run(ctx context.Context, opts Options) error {
	if opts.Count <= 0 {
		return fmt.Errorf("record count %d: %w", opts.Count, generator.ErrInvalidCount)
	}
	if opts.TopN < 0 {
		return fmt.Errorf("top-N size %d: %w", opts.TopN, ErrInvalidTopN)
	}

	profile := a.profile
	if len(profile.Departments) == 0 {
		profile = config.DefaultProfile()
	}
	if opts.ProfilePath != "" {
		loaded, err := config.LoadProfile(opts.ProfilePath)
		if err != nil {
			return err
		}
		profile = loaded
	}

	gen := generator.New(profile, opts.Seed)
	employees, err := gen.Generate(opts.Count)
	if err != nil {
		return err
	}
	logger.InfoLog(ctx, "Generated %d employee records (seed %d)", len(employees), opts.Seed)

	an := analyzer.New(employees)
	data := report.TextReportData{
		GeneratedAt:     time.Now(),
		TotalEmployees:  len(employees),
		DepartmentStats: an.DepartmentStatistics(),
		TopPerformers:   an.TopPerformers(opts.TopN),
		Distribution:    an.SalaryDistribution(),
		Overall:         an.Overall(),
	}
	logger.InfoLog(ctx, "Computed statistics for %d departments", len(data.DepartmentStats))

	if err := report.SaveCSV(opts.CSVPath, employees); err != nil {
		logger.ErrorLog(ctx, "CSV export failed", err)
		return err
	}
	logger.InfoLog(ctx, "Employee data saved to %s", opts.CSVPath)

	if err := report.SaveTextReport(opts.ReportPath, report.BuildTextReport(data)); err != nil {
		logger.ErrorLog(ctx, "Text report failed", err)
		return err
	}
	logger.InfoLog(ctx, "Analysis report saved to %s", opts.ReportPath)

	if opts.ExcelPath != "" {
		if err := report.SaveExcel(opts.ExcelPath, employees); err != nil {
			logger.ErrorLog(ctx, "Excel export failed", err)
			return err
		}
		logger.InfoLog(ctx, "Excel export saved to %s", opts.ExcelPath)
	}

	return nil
}
