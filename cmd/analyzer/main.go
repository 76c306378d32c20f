package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/bootstrap"
	"github.com/Anjuman-AI/employee-data-analysis-system/internal/config"
	"github.com/Anjuman-AI/employee-data-analysis-system/internal/logger"
)

func main() {
	defaults := bootstrap.DefaultOptions()

	count := flag.Int("count", defaults.Count, "Number of employee records to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 uses a time-based seed)")
	topN := flag.Int("top", defaults.TopN, "Number of top performers to rank")
	csvPath := flag.String("csv", defaults.CSVPath, "Path of the CSV export")
	reportPath := flag.String("report", defaults.ReportPath, "Path of the text analysis report")
	excelPath := flag.String("xlsx", "", "Path of the optional Excel export (empty disables it)")
	profilePath := flag.String("profile", "", "YAML generator profile (empty uses built-in tables)")

	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 Employee Data Analysis System")
	fmt.Println(strings.Repeat("=", 50))

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Initialization failed: %v\n", err)
		os.Exit(1)
	}

	opts := defaults
	opts.Count = *count
	opts.CSVPath = *csvPath
	opts.ReportPath = *reportPath
	opts.ExcelPath = *excelPath
	opts.ProfilePath = *profilePath
	if *seed != 0 {
		opts.Seed = *seed
	}

	// The -top flag wins over the TOP_N environment default.
	opts.TopN = config.DefaultEnvConfig.TOP_N
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "top" {
			opts.TopN = *topN
		}
	})

	if err := app.Run(ctx, opts); err != nil {
		logger.ErrorLog(ctx, "Pipeline run failed", err)
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Done!")
	fmt.Println("Generated files:")
	fmt.Printf("  • %s - Employee data\n", opts.CSVPath)
	fmt.Printf("  • %s - Analysis report\n", opts.ReportPath)
	if opts.ExcelPath != "" {
		fmt.Printf("  • %s - Excel export\n", opts.ExcelPath)
	}
}
