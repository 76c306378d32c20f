package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/domain"
)

const excelSheet = "Employees"

// SaveExcel writes the employee batch to an xlsx workbook with the same
// columns as the CSV export and a styled header row.
func SaveExcel(path string, employees []domain.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", excelSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(excelSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	lastCell, _ := excelize.CoordinatesToCellName(len(csvHeader), 1)
	if err := f.SetCellStyle(excelSheet, "A1", lastCell, headerStyle); err != nil {
		return fmt.Errorf("styling header row: %w", err)
	}

	for i, emp := range employees {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			emp.ID,
			emp.Name,
			emp.Department,
			emp.Salary,
			emp.JoiningDate.Format(domain.DateLayout),
			emp.PerformanceScore,
		}
		if err := f.SetSheetRow(excelSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row for employee %d: %w", emp.ID, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving Excel export %s: %w", path, err)
	}
	return nil
}
