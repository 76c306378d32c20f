package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Anjuman-AI/employee-data-analysis-system/internal/domain"
)

// csvHeader is the documented column order of the tabular export.
var csvHeader = []string{"id", "name", "department", "salary", "joining_date", "performance_score"}

// WriteCSV writes one row per employee in the documented column order,
// preceded by a header row. Salary is serialized with 2 decimals, the
// performance score with 1, and the joining date as YYYY-MM-DD. Names
// containing delimiters or quotes are quoted by the csv writer, so the file
// round-trips losslessly.
func WriteCSV(w io.Writer, employees []domain.Employee) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, emp := range employees {
		row := []string{
			strconv.Itoa(emp.ID),
			emp.Name,
			emp.Department,
			strconv.FormatFloat(emp.Salary, 'f', 2, 64),
			emp.JoiningDate.Format(domain.DateLayout),
			strconv.FormatFloat(emp.PerformanceScore, 'f', 1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for employee %d: %w", emp.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the tabular export to path.
func SaveCSV(path string, employees []domain.Employee) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening CSV export %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteCSV(file, employees); err != nil {
		return fmt.Errorf("writing CSV export %s: %w", path, err)
	}
	return nil
}

// ReadCSV parses a tabular export back into employee records under the
// documented column order.
func ReadCSV(r io.Reader) ([]domain.Employee, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected CSV header: %v", header)
	}

	var employees []domain.Employee
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		emp, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// LoadCSV reads a previously written tabular export from path.
func LoadCSV(path string) ([]domain.Employee, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV export %s: %w", path, err)
	}
	defer file.Close()

	employees, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("reading CSV export %s: %w", path, err)
	}
	return employees, nil
}

func parseRow(row []string) (domain.Employee, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.Employee{}, fmt.Errorf("parsing id %q: %w", row[0], err)
	}
	salary, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("parsing salary %q: %w", row[3], err)
	}
	joined, err := time.Parse(domain.DateLayout, row[4])
	if err != nil {
		return domain.Employee{}, fmt.Errorf("parsing joining date %q: %w", row[4], err)
	}
	score, err := strconv.ParseFloat(row[5], 64)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("parsing performance score %q: %w", row[5], err)
	}

	return domain.Employee{
		ID:               id,
		Name:             row[1],
		Department:       row[2],
		Salary:           salary,
		JoiningDate:      joined,
		PerformanceScore: score,
	}, nil
}
