package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSaveExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "employees.xlsx")

	require.NoError(t, SaveExcel(path, sampleEmployees()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(excelSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "id", header)

	name, err := f.GetCellValue(excelSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ahmed Khan", name)

	date, err := f.GetCellValue(excelSheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, "2021-11-02", date)

	rows, err := f.GetRows(excelSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSaveExcelFailsOnMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "employees.xlsx")

	err := SaveExcel(path, sampleEmployees())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
