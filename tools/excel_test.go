package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type exportRow struct {
	Name  string  `excel:"名称"`
	Count int     `excel:"数量"`
	Rate  float64 `excel:"-"`
}

func TestExportToExcel(t *testing.T) {
	f := excelize.NewFile()
	rows := []exportRow{
		{Name: "甲", Count: 10, Rate: 1.5},
		{Name: "乙", Count: 20, Rate: 2.5},
	}
	require.NoError(t, ExportToExcel(f, "导出", rows))

	header, err := f.GetCellValue("导出", "A1")
	require.NoError(t, err)
	require.Equal(t, "名称", header)

	header, err = f.GetCellValue("导出", "B1")
	require.NoError(t, err)
	require.Equal(t, "数量", header)

	// excel:"-" 的列不导出
	skipped, err := f.GetCellValue("导出", "C1")
	require.NoError(t, err)
	require.Empty(t, skipped)

	cell, err := f.GetCellValue("导出", "A3")
	require.NoError(t, err)
	require.Equal(t, "乙", cell)
}

func TestExportToExcelRejectsNonSlice(t *testing.T) {
	f := excelize.NewFile()
	require.Error(t, ExportToExcel(f, "Sheet1", "not a slice"))
}

func TestExportToExcelEmptySlice(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, ExportToExcel(f, "Sheet1", []exportRow{}))
}
