package simpleexcel

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type payRow struct {
	Name string
	Kind string
	Pay  float64
}

type totalRow struct {
	Label string
	Pay   float64
}

func TestDataExporter_RendersSections(t *testing.T) {
	exporter := NewDataExporter()
	exporter.AddSheet("Payroll").
		AddSection(&SectionConfig{
			ID:          "lines",
			Title:       "Payroll Report",
			TitleStyle:  &StyleTemplate{Font: &FontTemplate{Bold: true}},
			HeaderStyle: &StyleTemplate{Font: &FontTemplate{Bold: true, Color: "#FFFFFF"}, Fill: &FillTemplate{Color: "#4472C4"}},
			ShowHeader:  true,
			Data: []payRow{
				{"Royyim", "Salaried", 5000},
				{"Ahlam", "Hourly", 3200},
			},
			Columns: []ColumnConfig{
				{FieldName: "Name", Header: "Name", Width: 20},
				{FieldName: "Kind", Header: "Kind", Width: 15},
				{FieldName: "Pay", Header: "Pay", Width: 15, NumFmt: "#,##0.00"},
			},
		}).
		AddSection(&SectionConfig{
			ID:      "total",
			Data:    []totalRow{{Label: "Total", Pay: 8200}},
			Columns: []ColumnConfig{{FieldName: "Label"}, {FieldName: "Missing"}, {FieldName: "Pay"}},
		})

	var buf bytes.Buffer
	require.NoError(t, exporter.ToWriter(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Payroll"}, f.GetSheetList())

	rows, err := f.GetRows("Payroll", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 6)

	assert.Equal(t, []string{"Payroll Report"}, rows[0])
	assert.Equal(t, []string{"Name", "Kind", "Pay"}, rows[1])
	assert.Equal(t, []string{"Royyim", "Salaried", "5000"}, rows[2])
	assert.Equal(t, []string{"Ahlam", "Hourly", "3200"}, rows[3])
	assert.Empty(t, rows[4])
	assert.Equal(t, []string{"Total", "", "8200"}, rows[5])

	styleID, err := f.GetCellStyle("Payroll", "C3")
	require.NoError(t, err)
	assert.NotZero(t, styleID)

	width, err := f.GetColWidth("Payroll", "A")
	require.NoError(t, err)
	assert.Equal(t, 20.0, width)
}

func TestDataExporter_ExportToExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	exporter := NewDataExporter()
	exporter.AddSheet("First").AddSection(&SectionConfig{
		Data:    []*payRow{{Name: "Mirhan", Kind: "Commission", Pay: 4000}, nil},
		Columns: []ColumnConfig{{FieldName: "Name"}, {FieldName: "Pay"}},
	})
	exporter.AddSheet("Second")

	require.NoError(t, exporter.ExportToExcel(context.Background(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"First", "Second"}, f.GetSheetList())
	v, err := f.GetCellValue("First", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Mirhan", v)
}

func TestDataExporter_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, NewDataExporter().ToWriter(&buf))

	tooWide := NewDataExporter()
	tooWide.AddSheet("S").AddSection(&SectionConfig{
		ID:         "wide",
		ShowHeader: true,
		Columns:    []ColumnConfig{{FieldName: "Name", Header: "Name", Width: 300}},
	})
	err := tooWide.ToWriter(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `section "wide"`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exporter := NewDataExporter()
	exporter.AddSheet("S")
	require.ErrorIs(t, exporter.ExportToExcel(ctx, filepath.Join(t.TempDir(), "x.xlsx")), context.Canceled)
}
