package simpleexcel

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// Types
// =============================================================================

// DataExporter is the main entry point for exporting data.
type DataExporter struct {
	sheets []*SheetBuilder
}

// SectionConfig defines a block of rows in a sheet. Sections are stacked
// vertically with one blank row between them.
type SectionConfig struct {
	ID          string
	Title       string
	Data        interface{} // slice of structs or struct pointers
	ShowHeader  bool
	TitleStyle  *StyleTemplate
	HeaderStyle *StyleTemplate
	Columns     []ColumnConfig
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName string // Struct field name
	Header    string
	Width     float64
	NumFmt    string // excel custom number format, e.g. "#,##0.00"
}

// StyleTemplate defines basic styling.
type StyleTemplate struct {
	Font *FontTemplate
	Fill *FillTemplate
}

type FontTemplate struct {
	Bold  bool
	Color string // Hex color
}

type FillTemplate struct {
	Color string // Hex color
}

// =============================================================================
// Fluent API
// =============================================================================

func NewDataExporter() *DataExporter {
	return &DataExporter{}
}

// AddSheet starts a new sheet builder.
func (e *DataExporter) AddSheet(name string) *SheetBuilder {
	sb := &SheetBuilder{exporter: e, name: name}
	e.sheets = append(e.sheets, sb)
	return sb
}

type SheetBuilder struct {
	exporter *DataExporter
	name     string
	sections []*SectionConfig
}

func (sb *SheetBuilder) AddSection(config *SectionConfig) *SheetBuilder {
	sb.sections = append(sb.sections, config)
	return sb
}

func (sb *SheetBuilder) Build() *DataExporter {
	return sb.exporter
}

// =============================================================================
// Output
// =============================================================================

// ExportToExcel generates the Excel file on disk, replacing any existing file.
func (e *DataExporter) ExportToExcel(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := e.buildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// ToWriter writes the Excel file to the provided io.Writer.
func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.buildExcel()
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// =============================================================================
// Rendering Logic
// =============================================================================

func (e *DataExporter) buildExcel() (*excelize.File, error) {
	if len(e.sheets) == 0 {
		return nil, fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	for i, sb := range e.sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sb.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", sb.name, err)
			}
		} else if _, err := f.NewSheet(sb.name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %q: %w", sb.name, err)
		}
		if err := renderSections(f, sb.name, sb.sections); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	row := 1

	for _, sec := range sections {
		if sec.Title != "" {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return fmt.Errorf("section %q title: %w", sec.ID, err)
			}
			if sec.TitleStyle != nil {
				styleID, err := createStyle(f, sec.TitleStyle, "")
				if err != nil {
					return err
				}
				if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
					return fmt.Errorf("section %q title style: %w", sec.ID, err)
				}
			}
			row++
		}

		if sec.ShowHeader {
			if err := renderHeader(f, sheet, sec, row); err != nil {
				return err
			}
			row++
		}

		colStyles := make([]int, len(sec.Columns))
		for i, col := range sec.Columns {
			colStyles[i] = -1
			if col.NumFmt != "" {
				id, err := createStyle(f, &StyleTemplate{}, col.NumFmt)
				if err != nil {
					return err
				}
				colStyles[i] = id
			}
		}

		dataVal := reflect.ValueOf(sec.Data)
		if dataVal.Kind() == reflect.Slice {
			for i := 0; i < dataVal.Len(); i++ {
				item := dataVal.Index(i)
				for j, col := range sec.Columns {
					cell, err := excelize.CoordinatesToCellName(j+1, row)
					if err != nil {
						return err
					}
					if err := f.SetCellValue(sheet, cell, extractValue(item, col.FieldName)); err != nil {
						return fmt.Errorf("section %q row %d: %w", sec.ID, i+1, err)
					}
					if colStyles[j] >= 0 {
						if err := f.SetCellStyle(sheet, cell, cell, colStyles[j]); err != nil {
							return fmt.Errorf("section %q row %d style: %w", sec.ID, i+1, err)
						}
					}
				}
				row++
			}
		}

		// blank row between sections
		row++
	}
	return nil
}

func renderHeader(f *excelize.File, sheet string, sec *SectionConfig, row int) error {
	headerStyle := -1
	if sec.HeaderStyle != nil {
		id, err := createStyle(f, sec.HeaderStyle, "")
		if err != nil {
			return err
		}
		headerStyle = id
	}

	for i, col := range sec.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return fmt.Errorf("section %q header: %w", sec.ID, err)
		}
		if headerStyle >= 0 {
			if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
				return fmt.Errorf("section %q header style: %w", sec.ID, err)
			}
		}
		if col.Width > 0 {
			colName, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(sheet, colName, colName, col.Width); err != nil {
				return fmt.Errorf("section %q column %s width: %w", sec.ID, colName, err)
			}
		}
	}
	return nil
}

func extractValue(item reflect.Value, fieldName string) interface{} {
	for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
		if item.IsNil() {
			return ""
		}
		item = item.Elem()
	}
	if item.Kind() != reflect.Struct {
		return ""
	}
	if f := item.FieldByName(fieldName); f.IsValid() && f.CanInterface() {
		return f.Interface()
	}
	return ""
}

func createStyle(f *excelize.File, tmpl *StyleTemplate, numFmt string) (int, error) {
	style := &excelize.Style{}
	if tmpl.Font != nil {
		style.Font = &excelize.Font{
			Bold:  tmpl.Font.Bold,
			Color: strings.TrimPrefix(tmpl.Font.Color, "#"),
		}
	}
	if tmpl.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(tmpl.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	if numFmt != "" {
		style.CustomNumFmt = &numFmt
	}
	return f.NewStyle(style)
}
