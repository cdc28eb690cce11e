package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/locvowork/payroll/internal/domain"
	"github.com/locvowork/payroll/internal/logger"
	"github.com/locvowork/payroll/pkg/simpleexcel"
)

const reportHeader = "Payroll Report:\n"

// PayrollService runs payroll over every stored employee row
type PayrollService interface {
	ProcessPayroll(ctx context.Context) (*domain.PayrollReport, error)
	ExportWorkbook(ctx context.Context, w io.Writer) error
}

// PayrollOptions controls where a payroll run writes its output.
// An empty WorkbookPath disables the xlsx file; a nil Out discards the text.
type PayrollOptions struct {
	ReportPath   string
	WorkbookPath string
	Out          io.Writer
}

type payrollService struct {
	repo domain.EmployeeRepository
	opts PayrollOptions
}

func NewPayrollService(repo domain.EmployeeRepository, opts PayrollOptions) PayrollService {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &payrollService{repo: repo, opts: opts}
}

// ProcessPayroll recomputes pay from the persisted rows, prints the report and
// overwrites the report file with the same text.
func (s *payrollService) ProcessPayroll(ctx context.Context) (*domain.PayrollReport, error) {
	report, err := s.buildReport(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := io.WriteString(s.opts.Out, report.Text); err != nil {
		return nil, fmt.Errorf("failed to print payroll report: %w", err)
	}

	if s.opts.ReportPath != "" {
		if err := os.WriteFile(s.opts.ReportPath, []byte(report.Text), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write payroll report: %w", err)
		}
	}

	if s.opts.WorkbookPath != "" {
		if err := s.workbook(report).ExportToExcel(ctx, s.opts.WorkbookPath); err != nil {
			return nil, fmt.Errorf("failed to write payroll workbook: %w", err)
		}
	}

	logger.InfoLog(ctx, "payroll processed for %d employees, total %.2f", len(report.Lines), report.Total)
	return report, nil
}

// ExportWorkbook streams the payroll workbook without touching the report files.
func (s *payrollService) ExportWorkbook(ctx context.Context, w io.Writer) error {
	report, err := s.buildReport(ctx)
	if err != nil {
		return err
	}
	buf := new(bytes.Buffer)
	if err := s.workbook(report).ToWriter(buf); err != nil {
		return fmt.Errorf("failed to render payroll workbook: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func (s *payrollService) buildReport(ctx context.Context) (*domain.PayrollReport, error) {
	rows, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	lines := lo.Map(rows, func(r domain.EmployeeRow, _ int) domain.PayrollLine {
		if _, err := domain.ParseKind(r.EmpType); err != nil {
			rowCtx := logger.WithLogger(ctx, map[string]interface{}{"employee_id": r.ID})
			logger.WarnLog(rowCtx, "unknown kind %q, paying 0", r.EmpType)
		}
		return domain.PayrollLine{EmployeeID: r.ID, Name: r.Name, Kind: r.EmpType, Pay: r.ComputePay()}
	})

	var sb strings.Builder
	sb.WriteString(reportHeader)
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}

	return &domain.PayrollReport{
		Lines: lines,
		Total: lo.SumBy(lines, func(l domain.PayrollLine) float64 { return l.Pay }),
		Text:  sb.String(),
	}, nil
}

type workbookTotal struct {
	Name string
	Pay  float64
}

func (s *payrollService) workbook(report *domain.PayrollReport) *simpleexcel.DataExporter {
	bold := &simpleexcel.StyleTemplate{Font: &simpleexcel.FontTemplate{Bold: true}}

	return simpleexcel.NewDataExporter().
		AddSheet("Payroll").
		AddSection(&simpleexcel.SectionConfig{
			ID:          "lines",
			Title:       strings.TrimSuffix(reportHeader, ":\n"),
			TitleStyle:  bold,
			ShowHeader:  true,
			HeaderStyle: &simpleexcel.StyleTemplate{
				Font: &simpleexcel.FontTemplate{Bold: true, Color: "#FFFFFF"},
				Fill: &simpleexcel.FillTemplate{Color: "#4472C4"},
			},
			Data: report.Lines,
			Columns: []simpleexcel.ColumnConfig{
				{FieldName: "Name", Header: "Name", Width: 24},
				{FieldName: "Kind", Header: "Kind", Width: 14},
				{FieldName: "Pay", Header: "Pay", Width: 14, NumFmt: "#,##0.00"},
			},
		}).
		AddSection(&simpleexcel.SectionConfig{
			ID:   "total",
			Data: []workbookTotal{{Name: "Total", Pay: report.Total}},
			Columns: []simpleexcel.ColumnConfig{
				{FieldName: "Name"},
				{FieldName: "Kind"},
				{FieldName: "Pay", NumFmt: "#,##0.00"},
			},
		}).
		Build()
}
