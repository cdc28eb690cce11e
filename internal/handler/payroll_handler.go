package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/payroll/internal/logger"
	"github.com/locvowork/payroll/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler struct {
	svc service.PayrollService
}

func NewPayrollHandler(svc service.PayrollService) *PayrollHandler {
	return &PayrollHandler{svc: svc}
}

// RunHandler handles POST /payroll
func (h *PayrollHandler) RunHandler(c echo.Context) error {
	ctx := c.Request().Context()
	report, err := h.svc.ProcessPayroll(ctx)
	if err != nil {
		logger.ErrorLog(ctx, "payroll run failed: %v", err)
		return ResponseError(c, http.StatusInternalServerError, "Failed to process payroll", err)
	}
	return ResponseSuccess(c, http.StatusOK, "Payroll processed successfully", report)
}

// ExportHandler handles GET /payroll/export
func (h *PayrollHandler) ExportHandler(c echo.Context) error {
	filename := fmt.Sprintf("payroll_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.svc.ExportWorkbook(c.Request().Context(), c.Response()); err != nil {
		c.Response().Header().Del(echo.HeaderContentType)
		c.Response().Header().Del(echo.HeaderContentDisposition)
		return ResponseError(c, http.StatusInternalServerError, "Failed to export payroll", err)
	}
	return nil
}

func HealthcheckHandler(c echo.Context) error {
	return ResponseSuccess(c, http.StatusOK, "ok", nil)
}
