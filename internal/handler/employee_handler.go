package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/payroll/internal/domain"
	"github.com/locvowork/payroll/internal/logger"
	"github.com/locvowork/payroll/internal/service"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	emp, err := req.toDomain()
	if err != nil {
		return ResponseError(c, http.StatusBadRequest, "Invalid employee", err)
	}

	ctx := c.Request().Context()
	if err := h.svc.Create(ctx, emp); err != nil {
		logger.ErrorLog(ctx, "failed to create employee %s: %v", emp.Name, err)
		return ResponseError(c, http.StatusInternalServerError, "Failed to create employee", err)
	}

	return ResponseSuccess(c, http.StatusCreated, "Employee created successfully", nil)
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	detail, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, domain.ErrEmployeeNotFound) {
		return ResponseError(c, http.StatusNotFound, "Employee not found", err)
	}
	if err != nil {
		return ResponseError(c, http.StatusInternalServerError, "Failed to get employee", err)
	}

	return ResponseSuccess(c, http.StatusOK, "Employee retrieved successfully", newEmployeeResponse(detail))
}
