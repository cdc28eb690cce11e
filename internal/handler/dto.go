package handler

import (
	"database/sql"
	"fmt"

	"github.com/locvowork/payroll/internal/domain"
	"github.com/locvowork/payroll/internal/service"
)

// CreateEmployeeRequest is the body of POST /employees. Only the fields of
// the given kind are read.
type CreateEmployeeRequest struct {
	Name           string         `json:"name"`
	Kind           string         `json:"kind"`
	Address        AddressPayload `json:"address"`
	Salary         float64        `json:"salary"`
	HourlyRate     float64        `json:"hourly_rate"`
	HoursWorked    float64        `json:"hours_worked"`
	BaseSalary     float64        `json:"base_salary"`
	CommissionRate float64        `json:"commission_rate"`
	Sales          float64        `json:"sales"`
}

type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

func (r CreateEmployeeRequest) toDomain() (domain.Employee, error) {
	if r.Name == "" {
		return domain.Employee{}, fmt.Errorf("name is required")
	}
	kind, err := domain.ParseKind(r.Kind)
	if err != nil {
		return domain.Employee{}, err
	}

	addr := domain.Address{
		Street:  r.Address.Street,
		City:    r.Address.City,
		State:   r.Address.State,
		ZipCode: r.Address.ZipCode,
	}
	switch kind {
	case domain.KindSalaried:
		return domain.NewSalaried(r.Name, addr, r.Salary), nil
	case domain.KindHourly:
		return domain.NewHourly(r.Name, addr, r.HourlyRate, r.HoursWorked), nil
	default:
		return domain.NewCommission(r.Name, addr, r.BaseSalary, r.CommissionRate, r.Sales), nil
	}
}

// EmployeeResponse mirrors a stored Employee row. Columns outside the
// employee's kind are null.
type EmployeeResponse struct {
	ID             int64           `json:"id"`
	AddressID      *int64          `json:"address_id"`
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	Salary         *float64        `json:"salary"`
	HourlyRate     *float64        `json:"hourly_rate"`
	HoursWorked    *float64        `json:"hours_worked"`
	BaseSalary     *float64        `json:"base_salary"`
	CommissionRate *float64        `json:"commission_rate"`
	Sales          *float64        `json:"sales"`
	Pay            float64         `json:"pay"`
	Address        *domain.Address `json:"address,omitempty"`
}

func newEmployeeResponse(d *service.EmployeeDetail) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             d.Row.ID,
		Name:           d.Row.Name,
		Kind:           d.Row.EmpType,
		Salary:         nullable(d.Row.Salary),
		HourlyRate:     nullable(d.Row.HourlyRate),
		HoursWorked:    nullable(d.Row.HoursWorked),
		BaseSalary:     nullable(d.Row.BaseSalary),
		CommissionRate: nullable(d.Row.CommissionRate),
		Sales:          nullable(d.Row.Sales),
		Pay:            d.Pay,
		Address:        d.Address,
	}
	if d.Row.AddressID.Valid {
		id := d.Row.AddressID.Int64
		resp.AddressID = &id
	}
	return resp
}

func nullable(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
