package domain

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrUnknownKind      = errors.New("unknown employee kind")
)

// Kind is the emp_type tag stored with every employee row.
type Kind string

const (
	KindSalaried   Kind = "Salaried"
	KindHourly     Kind = "Hourly"
	KindCommission Kind = "Commission"
)

// ParseKind validates a raw kind tag.
func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindSalaried, KindHourly, KindCommission:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Address represents the Address table
type Address struct {
	ID      int64  `json:"id" db:"id"`
	Street  string `json:"street" db:"street"`
	City    string `json:"city" db:"city"`
	State   string `json:"state" db:"state"`
	ZipCode string `json:"zip_code" db:"zip_code"`
}

// Compensation is the pay strategy of an employee. It is implemented only by
// Salaried, Hourly and Commission.
type Compensation interface {
	Kind() Kind
	ComputePay() float64
	columns() PayColumns
}

// Salaried is paid a fixed amount.
type Salaried struct {
	Salary float64 `json:"salary"`
}

func (Salaried) Kind() Kind { return KindSalaried }

func (s Salaried) ComputePay() float64 { return s.Salary }

func (s Salaried) columns() PayColumns {
	return PayColumns{Salary: valid(s.Salary)}
}

// Hourly is paid rate times hours. Negative hours count as zero.
type Hourly struct {
	HourlyRate  float64 `json:"hourly_rate"`
	HoursWorked float64 `json:"hours_worked"`
}

func (Hourly) Kind() Kind { return KindHourly }

func (h Hourly) ComputePay() float64 { return hourlyPay(h.HourlyRate, h.HoursWorked) }

func (h Hourly) columns() PayColumns {
	return PayColumns{HourlyRate: valid(h.HourlyRate), HoursWorked: valid(h.HoursWorked)}
}

// Commission is paid a base salary plus a share of sales.
type Commission struct {
	BaseSalary     float64 `json:"base_salary"`
	CommissionRate float64 `json:"commission_rate"`
	Sales          float64 `json:"sales"`
}

func (Commission) Kind() Kind { return KindCommission }

func (c Commission) ComputePay() float64 {
	return commissionPay(c.BaseSalary, c.CommissionRate, c.Sales)
}

func (c Commission) columns() PayColumns {
	return PayColumns{
		BaseSalary:     valid(c.BaseSalary),
		CommissionRate: valid(c.CommissionRate),
		Sales:          valid(c.Sales),
	}
}

func hourlyPay(rate, hours float64) float64 {
	return rate * max(0, hours)
}

func commissionPay(base, rate, sales float64) float64 {
	return base + rate*sales
}

func valid(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

// Employee is the in-memory record handed to the repository. ID is assigned
// by the store and left zero by callers.
type Employee struct {
	ID           int64
	Name         string
	Address      Address
	Compensation Compensation
}

func NewSalaried(name string, addr Address, salary float64) Employee {
	return Employee{Name: name, Address: addr, Compensation: Salaried{Salary: salary}}
}

func NewHourly(name string, addr Address, rate, hours float64) Employee {
	return Employee{Name: name, Address: addr, Compensation: Hourly{HourlyRate: rate, HoursWorked: hours}}
}

func NewCommission(name string, addr Address, base, rate, sales float64) Employee {
	return Employee{
		Name:         name,
		Address:      addr,
		Compensation: Commission{BaseSalary: base, CommissionRate: rate, Sales: sales},
	}
}

// Kind returns the tag of the employee's compensation, empty when unset.
func (e Employee) Kind() Kind {
	if e.Compensation == nil {
		return ""
	}
	return e.Compensation.Kind()
}

func (e Employee) ComputePay() float64 {
	if e.Compensation == nil {
		return 0
	}
	return e.Compensation.ComputePay()
}

// PayColumns returns the sparse variant columns for the employee; columns
// that do not belong to its kind are NULL.
func (e Employee) PayColumns() PayColumns {
	if e.Compensation == nil {
		return PayColumns{}
	}
	return e.Compensation.columns()
}

// PayColumns holds the nullable variant-specific columns of the Employee table.
type PayColumns struct {
	Salary         sql.NullFloat64
	HourlyRate     sql.NullFloat64
	HoursWorked    sql.NullFloat64
	BaseSalary     sql.NullFloat64
	CommissionRate sql.NullFloat64
	Sales          sql.NullFloat64
}

// EmployeeRow is a raw row of the Employee table.
type EmployeeRow struct {
	ID        int64         `json:"id" db:"id"`
	AddressID sql.NullInt64 `db:"address_id"`
	Name      string        `json:"name" db:"name"`
	EmpType   string        `json:"emp_type" db:"emp_type"`
	PayColumns
}

// ComputePay applies the pay rule of the row's kind directly to the stored
// columns. Unknown kinds pay zero and NULL columns read as zero.
func (r EmployeeRow) ComputePay() float64 {
	switch Kind(r.EmpType) {
	case KindSalaried:
		return r.Salary.Float64
	case KindHourly:
		return hourlyPay(r.HourlyRate.Float64, r.HoursWorked.Float64)
	case KindCommission:
		return commissionPay(r.BaseSalary.Float64, r.CommissionRate.Float64, r.Sales.Float64)
	default:
		return 0
	}
}

// PayrollLine is one employee entry of a payroll run.
type PayrollLine struct {
	EmployeeID int64   `json:"employee_id"`
	Name       string  `json:"name"`
	Kind       string  `json:"kind"`
	Pay        float64 `json:"pay"`
}

// String renders the line the way it appears in the text report.
func (l PayrollLine) String() string {
	return fmt.Sprintf("%s (%s) - Pay: $%.2f", l.Name, l.Kind, l.Pay)
}

// PayrollReport is the result of one payroll run.
type PayrollReport struct {
	Lines []PayrollLine `json:"lines"`
	Total float64       `json:"total"`
	Text  string        `json:"text"`
}
