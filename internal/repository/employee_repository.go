package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/locvowork/payroll/internal/database"
	"github.com/locvowork/payroll/internal/domain"
	"github.com/locvowork/payroll/internal/repository/builder"
)

const (
	addressTable  = "Address"
	employeeTable = "Employee"
)

var employeeColumns = []string{
	"id", "address_id", "name", "emp_type",
	"salary", "hourly_rate", "hours_worked", "base_salary", "commission_rate", "sales",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type employeeRepository struct {
	source *database.Source
}

// NewEmployeeRepository creates a new instance of EmployeeRepository
func NewEmployeeRepository(source *database.Source) domain.EmployeeRepository {
	return &employeeRepository{source: source}
}

// AddEmployee rejects an employee without compensation before touching the
// store, so every stored row carries one of the three kind tags.
func (r *employeeRepository) AddEmployee(ctx context.Context, e domain.Employee) error {
	if e.Compensation == nil {
		return fmt.Errorf("%w: employee %q has no compensation", domain.ErrUnknownKind, e.Name)
	}

	addressQuery, addressArgs, err := builder.NewSQLBuilder().
		Insert(addressTable, "street", "city", "state", "zip_code").
		Values(e.Address.Street, e.Address.City, e.Address.State, e.Address.ZipCode).
		Returning("id").
		BuildSafe()
	if err != nil {
		return fmt.Errorf("failed to build address insert: %w", err)
	}

	return r.source.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		var addressID int64
		if err := db.QueryRowContext(ctx, addressQuery, addressArgs...).Scan(&addressID); err != nil {
			return fmt.Errorf("failed to insert address: %w", err)
		}

		cols := e.PayColumns()
		query, args, err := builder.NewSQLBuilder().
			Insert(employeeTable, employeeColumns[1:]...).
			Values(addressID, e.Name, string(e.Kind()),
				cols.Salary, cols.HourlyRate, cols.HoursWorked,
				cols.BaseSalary, cols.CommissionRate, cols.Sales).
			BuildSafe()
		if err != nil {
			return fmt.Errorf("failed to build employee insert: %w", err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert employee: %w", err)
		}
		return nil
	})
}

func (r *employeeRepository) GetEmployee(ctx context.Context, id int64) (*domain.EmployeeRow, error) {
	query, args, err := builder.NewSQLBuilder().
		Select(employeeColumns...).
		From(employeeTable).
		Where("id = ?", id).
		BuildSafe()
	if err != nil {
		return nil, fmt.Errorf("failed to build employee query: %w", err)
	}

	var row domain.EmployeeRow
	err = r.source.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		return scanEmployee(db.QueryRowContext(ctx, query, args...), &row)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &row, nil
}

// ListEmployees returns every employee row in the store's natural order.
func (r *employeeRepository) ListEmployees(ctx context.Context) ([]domain.EmployeeRow, error) {
	query, args, err := builder.NewSQLBuilder().
		Select(employeeColumns...).
		From(employeeTable).
		BuildSafe()
	if err != nil {
		return nil, fmt.Errorf("failed to build employee list query: %w", err)
	}

	var employees []domain.EmployeeRow
	err = r.source.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row domain.EmployeeRow
			if err := scanEmployee(rows, &row); err != nil {
				return fmt.Errorf("failed to scan employee: %w", err)
			}
			employees = append(employees, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) GetAddress(ctx context.Context, id int64) (*domain.Address, error) {
	query, args, err := builder.NewSQLBuilder().
		Select("id", "street", "city", "state", "zip_code").
		From(addressTable).
		Where("id = ?", id).
		BuildSafe()
	if err != nil {
		return nil, fmt.Errorf("failed to build address query: %w", err)
	}

	var addr domain.Address
	err = r.source.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		var street, city, state, zip sql.NullString
		if err := db.QueryRowContext(ctx, query, args...).Scan(&addr.ID, &street, &city, &state, &zip); err != nil {
			return err
		}
		addr.Street, addr.City, addr.State, addr.ZipCode = street.String, city.String, state.String, zip.String
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return &addr, nil
}

func scanEmployee(s rowScanner, row *domain.EmployeeRow) error {
	var name, empType sql.NullString
	if err := s.Scan(&row.ID, &row.AddressID, &name, &empType,
		&row.Salary, &row.HourlyRate, &row.HoursWorked,
		&row.BaseSalary, &row.CommissionRate, &row.Sales); err != nil {
		return err
	}
	row.Name, row.EmpType = name.String, empType.String
	return nil
}
