package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/locvowork/payroll/internal/domain"
)

// EmployeeService defines the interface for employee business logic
type EmployeeService interface {
	Create(ctx context.Context, e domain.Employee) error
	Get(ctx context.Context, id int64) (*EmployeeDetail, error)
}

// EmployeeDetail is a stored employee row with the address it references.
type EmployeeDetail struct {
	Row     domain.EmployeeRow
	Address *domain.Address
	Pay     float64
}

type employeeService struct {
	repo domain.EmployeeRepository
}

func NewEmployeeService(repo domain.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, e domain.Employee) error {
	if e.Compensation == nil {
		return fmt.Errorf("%w: no compensation for %q", domain.ErrUnknownKind, e.Name)
	}
	return s.repo.AddEmployee(ctx, e)
}

// Get loads the raw row and its address. A row whose address is missing is
// still returned with a nil Address.
func (s *employeeService) Get(ctx context.Context, id int64) (*EmployeeDetail, error) {
	row, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &EmployeeDetail{Row: *row, Pay: row.ComputePay()}
	if !row.AddressID.Valid {
		return detail, nil
	}

	addr, err := s.repo.GetAddress(ctx, row.AddressID.Int64)
	if errors.Is(err, domain.ErrAddressNotFound) {
		return detail, nil
	}
	if err != nil {
		return nil, err
	}
	detail.Address = addr
	return detail, nil
}
