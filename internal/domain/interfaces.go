package domain

import "context"

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// AddEmployee stores the employee's address and then the employee row
	// referencing it. A new address row is created on every call.
	AddEmployee(ctx context.Context, e Employee) error
	GetEmployee(ctx context.Context, id int64) (*EmployeeRow, error)
	ListEmployees(ctx context.Context) ([]EmployeeRow, error)
	GetAddress(ctx context.Context, id int64) (*Address, error)
}

// SchemaManager creates the tables the repository relies on.
type SchemaManager interface {
	EnsureSchema(ctx context.Context) error
}
