package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/payroll/internal/domain"
)

func TestEmployeeService_Get(t *testing.T) {
	repo, source := seededStore(t)
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	detail, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Mirhan", detail.Row.Name)
	assert.Equal(t, 4000.0, detail.Pay)
	require.NotNil(t, detail.Address)
	assert.Equal(t, "Narathiwat", detail.Address.City)

	require.NoError(t, source.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, `INSERT INTO Employee (name, emp_type, salary) VALUES ('Nomad', 'Salaried', 10)`)
		return err
	}))
	detail, err = svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Nil(t, detail.Address)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_Create(t *testing.T) {
	repo, _ := seededStore(t)
	svc := NewEmployeeService(repo)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, domain.NewHourly("Nur", domain.Address{City: "Yala"}, 15, 10)))
	detail, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 150.0, detail.Pay)
	assert.Equal(t, "Yala", detail.Address.City)

	err = svc.Create(ctx, domain.Employee{Name: "Blank"})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}
