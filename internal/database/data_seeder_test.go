package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/payroll/internal/domain"
)

type recordingRepo struct {
	domain.EmployeeRepository
	added []domain.Employee
	err   error
}

func (r *recordingRepo) AddEmployee(_ context.Context, e domain.Employee) error {
	if r.err != nil {
		return r.err
	}
	r.added = append(r.added, e)
	return nil
}

const seedYAML = `
addresses:
  narathiwat:
    street: 354/2 BT
    city: Narathiwat
    state: Meang
    zip_code: "96000"
  pattani:
    street: "354/1"
    city: Pattani
    state: Takbai
    zip_code: "96001"
employees:
  - name: Royyim
    kind: Salaried
    address: narathiwat
    salary: 5000
  - name: Ahlam
    kind: Hourly
    address: pattani
    hourly_rate: 20
    hours_worked: 160
  - name: Mirhan
    kind: Commission
    address: narathiwat
    base_salary: 3000
    commission_rate: 0.05
    sales: 20000
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeedFile_MatchesSampleEmployees(t *testing.T) {
	employees, err := LoadSeedFile(writeSeed(t, seedYAML))
	require.NoError(t, err)
	assert.Equal(t, SampleEmployees(), employees)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	testCases := map[string]string{
		"unknown kind":    "employees:\n  - name: X\n    kind: Intern\n",
		"unknown address": "employees:\n  - name: X\n    kind: Salaried\n    address: nowhere\n",
		"invalid yaml":    "employees: [::",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSeedFile(writeSeed(t, content))
			require.Error(t, err)
		})
	}

	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSeedData(t *testing.T) {
	repo := &recordingRepo{}
	seeder := NewDataSeeder(repo)

	require.NoError(t, seeder.SeedData(context.Background(), SampleEmployees()))
	require.Len(t, repo.added, 3)
	assert.Equal(t, "Royyim", repo.added[0].Name)
	assert.Equal(t, domain.KindCommission, repo.added[2].Kind())

	failing := &recordingRepo{err: errors.New("database is locked")}
	err := NewDataSeeder(failing).SeedData(context.Background(), SampleEmployees())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Royyim")
}

func TestLoadSeedFile_Bundled(t *testing.T) {
	employees, err := LoadSeedFile(filepath.Join("..", "..", "seed", "employees.yaml"))
	require.NoError(t, err)
	assert.Equal(t, SampleEmployees(), employees)
}
