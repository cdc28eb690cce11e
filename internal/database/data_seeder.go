package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/locvowork/payroll/internal/domain"
	"github.com/locvowork/payroll/internal/logger"
)

type DataSeeder struct {
	repo domain.EmployeeRepository
}

func NewDataSeeder(repo domain.EmployeeRepository) *DataSeeder {
	return &DataSeeder{repo: repo}
}

// SeedFile is the YAML layout accepted by LoadSeedFile. Employees reference
// addresses by key; every employee still gets its own Address row.
type SeedFile struct {
	Addresses map[string]SeedAddress `yaml:"addresses"`
	Employees []SeedEmployee         `yaml:"employees"`
}

type SeedAddress struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	ZipCode string `yaml:"zip_code"`
}

type SeedEmployee struct {
	Name           string  `yaml:"name"`
	Kind           string  `yaml:"kind"`
	Address        string  `yaml:"address"`
	Salary         float64 `yaml:"salary"`
	HourlyRate     float64 `yaml:"hourly_rate"`
	HoursWorked    float64 `yaml:"hours_worked"`
	BaseSalary     float64 `yaml:"base_salary"`
	CommissionRate float64 `yaml:"commission_rate"`
	Sales          float64 `yaml:"sales"`
}

// SampleEmployees returns the built-in demo data set.
func SampleEmployees() []domain.Employee {
	addr1 := domain.Address{Street: "354/2 BT", City: "Narathiwat", State: "Meang", ZipCode: "96000"}
	addr2 := domain.Address{Street: "354/1", City: "Pattani", State: "Takbai", ZipCode: "96001"}

	return []domain.Employee{
		domain.NewSalaried("Royyim", addr1, 5000),
		domain.NewHourly("Ahlam", addr2, 20, 160),
		domain.NewCommission("Mirhan", addr1, 3000, 0.05, 20000),
	}
}

// LoadSeedFile decodes a YAML seed file into employees.
func LoadSeedFile(path string) ([]domain.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var seed SeedFile
	if err := yaml.NewDecoder(f).Decode(&seed); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return seed.Build()
}

// Build converts the decoded file into domain employees.
func (s SeedFile) Build() ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0, len(s.Employees))
	for i, se := range s.Employees {
		addr, ok := s.Addresses[se.Address]
		if !ok && se.Address != "" {
			return nil, fmt.Errorf("employee %d (%s): unknown address %q", i, se.Name, se.Address)
		}
		address := domain.Address{Street: addr.Street, City: addr.City, State: addr.State, ZipCode: addr.ZipCode}

		kind, err := domain.ParseKind(se.Kind)
		if err != nil {
			return nil, fmt.Errorf("employee %d (%s): %w", i, se.Name, err)
		}

		switch kind {
		case domain.KindSalaried:
			employees = append(employees, domain.NewSalaried(se.Name, address, se.Salary))
		case domain.KindHourly:
			employees = append(employees, domain.NewHourly(se.Name, address, se.HourlyRate, se.HoursWorked))
		case domain.KindCommission:
			employees = append(employees, domain.NewCommission(se.Name, address, se.BaseSalary, se.CommissionRate, se.Sales))
		}
	}
	return employees, nil
}

// SeedData inserts the employees one by one, stopping at the first failure.
func (ds *DataSeeder) SeedData(ctx context.Context, employees []domain.Employee) error {
	start := time.Now()

	for _, e := range employees {
		if err := ds.repo.AddEmployee(ctx, e); err != nil {
			return fmt.Errorf("failed to add employee %s: %w", e.Name, err)
		}
		logger.DebugLog(ctx, "added %s employee %s", e.Kind(), e.Name)
	}

	logger.InfoLog(ctx, "seeded %d employees in %v", len(employees), time.Since(start))
	return nil
}
