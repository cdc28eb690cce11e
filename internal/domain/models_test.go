package domain

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nf(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }

func TestComputePay_Variants(t *testing.T) {
	addr := Address{Street: "354/2 BT", City: "Narathiwat", State: "Meang", ZipCode: "96000"}

	testCases := map[string]struct {
		employee Employee
		kind     Kind
		pay      float64
	}{
		"salaried": {
			employee: NewSalaried("Royyim", addr, 5000),
			kind:     KindSalaried,
			pay:      5000,
		},
		"hourly": {
			employee: NewHourly("Ahlam", addr, 20, 160),
			kind:     KindHourly,
			pay:      3200,
		},
		"hourly with negative hours": {
			employee: NewHourly("Ahlam", addr, 20, -8),
			kind:     KindHourly,
			pay:      0,
		},
		"hourly with zero hours": {
			employee: NewHourly("Ahlam", addr, 20, 0),
			kind:     KindHourly,
			pay:      0,
		},
		"commission": {
			employee: NewCommission("Mirhan", addr, 3000, 0.05, 20000),
			kind:     KindCommission,
			pay:      4000,
		},
		"commission with negative sales": {
			employee: NewCommission("Mirhan", addr, 3000, 0.1, -1000),
			kind:     KindCommission,
			pay:      2900,
		},
		"no compensation": {
			employee: Employee{Name: "Nobody"},
			kind:     "",
			pay:      0,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.employee.Kind())
			assert.InDelta(t, tc.pay, tc.employee.ComputePay(), 1e-9)
		})
	}
}

func TestComputePay_HourlyMatchesRateTimesHours(t *testing.T) {
	for _, rate := range []float64{0, 1, 12.5, 20} {
		for _, hours := range []float64{0, 1, 37.5, 160} {
			h := Hourly{HourlyRate: rate, HoursWorked: hours}
			assert.Equal(t, rate*hours, h.ComputePay())
			assert.Equal(t, 0*rate, Hourly{HourlyRate: rate, HoursWorked: -hours - 1}.ComputePay())
		}
	}
}

func TestEmployee_PayColumnsAreSparse(t *testing.T) {
	cols := NewSalaried("a", Address{}, 10).PayColumns()
	assert.Equal(t, nf(10), cols.Salary)
	assert.False(t, cols.HourlyRate.Valid)
	assert.False(t, cols.HoursWorked.Valid)
	assert.False(t, cols.BaseSalary.Valid)
	assert.False(t, cols.CommissionRate.Valid)
	assert.False(t, cols.Sales.Valid)

	cols = NewHourly("b", Address{}, 20, -5).PayColumns()
	assert.False(t, cols.Salary.Valid)
	assert.Equal(t, nf(20), cols.HourlyRate)
	assert.Equal(t, nf(-5), cols.HoursWorked, "stored hours are not clamped")
	assert.False(t, cols.Sales.Valid)

	cols = NewCommission("c", Address{}, 1, 2, 3).PayColumns()
	assert.False(t, cols.Salary.Valid)
	assert.False(t, cols.HourlyRate.Valid)
	assert.Equal(t, nf(1), cols.BaseSalary)
	assert.Equal(t, nf(2), cols.CommissionRate)
	assert.Equal(t, nf(3), cols.Sales)

	assert.Equal(t, PayColumns{}, Employee{}.PayColumns())
}

func TestEmployeeRow_ComputePay(t *testing.T) {
	testCases := map[string]struct {
		row EmployeeRow
		pay float64
	}{
		"salaried ignores other columns": {
			row: EmployeeRow{EmpType: "Salaried", PayColumns: PayColumns{Salary: nf(5000), HourlyRate: nf(99), Sales: nf(1e6)}},
			pay: 5000,
		},
		"hourly": {
			row: EmployeeRow{EmpType: "Hourly", PayColumns: PayColumns{HourlyRate: nf(20), HoursWorked: nf(160)}},
			pay: 3200,
		},
		"hourly negative hours clamped": {
			row: EmployeeRow{EmpType: "Hourly", PayColumns: PayColumns{HourlyRate: nf(20), HoursWorked: nf(-10)}},
			pay: 0,
		},
		"commission": {
			row: EmployeeRow{EmpType: "Commission", PayColumns: PayColumns{BaseSalary: nf(3000), CommissionRate: nf(0.05), Sales: nf(20000)}},
			pay: 4000,
		},
		"unknown kind pays zero": {
			row: EmployeeRow{EmpType: "Contractor", PayColumns: PayColumns{Salary: nf(5000)}},
			pay: 0,
		},
		"null columns read as zero": {
			row: EmployeeRow{EmpType: "Salaried"},
			pay: 0,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tc.pay, tc.row.ComputePay(), 1e-9)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"Salaried", "Hourly", "Commission"} {
		k, err := ParseKind(raw)
		require.NoError(t, err)
		assert.Equal(t, Kind(raw), k)
	}
	_, err := ParseKind("salaried")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPayrollLine_String(t *testing.T) {
	assert.Equal(t, "Royyim (Salaried) - Pay: $5000.00", PayrollLine{Name: "Royyim", Kind: "Salaried", Pay: 5000}.String())
	assert.Equal(t, "Mirhan (Commission) - Pay: $4000.00", PayrollLine{Name: "Mirhan", Kind: "Commission", Pay: 3000 + 0.05*20000}.String())
	assert.Equal(t, "X (Other) - Pay: $0.00", PayrollLine{Name: "X", Kind: "Other"}.String())
}
