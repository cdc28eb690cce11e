package main

import (
	"context"
	"os"

	"github.com/locvowork/payroll/internal/bootstrap"
	"github.com/locvowork/payroll/internal/database"
	"github.com/locvowork/payroll/internal/logger"
)

func main() {
	ctx := context.Background()

	// fixed configuration: no flags, arguments or environment are read
	app := bootstrap.NewApp(os.Stdout)
	if err := app.Initialize(ctx, bootstrap.DefaultOptions()); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		os.Exit(1)
	}

	if err := app.Seeder.SeedData(ctx, database.SampleEmployees()); err != nil {
		logger.ErrorLog(ctx, "Failed to insert sample employees: %v", err)
		os.Exit(1)
	}

	if _, err := app.Payroll.ProcessPayroll(ctx); err != nil {
		logger.ErrorLog(ctx, "Payroll run failed: %v", err)
		os.Exit(1)
	}
}
