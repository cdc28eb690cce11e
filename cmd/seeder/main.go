package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/locvowork/payroll/internal/bootstrap"
	"github.com/locvowork/payroll/internal/config"
	"github.com/locvowork/payroll/internal/database"
	"github.com/locvowork/payroll/internal/domain"
	"github.com/locvowork/payroll/internal/logger"
)

func main() {
	file := flag.String("file", "", "YAML seed file (defaults to SEED_FILE, then the built-in sample set)")
	flag.Parse()

	ctx := context.Background()

	fmt.Println("Payroll Data Seeder")
	fmt.Println(strings.Repeat("=", 50))

	opts, err := bootstrap.OptionsFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	app := bootstrap.NewApp(os.Stdout)
	if err := app.Initialize(ctx, opts); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		log.Fatal(err)
	}

	path := *file
	if path == "" {
		path = config.DefaultEnvConfig.SEED_FILE
	}

	employees, err := loadEmployees(path)
	if err != nil {
		log.Fatalf("Loading seed data failed: %v", err)
	}

	if err := app.Seeder.SeedData(ctx, employees); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("Inserted %d employees\n", len(employees))
}

func loadEmployees(path string) ([]domain.Employee, error) {
	if path == "" {
		fmt.Println("Using built-in sample employees")
		return database.SampleEmployees(), nil
	}
	fmt.Printf("Using seed file: %s\n", path)
	return database.LoadSeedFile(path)
}
