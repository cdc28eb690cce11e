package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/payroll/internal/config"
	"github.com/locvowork/payroll/internal/database"
	"github.com/locvowork/payroll/internal/domain"
	"github.com/locvowork/payroll/internal/handler"
	"github.com/locvowork/payroll/internal/logger"
	"github.com/locvowork/payroll/internal/repository"
	"github.com/locvowork/payroll/internal/service"
)

// Options holds everything Initialize needs to wire the store and services.
type Options struct {
	DBDriver     string
	DSN          string
	ReportPath   string
	WorkbookPath string
	LogFilePath  string
	LogLevel     string
	Port         int
}

// DefaultOptions is the fixed configuration of the payroll entry point:
// payroll.db next to the binary and payroll_report.txt as the report file.
func DefaultOptions() Options {
	return Options{
		DBDriver:   config.DefaultDBDriver,
		DSN:        config.DefaultDBPath,
		ReportPath: config.DefaultReportPath,
		LogLevel:   config.DefaultLogLevel,
		Port:       config.DefaultAppPort,
	}
}

// OptionsFromEnv loads .env and the process environment into Options.
func OptionsFromEnv() (Options, error) {
	if err := config.LoadEnvConfig(); err != nil {
		return Options{}, fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig
	return Options{
		DBDriver:     cfg.DB_DRIVER,
		DSN:          cfg.DSN(),
		ReportPath:   cfg.REPORT_FILE_PATH,
		WorkbookPath: cfg.REPORT_XLSX_PATH,
		LogFilePath:  cfg.LOG_FILE_PATH,
		LogLevel:     cfg.LOG_LEVEL,
		Port:         cfg.APP_PORT,
	}, nil
}

type App struct {
	Source    *database.Source
	Schema    domain.SchemaManager
	Repo      domain.EmployeeRepository
	Employees service.EmployeeService
	Payroll   service.PayrollService
	Seeder    *database.DataSeeder

	// Echo is nil until InitHTTP is called.
	Echo *echo.Echo

	// Out receives the text report of payroll runs.
	Out io.Writer

	opts Options
}

func NewApp(out io.Writer) *App {
	return &App{Out: out}
}

// Initialize sets up logging, ensures the schema and builds the services.
func (a *App) Initialize(ctx context.Context, opts Options) error {
	a.opts = opts

	// Initialize logging
	logger.InitLogging(opts.LogFilePath, opts.LogLevel)

	source, err := database.NewSource(database.Config{Driver: opts.DBDriver, DSN: opts.DSN})
	if err != nil {
		return fmt.Errorf("failed to configure database: %w", err)
	}
	a.Source = source

	a.Schema = database.NewSchema(source)
	if err := a.Schema.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	logger.DebugLog(ctx, "schema ready on %s", source.Dialect())

	// Initialize dependencies
	a.Repo = repository.NewEmployeeRepository(source)
	a.Seeder = database.NewDataSeeder(a.Repo)
	a.Employees = service.NewEmployeeService(a.Repo)
	a.Payroll = service.NewPayrollService(a.Repo, service.PayrollOptions{
		ReportPath:   opts.ReportPath,
		WorkbookPath: opts.WorkbookPath,
		Out:          a.Out,
	})

	return nil
}

// InitHTTP builds the echo server on top of the initialized services.
func (a *App) InitHTTP() {
	a.Echo = echo.New()
	a.Echo.HideBanner = true

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(handler.NewEmployeeHandler(a.Employees), handler.NewPayrollHandler(a.Payroll))
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler, payrollHandler *handler.PayrollHandler) {
	a.Echo.GET("/healthcheck", handler.HealthcheckHandler)

	a.Echo.POST("/employees", empHandler.CreateHandler)
	a.Echo.GET("/employees/:id", empHandler.GetHandler)

	a.Echo.POST("/payroll", payrollHandler.RunHandler)
	a.Echo.GET("/payroll/export", payrollHandler.ExportHandler)
}

// Run serves the HTTP API until the server stops.
func (a *App) Run() error {
	if a.Echo == nil {
		a.InitHTTP()
	}
	return a.Echo.Start(":" + strconv.Itoa(a.opts.Port))
}
