package main

import (
	"context"
	"io"
	"log"

	"github.com/locvowork/payroll/internal/bootstrap"
	"github.com/locvowork/payroll/internal/logger"
)

func main() {
	ctx := context.Background()

	opts, err := bootstrap.OptionsFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	// the API returns the report as JSON, nothing goes to stdout
	app := bootstrap.NewApp(io.Discard)
	if err := app.Initialize(ctx, opts); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		log.Fatal(err)
	}
	app.InitHTTP()

	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped: %v", err)
		log.Fatal(err)
	}
}
