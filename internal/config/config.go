package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when a key is unset.
const (
	DefaultDBDriver   = "sqlite3"
	DefaultDBPath     = "payroll.db"
	DefaultReportPath = "payroll_report.txt"
	DefaultLogLevel   = "info"
	DefaultAppPort    = 8080
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// database config
	DB_DRIVER string
	DB_PATH   string
	DB_DSN    string
	// report config
	REPORT_FILE_PATH string
	REPORT_XLSX_PATH string
	SEED_FILE        string
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	// http config
	APP_PORT int
}

// LoadEnvConfig reads .env files (when present) and the process environment.
// Every key has a default, so an empty environment is a valid configuration.
func LoadEnvConfig(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		DB_DRIVER:        getEnvString("DB_DRIVER", DefaultDBDriver),
		DB_PATH:          getEnvString("DB_PATH", DefaultDBPath),
		DB_DSN:           getEnvString("DB_DSN", ""),
		REPORT_FILE_PATH: getEnvString("REPORT_FILE_PATH", DefaultReportPath),
		REPORT_XLSX_PATH: getEnvString("REPORT_XLSX_PATH", ""),
		SEED_FILE:        getEnvString("SEED_FILE", ""),
		LOG_FILE_PATH:    getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:        getEnvString("LOG_LEVEL", DefaultLogLevel),
		APP_PORT:         getEnvInt("APP_PORT", DefaultAppPort),
	}
	return nil
}

// DSN returns the connection string passed to sql.Open for the configured driver.
func (c *envConfig) DSN() string {
	if c.DB_DSN != "" {
		return c.DB_DSN
	}
	return c.DB_PATH
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}
