package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvTelemetryDSN = "SENTRY_DSN"
	EnvDebug        = "APP_DEBUG"
)

// Env holds process-scoped configuration. It is loaded once at startup and
// passed down explicitly instead of being read from ambient globals.
type Env struct {
	TelemetryDSN string // telemetry endpoint credential; empty disables reporting
	Debug        bool   // enables debug logging and developer menu items
}

// LoadEnv reads an optional .env file and the process environment. It runs
// before the tinted handler is installed, so the message below goes through
// the default slog handler.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	debug, err := strconv.ParseBool(os.Getenv(EnvDebug))
	if err != nil {
		debug = false
	}

	return Env{
		TelemetryDSN: os.Getenv(EnvTelemetryDSN),
		Debug:        debug,
	}
}

// TelemetryConfigured returns true when a telemetry credential is present
func (e Env) TelemetryConfigured() bool {
	return e.TelemetryDSN != ""
}
