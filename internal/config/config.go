// Package config loads run settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultInputPath    = "./data/input.json"
	defaultOutputPath   = "./data/output.json"
	defaultExpectedPath = "./data/expected_output.json"
	defaultLogLevel     = "info"
)

// Config holds the settings of one fare calculation run.
type Config struct {
	// InputPath is the input document with cars, rentals and options.
	InputPath string

	// OutputPath is where the output document is written.
	OutputPath string

	// ExpectedPath is the reference output to compare against. Empty disables the comparison.
	ExpectedPath string

	// MetricsPath is a Prometheus textfile to write run metrics to. Empty disables it.
	MetricsPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if there is one.
func Load() Config {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is ignored and
// variables already set in the environment win over the file.
func LoadFrom(envFile string) Config {
	_ = godotenv.Load(envFile)

	return Config{
		InputPath:    envOrDefault("FARES_INPUT", defaultInputPath),
		OutputPath:   envOrDefault("FARES_OUTPUT", defaultOutputPath),
		ExpectedPath: envOrFallback("FARES_EXPECTED", defaultExpectedPath),
		MetricsPath:  os.Getenv("FARES_METRICS_FILE"),
		LogLevel:     envOrDefault("LOG_LEVEL", defaultLogLevel),
	}
}

// envOrDefault returns def when key is unset or empty.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envOrFallback returns def only when key is unset, so an explicit empty value
// can switch a feature off.
func envOrFallback(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
