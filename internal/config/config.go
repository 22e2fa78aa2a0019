package config

import (
	"fmt"
	"os"
	"strconv"

	"goherit/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Engine  EngineConfig
	Input   InputConfig
	Report  ReportConfig
	Logging LoggingConfig
}

// EngineConfig holds inference engine settings
type EngineConfig struct {
	// Workers is the enumeration worker count. Zero or one runs the engine
	// sequentially; negative means one worker per CPU.
	Workers int
}

// InputConfig holds pedigree source settings
type InputConfig struct {
	Sheet  string // worksheet name for xlsx sources
	Family string // family key for sqlite sources
}

// ReportConfig holds output rendering settings
type ReportConfig struct {
	Format  string // "text" or "json"
	Summary bool   // append cohort summary statistics
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// Report formats accepted by the writers.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Engine:  loadEngineConfig(),
		Input:   loadInputConfig(),
		Report:  loadReportConfig(),
		Logging: loadLoggingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadEngineConfig() EngineConfig {
	return EngineConfig{
		Workers: getEnvIntOrDefault("GOHERIT_WORKERS", 1),
	}
}

func loadInputConfig() InputConfig {
	return InputConfig{
		Sheet:  getEnvOrDefault("GOHERIT_SHEET", ""),
		Family: getEnvOrDefault("GOHERIT_FAMILY", ""),
	}
}

func loadReportConfig() ReportConfig {
	return ReportConfig{
		Format:  getEnvOrDefault("GOHERIT_FORMAT", FormatText),
		Summary: getEnvBoolOrDefault("GOHERIT_SUMMARY", false),
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}
}

func validateConfig(config *Config) error {
	if err := ValidateFormat(config.Report.Format); err != nil {
		return err
	}
	return nil
}

// ValidateFormat checks that a report format names a known writer.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown report format %q (want %s or %s)", format, FormatText, FormatJSON))
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
