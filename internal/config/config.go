package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	BackendMemory = "memory"
	BackendYAML   = "yaml"
)

type Config struct {
	// Dataset
	DataBackend string
	DatasetPath string // empty = embedded sample document

	// Reporting
	StrongestMonths int

	// Logging
	LogLevel  string
	LogFormat string

	// HTML export
	HTMLOut string
}

func Load() *Config {
	cfg := &Config{
		DataBackend: getEnv("LETON_DATA_BACKEND", BackendYAML),
		DatasetPath: getEnv("LETON_DATASET", ""),

		StrongestMonths: getEnvInt("LETON_STRONGEST_MONTHS", 2),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "text")),

		HTMLOut: getEnv("LETON_HTML_OUT", "dashboard.html"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{BackendMemory, BackendYAML}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// The memory backend has its own built-in dataset
	if c.DataBackend == BackendMemory && c.DatasetPath != "" {
		errors = append(errors, "LETON_DATASET cannot be used with the memory backend")
	}

	// Check if dataset file exists (if specified)
	if c.DataBackend == BackendYAML && c.DatasetPath != "" {
		if info, err := os.Stat(c.DatasetPath); err != nil {
			errors = append(errors, fmt.Sprintf("dataset file is not readable: %s", c.DatasetPath))
		} else if info.IsDir() {
			errors = append(errors, fmt.Sprintf("dataset path is a directory: %s", c.DatasetPath))
		}
	}

	if c.StrongestMonths < 0 {
		errors = append(errors, fmt.Sprintf("invalid strongest months %d: must not be negative", c.StrongestMonths))
	} else if c.StrongestMonths > 12 {
		errors = append(errors, fmt.Sprintf("invalid strongest months %d: must be at most 12", c.StrongestMonths))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, warning, error", c.LogLevel))
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if strings.TrimSpace(c.HTMLOut) == "" {
		errors = append(errors, "HTML output path cannot be empty")
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
