package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		DataBackend:     BackendYAML,
		StrongestMonths: 2,
		LogLevel:        "info",
		LogFormat:       "text",
		HTMLOut:         "dashboard.html",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid yaml backend with embedded dataset",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "valid memory backend",
			mutate:  func(c *Config) { c.DataBackend = BackendMemory },
			wantErr: false,
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sqlite" },
			wantErr:     true,
			errorString: "invalid data backend 'sqlite': must be one of [memory yaml]",
		},
		{
			name: "memory backend with dataset path",
			mutate: func(c *Config) {
				c.DataBackend = BackendMemory
				c.DatasetPath = "data.yaml"
			},
			wantErr:     true,
			errorString: "LETON_DATASET cannot be used with the memory backend",
		},
		{
			name:        "missing dataset file",
			mutate:      func(c *Config) { c.DatasetPath = "/non/existent/dataset.yaml" },
			wantErr:     true,
			errorString: "dataset file is not readable: /non/existent/dataset.yaml",
		},
		{
			name:        "negative strongest months",
			mutate:      func(c *Config) { c.StrongestMonths = -1 },
			wantErr:     true,
			errorString: "invalid strongest months -1: must not be negative",
		},
		{
			name:        "too many strongest months",
			mutate:      func(c *Config) { c.StrongestMonths = 13 },
			wantErr:     true,
			errorString: "invalid strongest months 13: must be at most 12",
		},
		{
			name:    "warning log level alias",
			mutate:  func(c *Config) { c.LogLevel = "warning" },
			wantErr: false,
		},
		{
			name:        "invalid log level",
			mutate:      func(c *Config) { c.LogLevel = "trace" },
			wantErr:     true,
			errorString: "invalid log level 'trace'",
		},
		{
			name:        "invalid log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml': must be text or json",
		},
		{
			name:        "empty html output",
			mutate:      func(c *Config) { c.HTMLOut = " " },
			wantErr:     true,
			errorString: "HTML output path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Config.Validate() error = %v, want substring %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateMultipleErrors(t *testing.T) {
	cfg := Config{DataBackend: "bogus", StrongestMonths: -3, LogLevel: "loud", LogFormat: "xml"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 5 {
		t.Errorf("expected 5 collected errors, got %d: %v", got, err)
	}
}

func TestConfig_ValidateWithFiles(t *testing.T) {
	dir := t.TempDir()
	dataset := filepath.Join(dir, "dataset.yaml")
	if err := os.WriteFile(dataset, []byte("line_items: []\n"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}

	cfg := validConfig()
	cfg.DatasetPath = dataset
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected existing dataset file to validate, got %v", err)
	}

	cfg.DatasetPath = dir
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "dataset path is a directory") {
		t.Errorf("expected directory rejection, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"LETON_DATA_BACKEND", "LETON_DATASET", "LETON_STRONGEST_MONTHS", "LOG_LEVEL", "LOG_FORMAT", "LETON_HTML_OUT"} {
		t.Setenv(key, "")
	}

	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		if cfg.DataBackend != BackendYAML || cfg.DatasetPath != "" || cfg.StrongestMonths != 2 ||
			cfg.LogLevel != "info" || cfg.LogFormat != "text" || cfg.HTMLOut != "dashboard.html" {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("LETON_DATA_BACKEND", "memory")
		t.Setenv("LETON_STRONGEST_MONTHS", "3")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "JSON")
		t.Setenv("LETON_HTML_OUT", "/tmp/out.html")
		cfg := Load()
		if cfg.DataBackend != BackendMemory || cfg.StrongestMonths != 3 || cfg.LogLevel != "debug" ||
			cfg.LogFormat != "json" || cfg.HTMLOut != "/tmp/out.html" {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("invalid numbers fall back to defaults", func(t *testing.T) {
		t.Setenv("LETON_STRONGEST_MONTHS", "many")
		if cfg := Load(); cfg.StrongestMonths != 2 {
			t.Errorf("expected default strongest months, got %d", cfg.StrongestMonths)
		}
	})
}
