// Package cli provides the initialization steps shared by every leton
// subcommand: environment, configuration, logging and dataset wiring.
package cli

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"leton/assets"
	"leton/internal/config"
	"leton/internal/dataset"
	"leton/internal/dataset/memory"
	"leton/internal/dataset/yamlfile"
	"leton/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads configuration from the environment and validates it.
func LoadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the structured logger described by cfg and makes it
// the process default.
func SetupLogger(cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc := log.DefaultConfig()
	lc.Level = level
	lc.Format = cfg.LogFormat
	logger := log.New(lc)
	log.SetDefault(logger)
	return logger, nil
}

// OpenDataset returns the source selected by the configured backend.
// The yaml backend without a path reads the embedded sample document.
func OpenDataset(ctx context.Context, cfg *config.Config, logger *log.Logger) (dataset.Source, error) {
	l := logger.WithComponent(log.ComponentDataset)

	var (
		src dataset.Source
		err error
	)
	switch cfg.DataBackend {
	case config.BackendMemory:
		src = memory.NewSample()
	case config.BackendYAML:
		if cfg.DatasetPath == "" {
			src, err = yamlfile.Parse(ctx, assets.SampleDataset)
		} else {
			src, err = yamlfile.Open(ctx, cfg.DatasetPath)
		}
	default:
		err = fmt.Errorf("unknown data backend %q", cfg.DataBackend)
	}
	if err != nil {
		fields := log.NewFields().WithOperation(log.OpLoad).WithError(err)
		fields[log.FieldBackend] = cfg.DataBackend
		fields[log.FieldPath] = cfg.DatasetPath
		l.ErrorContext(ctx, "Failed to load dataset", fields.ToSlice()...)
		return nil, err
	}

	l.DebugContext(ctx, "Dataset loaded",
		log.FieldOperation, log.OpLoad,
		log.FieldBackend, cfg.DataBackend,
		log.FieldPath, cfg.DatasetPath)
	return src, nil
}
