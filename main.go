// Package main provides the accreditd command: the accreditation dashboard API
// server plus tools to inspect and convert contract data sets.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/AnTengye/accreditation/config"
	"github.com/AnTengye/accreditation/pkg/logger"
	"github.com/AnTengye/accreditation/service"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "accreditd",
	Short:        "Accreditation contracts dashboard",
	Long:         "accreditd serves read-only dashboard views over a data set of university program accreditation contracts.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, falling back to defaults when it is absent,
// and installs the configured logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	if err == nil {
		slog.Info("configuration loaded successfully", "path", configPath)
	} else {
		slog.Info("config file not found, using defaults", "path", configPath)
	}
	return cfg, nil
}

// dataSource builds the configured data set source
func dataSource(cfg *config.Config) (service.Source, error) {
	switch cfg.Data.Source {
	case config.SourceMinio:
		minioSvc, err := service.NewMinioService(&cfg.Minio)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize MINIO service: %w", err)
		}
		return service.MinioSource{Service: minioSvc, Object: cfg.Data.Object}, nil
	case config.SourceFile, "":
		return service.FileSource{Path: cfg.Data.Path}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// loadStore reads the data set named by cfg
func loadStore(ctx context.Context, cfg *config.Config) (*service.ContractStore, error) {
	src, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}
	return service.LoadStore(ctx, src)
}
