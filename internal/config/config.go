//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for quickdrop-dash.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for quickdrop-dash.
type Config struct {
	// Connection is the PostgreSQL connection string for the warehouse.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Cache holds result cache configuration.
	Cache CacheConfig `mapstructure:"cache"`

	// Limits holds default row limits for the top-N panels.
	Limits LimitsConfig `mapstructure:"limits"`

	// Seed holds configuration for synthetic data generation.
	Seed SeedConfig `mapstructure:"seed"`
}

// CacheConfig holds result cache configuration.
type CacheConfig struct {
	// TTLSeconds is how long a cached panel result stays fresh.
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// LimitsConfig holds default row limits for the limited panels.
type LimitsConfig struct {
	TopProducts int `mapstructure:"top_products"`
	TopClients  int `mapstructure:"top_clients"`
	TopCouriers int `mapstructure:"top_couriers"`
}

// SeedConfig holds configuration for synthetic data generation.
type SeedConfig struct {
	// OutDir is where the seed command writes operational CSV files.
	OutDir string `mapstructure:"out_dir"`

	// FactRows is how many fact rows init loads into the warehouse.
	FactRows int `mapstructure:"fact_rows"`

	// DimRows is how many rows each non-date dimension gets.
	DimRows int `mapstructure:"dim_rows"`

	// Days is how many days of date dimension to generate, ending today.
	Days int `mapstructure:"days"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Cache: CacheConfig{
			TTLSeconds: 300, // 5 minutes
		},
		Limits: LimitsConfig{
			TopProducts: 10,
			TopClients:  15,
			TopCouriers: 20,
		},
		Seed: SeedConfig{
			OutDir:   "csv_quickdrop",
			FactRows: 5000,
			DimRows:  500,
			Days:     365,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./quickdrop-dash.yaml
// 3. ~/.config/quickdrop-dash/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("quickdrop-dash")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "quickdrop-dash"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache ttl_seconds must be non-negative")
	}
	return nil
}

// ValidateSeed checks configuration required for the seed and init commands.
func (c *Config) ValidateSeed() error {
	if c.Seed.DimRows < 1 {
		return fmt.Errorf("seed dim_rows must be at least 1")
	}
	if c.Seed.FactRows < 1 {
		return fmt.Errorf("seed fact_rows must be at least 1")
	}
	if c.Seed.Days < 1 {
		return fmt.Errorf("seed days must be at least 1")
	}
	return nil
}
