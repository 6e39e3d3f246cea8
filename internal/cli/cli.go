//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for quickdrop-dash.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/quickdrop/quickdrop-dash/internal/config"
	"github.com/quickdrop/quickdrop-dash/internal/logging"
	"github.com/quickdrop/quickdrop-dash/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "quickdrop-dash",
		Short: "Analytics dashboard over the QuickDrop sales warehouse",
		Long: `quickdrop-dash runs aggregate queries against the QuickDrop star-schema
sales warehouse: revenue trends, top products, city and store breakdowns,
payment mix, delivery performance, and client rankings, all filterable by
date range, city, product category and payment method.

It also prepares the warehouse itself: init creates the star schema and
loads synthetic data, and seed writes CSV files for the operational
source tables.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./quickdrop-dash.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string for the warehouse")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(reportCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
