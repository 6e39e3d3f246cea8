package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickdrop/quickdrop-dash/internal/db"
	"github.com/quickdrop/quickdrop-dash/internal/logging"
	"github.com/quickdrop/quickdrop-dash/internal/seed"
	"github.com/quickdrop/quickdrop-dash/internal/warehouse"
)

var (
	initFactRows     int
	initDimRows      int
	initDays         int
	initDropExisting bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the warehouse schema and load synthetic data",
	Long: `Create the star schema (fact table plus six dimensions) in the target
database and populate it with synthetic sales data.

Example:
  quickdrop-dash init --facts 5000 --connection "postgres://..."`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().IntVar(&initFactRows, "facts", 0,
		"number of sales fact rows to load")
	initCmd.Flags().IntVar(&initDimRows, "dims", 0,
		"number of rows per business dimension")
	initCmd.Flags().IntVar(&initDays, "days", 0,
		"days of date dimension to generate, ending today")
	initCmd.Flags().BoolVar(&initDropExisting, "drop-existing", false,
		"drop existing warehouse schema before initialization")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if initFactRows > 0 {
		cfg.Seed.FactRows = initFactRows
	}
	if initDimRows > 0 {
		cfg.Seed.DimRows = initDimRows
	}
	if initDays > 0 {
		cfg.Seed.Days = initDays
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.ValidateSeed(); err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer pool.Close()

	if initDropExisting {
		logging.Info().Msg("Dropping existing warehouse schema")
		if err := warehouse.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	logging.Info().Msg("Creating warehouse schema")
	if err := warehouse.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	faker := seed.NewFaker()
	if err := seed.LoadWarehouse(ctx, pool, faker, seed.WarehouseConfig{
		DimRows:  cfg.Seed.DimRows,
		FactRows: cfg.Seed.FactRows,
		Days:     cfg.Seed.Days,
	}); err != nil {
		return fmt.Errorf("failed to load warehouse data: %w", err)
	}

	if err := db.SaveSeedInfo(ctx, pool, cfg.Seed.FactRows); err != nil {
		return fmt.Errorf("failed to save seed metadata: %w", err)
	}

	logging.Info().
		Int("fact_rows", cfg.Seed.FactRows).
		Msg("Warehouse initialization complete")

	return nil
}
