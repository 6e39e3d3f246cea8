package cli

import (
	"github.com/spf13/cobra"

	"github.com/quickdrop/quickdrop-dash/internal/seed"
)

var (
	seedOutDir string
	seedRows   int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate CSV seed files for the operational tables",
	Long: `Generate synthetic CSV seed data for the operational tables feeding
the warehouse: clientes, tiendas, categorias, productos, repartidores,
pedidos, detalle_pedido, entregas and pagos.

This does not touch the database; the files are meant for the upstream
loader. Use init to populate the warehouse directly.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedOutDir, "out", "",
		"output directory for CSV files")
	seedCmd.Flags().IntVar(&seedRows, "rows", 0,
		"rows per operational table")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedOutDir != "" {
		cfg.Seed.OutDir = seedOutDir
	}
	if seedRows > 0 {
		cfg.Seed.DimRows = seedRows
	}
	if err := cfg.ValidateSeed(); err != nil {
		return err
	}

	faker := seed.NewFaker()
	return seed.WriteCSVs(cfg.Seed.OutDir, faker, seed.CSVConfig{Rows: cfg.Seed.DimRows})
}
