package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quickdrop/quickdrop-dash/internal/db"
	"github.com/quickdrop/quickdrop-dash/internal/warehouse"
)

var (
	queryLimit   int
	queryCSVPath string
	queryFilters filterFlags
)

var queryCmd = &cobra.Command{
	Use:   "query <panel>",
	Short: "Run a single dashboard panel query",
	Long: `Run one of the dashboard panel queries against the warehouse with the
given filters and print the result as a table.

Panels:
  trend            revenue, quantity and transactions by year/month
  top_products     highest-revenue products (--limit)
  city_store       revenue and units per store, grouped by city
  pay_mix          revenue and transactions per payment method
  delivery_status  deliveries and revenue per delivery status
  top_clients      highest-revenue customers (--limit)
  top_couriers     busiest couriers (--limit)
  clients_by_city  distinct customers and revenue per city
  delivery_stats   parsed delivery minutes: count, mean, median

Example:
  quickdrop-dash query top_products --from 2024-01-01 --to 2024-03-31 --city Cali --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryFilters.register(queryCmd)
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0,
		"row limit for the top_* panels (default from config)")
	queryCmd.Flags().StringVar(&queryCSVPath, "csv", "",
		"also write the result to this CSV file")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := queryFilters.filterSet()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer pool.Close()

	svc := warehouse.NewService(pool, warehouse.Options{
		CacheTTL: time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	})
	defer svc.Close()

	tbl, err := runPanel(ctx, svc, args[0], f)
	if err != nil {
		return err
	}

	if err := tbl.write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if queryCSVPath != "" {
		if err := tbl.writeCSV(queryCSVPath); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		cmd.Printf("Wrote %s\n", queryCSVPath)
	}
	return nil
}

func runPanel(ctx context.Context, svc *warehouse.Service, panel string, f warehouse.FilterSet) (table, error) {
	limit := func(fallback int) int {
		if queryLimit != 0 {
			return queryLimit
		}
		return fallback
	}

	switch warehouse.QueryName(panel) {
	case warehouse.QueryTrend:
		rows, err := svc.Trend(ctx, f)
		return trendTable(rows), err
	case warehouse.QueryTopProducts:
		rows, err := svc.TopProducts(ctx, f, limit(cfg.Limits.TopProducts))
		return topProductsTable(rows), err
	case warehouse.QueryCityStore:
		rows, err := svc.CityStore(ctx, f)
		return cityStoreTable(rows), err
	case warehouse.QueryPayMix:
		rows, err := svc.PayMix(ctx, f)
		return payMixTable(rows), err
	case warehouse.QueryDeliveryStatus:
		rows, err := svc.DeliveryStatus(ctx, f)
		return deliveryStatusTable(rows), err
	case warehouse.QueryTopClients:
		rows, err := svc.TopClients(ctx, f, limit(cfg.Limits.TopClients))
		return topClientsTable(rows), err
	case warehouse.QueryTopCouriers:
		rows, err := svc.TopCouriers(ctx, f, limit(cfg.Limits.TopCouriers))
		return topCouriersTable(rows), err
	case warehouse.QueryClientsByCity:
		rows, err := svc.ClientsByCity(ctx, f)
		return clientsByCityTable(rows), err
	}

	if panel == "delivery_stats" {
		minutes, err := svc.DeliveryMinutes(ctx, f)
		if err != nil {
			return table{}, err
		}
		return deliveryStatsTable(warehouse.Summarize(minutes)), nil
	}

	names := make([]string, 0, len(warehouse.CatalogNames())+1)
	for _, n := range warehouse.CatalogNames() {
		names = append(names, string(n))
	}
	names = append(names, "delivery_stats")
	return table{}, fmt.Errorf("unknown panel %q (available: %s)", panel, strings.Join(names, ", "))
}
