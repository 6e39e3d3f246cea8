package cli

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/quickdrop/quickdrop-dash/internal/db"
	"github.com/quickdrop/quickdrop-dash/internal/logging"
	"github.com/quickdrop/quickdrop-dash/internal/warehouse"
)

var reportFilters filterFlags

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run every dashboard panel and print a full report",
	Long: `Run all dashboard panels plus the delivery-time statistics with the
given filters and print each section.

The panels are independent read-only queries and run in parallel; a
failing panel is reported in place and does not abort the others.`,
	RunE: runReport,
}

func init() {
	reportFilters.register(reportCmd)
}

// panelResult is one finished report section.
type panelResult struct {
	title string
	tbl   table
	err   error
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := reportFilters.filterSet()
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

	panels := []struct {
		title string
		run   func() (table, error)
	}{
		{"Revenue trend", func() (table, error) {
			rows, err := svc.Trend(ctx, f)
			return trendTable(rows), err
		}},
		{"Top products", func() (table, error) {
			rows, err := svc.TopProducts(ctx, f, cfg.Limits.TopProducts)
			return topProductsTable(rows), err
		}},
		{"Revenue by city and store", func() (table, error) {
			rows, err := svc.CityStore(ctx, f)
			return cityStoreTable(rows), err
		}},
		{"Payment mix", func() (table, error) {
			rows, err := svc.PayMix(ctx, f)
			return payMixTable(rows), err
		}},
		{"Delivery status", func() (table, error) {
			rows, err := svc.DeliveryStatus(ctx, f)
			return deliveryStatusTable(rows), err
		}},
		{"Top clients", func() (table, error) {
			rows, err := svc.TopClients(ctx, f, cfg.Limits.TopClients)
			return topClientsTable(rows), err
		}},
		{"Top couriers", func() (table, error) {
			rows, err := svc.TopCouriers(ctx, f, cfg.Limits.TopCouriers)
			return topCouriersTable(rows), err
		}},
		{"Clients by city", func() (table, error) {
			rows, err := svc.ClientsByCity(ctx, f)
			return clientsByCityTable(rows), err
		}},
		{"Delivery time", func() (table, error) {
			minutes, err := svc.DeliveryMinutes(ctx, f)
			if err != nil {
				return table{}, err
			}
			return deliveryStatsTable(warehouse.Summarize(minutes)), nil
		}},
	}

	// Panels are independent reads sharing only the pool and the cache;
	// run them in parallel and keep every result, failed or not.
	start := time.Now()
	results := make([]panelResult, len(panels))
	var failed atomic.Int64

	var wg sync.WaitGroup
	for i, p := range panels {
		wg.Add(1)
		go func(i int, title string, run func() (table, error)) {
			defer wg.Done()
			tbl, err := run()
			if err != nil {
				failed.Add(1)
				logging.Warn().Err(err).Str("panel", title).Msg("Panel query failed")
			}
			results[i] = panelResult{title: title, tbl: tbl, err: err}
		}(i, p.title, p.run)
	}
	wg.Wait()

	for _, r := range results {
		cmd.Printf("== %s ==\n", r.title)
		if r.err != nil {
			cmd.Printf("unavailable: %v\n\n", r.err)
			continue
		}
		if err := r.tbl.write(cmd.OutOrStdout()); err != nil {
			return err
		}
		cmd.Println()
	}

	logging.Info().
		Int("panels", len(panels)).
		Int64("failed", failed.Load()).
		Dur("elapsed", time.Since(start)).
		Msg("Report complete")

	return nil
}
