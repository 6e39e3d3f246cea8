//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

//go:build integration
// +build integration

// Integration tests for the warehouse query service.
// Run with: go test -tags=integration ./internal/warehouse/...
// Requires PostgreSQL to be available.
// Set QUICKDROP_TEST_CONN environment variable to override connection string.

package warehouse_test

import (
	"context"
	"testing"
	"time"

	"github.com/quickdrop/quickdrop-dash/internal/seed"
	"github.com/quickdrop/quickdrop-dash/internal/testutil"
	"github.com/quickdrop/quickdrop-dash/internal/warehouse"
)

func TestWarehouseIntegration(t *testing.T) {
	baseConnStr := testutil.SkipIfNoPostgres(t)

	testConnStr := testutil.CreateTestDB(t, baseConnStr, "warehouse")
	dbName := testutil.GetDBNameFromConnStr(testConnStr)

	cleanup := testutil.NewTestCleanup(t, baseConnStr, dbName)
	t.Cleanup(cleanup.Cleanup)

	pool := testutil.ConnectTestDB(t, testConnStr)
	cleanup.SetPool(pool)

	ctx := context.Background()

	t.Run("CreateSchema", func(t *testing.T) {
		if err := warehouse.CreateSchema(ctx, pool); err != nil {
			t.Fatalf("CreateSchema failed: %v", err)
		}
	})

	t.Run("LoadData", func(t *testing.T) {
		faker := seed.NewFaker()
		err := seed.LoadWarehouse(ctx, pool, faker, seed.WarehouseConfig{
			DimRows:  25,
			FactRows: 500,
			Days:     90,
		})
		if err != nil {
			t.Fatalf("LoadWarehouse failed: %v", err)
		}
	})

	svc := warehouse.NewService(pool, warehouse.Options{CacheTTL: time.Minute})
	t.Cleanup(svc.Close)

	t.Run("TrendUnfiltered", func(t *testing.T) {
		rows, err := svc.Trend(ctx, warehouse.FilterSet{})
		if err != nil {
			t.Fatalf("Trend failed: %v", err)
		}
		if len(rows) == 0 {
			t.Fatal("Trend returned no rows for a seeded warehouse")
		}
		for _, r := range rows {
			if r.Month < 1 || r.Month > 12 {
				t.Errorf("Trend returned month %d out of range", r.Month)
			}
			if r.Transactions <= 0 {
				t.Errorf("Trend bucket %d/%d has no transactions", r.Year, r.Month)
			}
			if r.Revenue.IsNegative() {
				t.Errorf("Trend bucket %d/%d has negative revenue %s",
					r.Year, r.Month, r.Revenue)
			}
		}
	})

	t.Run("TrendDateRange", func(t *testing.T) {
		all, err := svc.Trend(ctx, warehouse.FilterSet{})
		if err != nil {
			t.Fatalf("Trend failed: %v", err)
		}

		from := time.Now().AddDate(0, 0, -30)
		narrowed, err := svc.Trend(ctx, warehouse.FilterSet{DateFrom: &from})
		if err != nil {
			t.Fatalf("Trend with date range failed: %v", err)
		}
		if len(narrowed) > len(all) {
			t.Errorf("Narrowing the date range grew the trend from %d to %d buckets",
				len(all), len(narrowed))
		}
	})

	t.Run("TopProductsLimit", func(t *testing.T) {
		rows, err := svc.TopProducts(ctx, warehouse.FilterSet{}, 5)
		if err != nil {
			t.Fatalf("TopProducts failed: %v", err)
		}
		if len(rows) > 5 {
			t.Errorf("TopProducts returned %d rows, limit was 5", len(rows))
		}
		for i := 1; i < len(rows); i++ {
			if rows[i].Revenue.GreaterThan(rows[i-1].Revenue) {
				t.Errorf("TopProducts not ordered by revenue at index %d", i)
			}
		}
	})

	t.Run("CityFilter", func(t *testing.T) {
		city := seed.Cities[0]
		rows, err := svc.CityStore(ctx, warehouse.FilterSet{Cities: []string{city}})
		if err != nil {
			t.Fatalf("CityStore failed: %v", err)
		}
		for _, r := range rows {
			if r.City != city {
				t.Errorf("CityStore with city filter %q returned city %q", city, r.City)
			}
		}
	})

	t.Run("PayMixMethods", func(t *testing.T) {
		rows, err := svc.PayMix(ctx, warehouse.FilterSet{})
		if err != nil {
			t.Fatalf("PayMix failed: %v", err)
		}
		known := make(map[string]bool, len(seed.PaymentMethods))
		for _, m := range seed.PaymentMethods {
			known[m] = true
		}
		for _, r := range rows {
			if !known[r.Method] {
				t.Errorf("PayMix returned unknown payment method %q", r.Method)
			}
		}
	})

	t.Run("DeliveryMinutes", func(t *testing.T) {
		minutes, err := svc.DeliveryMinutes(ctx, warehouse.FilterSet{})
		if err != nil {
			t.Fatalf("DeliveryMinutes failed: %v", err)
		}
		for _, m := range minutes {
			if m < 0 {
				t.Errorf("DeliveryMinutes returned negative value %d", m)
			}
		}
		stats := warehouse.Summarize(minutes)
		if stats.Count != len(minutes) {
			t.Errorf("Summarize count %d does not match %d parsed values",
				stats.Count, len(minutes))
		}
	})

	t.Run("CachedSecondRead", func(t *testing.T) {
		f := warehouse.FilterSet{Categories: []string{seed.Categories[0]}}
		first, err := svc.TopClients(ctx, f, 10)
		if err != nil {
			t.Fatalf("TopClients failed: %v", err)
		}
		second, err := svc.TopClients(ctx, f, 10)
		if err != nil {
			t.Fatalf("Cached TopClients failed: %v", err)
		}
		if len(first) != len(second) {
			t.Errorf("Cached read returned %d rows, first read returned %d",
				len(second), len(first))
		}
	})
}
