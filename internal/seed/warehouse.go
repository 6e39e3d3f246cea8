//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickdrop/quickdrop-dash/internal/logging"
)

// WarehouseConfig controls the direct star-schema load.
type WarehouseConfig struct {
	// DimRows is how many rows each of the customer, store, courier and
	// product dimensions gets.
	DimRows int

	// FactRows is how many sales fact rows to insert.
	FactRows int

	// Days is how many days of date dimension to generate, ending today.
	Days int
}

const insertBatchSize = 500

// LoadWarehouse populates the star schema with synthetic data: a date
// spine, the five business dimensions, and FactRows fact rows referencing
// them. The schema must already exist.
func LoadWarehouse(ctx context.Context, pool *pgxpool.Pool, f *Faker, cfg WarehouseConfig) error {
	start := time.Now()

	logging.Info().
		Int("dim_rows", cfg.DimRows).
		Int("fact_rows", cfg.FactRows).
		Int("days", cfg.Days).
		Msg("Loading synthetic warehouse data")

	if err := loadDates(ctx, pool, cfg.Days); err != nil {
		return fmt.Errorf("failed to load date_dim: %w", err)
	}
	if err := loadCustomers(ctx, pool, f, cfg.DimRows); err != nil {
		return fmt.Errorf("failed to load customer_dim: %w", err)
	}
	if err := loadStores(ctx, pool, f, cfg.DimRows); err != nil {
		return fmt.Errorf("failed to load store_dim: %w", err)
	}
	if err := loadCouriers(ctx, pool, f, cfg.DimRows); err != nil {
		return fmt.Errorf("failed to load courier_dim: %w", err)
	}
	if err := loadProducts(ctx, pool, f, cfg.DimRows); err != nil {
		return fmt.Errorf("failed to load product_dim: %w", err)
	}
	if err := loadPayments(ctx, pool); err != nil {
		return fmt.Errorf("failed to load payment_dim: %w", err)
	}
	if err := loadFacts(ctx, pool, f, cfg); err != nil {
		return fmt.Errorf("failed to load sales_fact: %w", err)
	}

	logging.Info().
		Dur("elapsed", time.Since(start)).
		Msg("Warehouse load complete")

	return nil
}

// flushBatch sends a batch and drains every queued result.
func flushBatch(ctx context.Context, pool *pgxpool.Pool, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	br := pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func loadDates(ctx context.Context, pool *pgxpool.Pool, days int) error {
	batch := &pgx.Batch{}
	today := time.Now().Truncate(24 * time.Hour)

	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		batch.Queue(`
            INSERT INTO date_dim (date, year, month, day, quarter, weekday)
            VALUES ($1, $2, $3, $4, $5, $6)
            ON CONFLICT (date) DO NOTHING
        `, d, d.Year(), int(d.Month()), d.Day(), (int(d.Month())-1)/3+1, d.Weekday().String())

		if batch.Len() >= insertBatchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	return flushBatch(ctx, pool, batch)
}

func loadCustomers(ctx context.Context, pool *pgxpool.Pool, f *Faker, count int) error {
	batch := &pgx.Batch{}
	for i := 1; i <= count; i++ {
		batch.Queue(`
            INSERT INTO customer_dim (customer_id, customer_name, email, city, registered_on)
            VALUES ($1, $2, $3, $4, $5)
        `, i, f.Name(), f.Email(), f.City(), f.PastDate(730))

		if batch.Len() >= insertBatchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	return flushBatch(ctx, pool, batch)
}

func loadStores(ctx context.Context, pool *pgxpool.Pool, f *Faker, count int) error {
	batch := &pgx.Batch{}
	for i := 1; i <= count; i++ {
		batch.Queue(`
            INSERT INTO store_dim (store_id, store_name, store_type, city, active)
            VALUES ($1, $2, $3, $4, $5)
        `, i, "Tienda "+f.LastName(), Choose(f, StoreTypes), f.City(), true)

		if batch.Len() >= insertBatchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	return flushBatch(ctx, pool, batch)
}

func loadCouriers(ctx context.Context, pool *pgxpool.Pool, f *Faker, count int) error {
	batch := &pgx.Batch{}
	for i := 1; i <= count; i++ {
		batch.Queue(`
            INSERT INTO courier_dim (courier_id, courier_name, zone, plate)
            VALUES ($1, $2, $3, $4)
        `, i, f.Name(), Choose(f, Zones), f.Plate())

		if batch.Len() >= insertBatchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	return flushBatch(ctx, pool, batch)
}

func loadProducts(ctx context.Context, pool *pgxpool.Pool, f *Faker, count int) error {
	batch := &pgx.Batch{}
	for i := 1; i <= count; i++ {
		batch.Queue(`
            INSERT INTO product_dim (product_id, product_name, description, base_price, category)
            VALUES ($1, $2, $3, $4, $5)
        `, i, f.Word(), f.Sentence(6), f.Price(1, 100), f.Category())

		if batch.Len() >= insertBatchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	return flushBatch(ctx, pool, batch)
}

// loadPayments inserts the full method x status cross, nine rows.
func loadPayments(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}
	for _, method := range PaymentMethods {
		for _, status := range PaymentStatuses {
			batch.Queue(`
                INSERT INTO payment_dim (method, status) VALUES ($1, $2)
            `, method, status)
		}
	}
	return flushBatch(ctx, pool, batch)
}

func loadFacts(ctx context.Context, pool *pgxpool.Pool, f *Faker, cfg WarehouseConfig) error {
	numPayments := len(PaymentMethods) * len(PaymentStatuses)

	batch := &pgx.Batch{}
	for i := 0; i < cfg.FactRows; i++ {
		quantity := f.Int(1, 5)
		unitPrice := f.Price(1, 100)
		subtotal := float64(quantity) * unitPrice
		deliveryFee := f.Price(2, 8)

		batch.Queue(`
            INSERT INTO sales_fact (
                date_key, customer_key, product_key, store_key, courier_key, payment_key,
                quantity, unit_price, subtotal, total_paid, delivery_time, delivery_status
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        `,
			f.Int(1, cfg.Days),
			f.Int(1, cfg.DimRows),
			f.Int(1, cfg.DimRows),
			f.Int(1, cfg.DimRows),
			f.Int(1, cfg.DimRows),
			f.Int(1, numPayments),
			quantity,
			unitPrice,
			subtotal,
			subtotal+deliveryFee,
			f.DeliveryDuration(),
			Choose(f, DeliveryStatuses),
		)

		if batch.Len() >= insertBatchSize {
			if err := flushBatch(ctx, pool, batch); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	return flushBatch(ctx, pool, batch)
}
