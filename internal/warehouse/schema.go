//-------------------------------------------------------------------------
//
// QuickDrop Analytics Dashboard
//
// Copyright (c) 2025 - 2026, QuickDrop, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"fmt"
)

// Star schema for the QuickDrop sales warehouse: one fact table
// referencing six dimensions. The dashboard only ever reads from these
// tables; they are written by the seeder and by the upstream ETL.
const createSchemaSQL = `
-- Date dimension: one row per calendar day
CREATE TABLE IF NOT EXISTS date_dim (
    date_key SERIAL PRIMARY KEY,
    date     DATE NOT NULL UNIQUE,
    year     INTEGER NOT NULL,
    month    INTEGER NOT NULL,
    day      INTEGER NOT NULL,
    quarter  INTEGER NOT NULL,
    weekday  VARCHAR(10) NOT NULL
);

-- Customer dimension
CREATE TABLE IF NOT EXISTS customer_dim (
    customer_key  SERIAL PRIMARY KEY,
    customer_id   INTEGER,
    customer_name VARCHAR(100) NOT NULL,
    email         VARCHAR(100),
    city          VARCHAR(50),
    registered_on DATE
);

-- Store dimension
CREATE TABLE IF NOT EXISTS store_dim (
    store_key  SERIAL PRIMARY KEY,
    store_id   INTEGER,
    store_name VARCHAR(100) NOT NULL,
    store_type VARCHAR(50),
    city       VARCHAR(50),
    active     BOOLEAN NOT NULL DEFAULT TRUE
);

-- Courier dimension
CREATE TABLE IF NOT EXISTS courier_dim (
    courier_key  SERIAL PRIMARY KEY,
    courier_id   INTEGER,
    courier_name VARCHAR(100) NOT NULL,
    zone         VARCHAR(50),
    plate        VARCHAR(10)
);

-- Product dimension
CREATE TABLE IF NOT EXISTS product_dim (
    product_key  SERIAL PRIMARY KEY,
    product_id   INTEGER,
    product_name VARCHAR(100) NOT NULL,
    description  TEXT,
    base_price   NUMERIC(6,2),
    category     VARCHAR(50)
);

-- Payment dimension
CREATE TABLE IF NOT EXISTS payment_dim (
    payment_key SERIAL PRIMARY KEY,
    method      VARCHAR(30) NOT NULL,
    status      VARCHAR(30)
);

-- Sales fact table: one row per sale transaction
CREATE TABLE IF NOT EXISTS sales_fact (
    sale_key        SERIAL PRIMARY KEY,
    date_key        INTEGER NOT NULL REFERENCES date_dim(date_key),
    customer_key    INTEGER NOT NULL REFERENCES customer_dim(customer_key),
    product_key     INTEGER NOT NULL REFERENCES product_dim(product_key),
    store_key       INTEGER NOT NULL REFERENCES store_dim(store_key),
    courier_key     INTEGER NOT NULL REFERENCES courier_dim(courier_key),
    payment_key     INTEGER NOT NULL REFERENCES payment_dim(payment_key),
    quantity        INTEGER NOT NULL,
    unit_price      NUMERIC(6,2) NOT NULL,
    subtotal        NUMERIC(8,2) NOT NULL,
    total_paid      NUMERIC(8,2) NOT NULL,
    delivery_time   TEXT,
    delivery_status VARCHAR(30)
);

-- Indexes on the join and filter columns the catalog touches
CREATE INDEX IF NOT EXISTS idx_sales_fact_date_key     ON sales_fact(date_key);
CREATE INDEX IF NOT EXISTS idx_sales_fact_customer_key ON sales_fact(customer_key);
CREATE INDEX IF NOT EXISTS idx_sales_fact_product_key  ON sales_fact(product_key);
CREATE INDEX IF NOT EXISTS idx_sales_fact_store_key    ON sales_fact(store_key);
CREATE INDEX IF NOT EXISTS idx_sales_fact_courier_key  ON sales_fact(courier_key);
CREATE INDEX IF NOT EXISTS idx_sales_fact_payment_key  ON sales_fact(payment_key);
CREATE INDEX IF NOT EXISTS idx_date_dim_date           ON date_dim(date);
CREATE INDEX IF NOT EXISTS idx_date_dim_year_month     ON date_dim(year, month);
CREATE INDEX IF NOT EXISTS idx_store_dim_city          ON store_dim(city);
CREATE INDEX IF NOT EXISTS idx_product_dim_category    ON product_dim(category);
CREATE INDEX IF NOT EXISTS idx_payment_dim_method      ON payment_dim(method);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS sales_fact CASCADE;
DROP TABLE IF EXISTS date_dim CASCADE;
DROP TABLE IF EXISTS customer_dim CASCADE;
DROP TABLE IF EXISTS store_dim CASCADE;
DROP TABLE IF EXISTS courier_dim CASCADE;
DROP TABLE IF EXISTS product_dim CASCADE;
DROP TABLE IF EXISTS payment_dim CASCADE;
`

// CreateSchema creates the warehouse star schema if it does not exist.
func CreateSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create warehouse schema: %w", err)
	}
	return nil
}

// DropSchema drops the warehouse star schema.
func DropSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, dropSchemaSQL); err != nil {
		return fmt.Errorf("failed to drop warehouse schema: %w", err)
	}
	return nil
}
