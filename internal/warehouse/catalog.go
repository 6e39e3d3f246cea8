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
	"fmt"
	"strings"
)

// QueryName identifies an entry in the aggregate query catalog.
type QueryName string

// Catalog entries. One per dashboard panel.
const (
	QueryTrend          QueryName = "trend"
	QueryTopProducts    QueryName = "top_products"
	QueryCityStore      QueryName = "city_store"
	QueryPayMix         QueryName = "pay_mix"
	QueryDeliveryStatus QueryName = "delivery_status"
	QueryTopClients     QueryName = "top_clients"
	QueryTopCouriers    QueryName = "top_couriers"
	QueryClientsByCity  QueryName = "clients_by_city"
)

// queryTemplate is a fixed SQL template. The {where} token receives the
// predicate fragment; limited templates carry a {limit} token that is
// rewritten to the next free bind ordinal after the predicate arguments.
type queryTemplate struct {
	sql        string
	needsLimit bool
}

// Every template joins the date, store, product and payment dimensions
// even when it selects no columns from them: the shared predicate may
// reference any of those four, and it must stay valid regardless of
// which template it is substituted into. The customer and courier
// dimensions are outside the predicate's reach and are joined only by
// the queries that select from them.
//
// Revenue sums are cast to numeric(14,2) in SQL so rounding happens in
// the database, not in the application.
var catalog = map[QueryName]queryTemplate{
	QueryTrend: {sql: `
        SELECT date_dim.year, date_dim.month,
               SUM(sales_fact.total_paid)::numeric(14,2) AS revenue,
               SUM(sales_fact.quantity)                  AS quantity,
               COUNT(*)                                  AS transactions
        FROM sales_fact
        JOIN date_dim    ON sales_fact.date_key    = date_dim.date_key
        JOIN store_dim   ON sales_fact.store_key   = store_dim.store_key
        JOIN product_dim ON sales_fact.product_key = product_dim.product_key
        JOIN payment_dim ON sales_fact.payment_key = payment_dim.payment_key
        {where}
        GROUP BY date_dim.year, date_dim.month
        ORDER BY date_dim.year, date_dim.month`},

	QueryTopProducts: {needsLimit: true, sql: `
        SELECT product_dim.category, product_dim.product_name,
               SUM(sales_fact.quantity)                  AS units,
               SUM(sales_fact.total_paid)::numeric(14,2) AS revenue
        FROM sales_fact
        JOIN product_dim ON sales_fact.product_key = product_dim.product_key
        JOIN date_dim    ON sales_fact.date_key    = date_dim.date_key
        JOIN store_dim   ON sales_fact.store_key   = store_dim.store_key
        JOIN payment_dim ON sales_fact.payment_key = payment_dim.payment_key
        {where}
        GROUP BY product_dim.category, product_dim.product_name
        ORDER BY revenue DESC
        LIMIT {limit}`},

	QueryCityStore: {sql: `
        SELECT store_dim.city, store_dim.store_name,
               SUM(sales_fact.total_paid)::numeric(14,2) AS revenue,
               SUM(sales_fact.quantity)                  AS units
        FROM sales_fact
        JOIN store_dim   ON sales_fact.store_key   = store_dim.store_key
        JOIN date_dim    ON sales_fact.date_key    = date_dim.date_key
        JOIN product_dim ON sales_fact.product_key = product_dim.product_key
        JOIN payment_dim ON sales_fact.payment_key = payment_dim.payment_key
        {where}
        GROUP BY store_dim.city, store_dim.store_name
        ORDER BY store_dim.city, revenue DESC`},

	QueryPayMix: {sql: `
        SELECT payment_dim.method,
               SUM(sales_fact.total_paid)::numeric(14,2) AS revenue,
               COUNT(*)                                  AS transactions
        FROM sales_fact
        JOIN payment_dim ON sales_fact.payment_key = payment_dim.payment_key
        JOIN date_dim    ON sales_fact.date_key    = date_dim.date_key
        JOIN store_dim   ON sales_fact.store_key   = store_dim.store_key
        JOIN product_dim ON sales_fact.product_key = product_dim.product_key
        {where}
        GROUP BY payment_dim.method
        ORDER BY revenue DESC`},

	QueryDeliveryStatus: {sql: `
        SELECT sales_fact.delivery_status,
               COUNT(*)                                  AS deliveries,
               SUM(sales_fact.total_paid)::numeric(14,2) AS revenue
        FROM sales_fact
        JOIN date_dim    ON sales_fact.date_key    = date_dim.date_key
        JOIN store_dim   ON sales_fact.store_key   = store_dim.store_key
        JOIN product_dim ON sales_fact.product_key = product_dim.product_key
        JOIN payment_dim ON sales_fact.payment_key = payment_dim.payment_key
        {where}
        GROUP BY sales_fact.delivery_status
        ORDER BY deliveries DESC`},

	QueryTopClients: {needsLimit: true, sql: `
        SELECT customer_dim.customer_name, customer_dim.city,
               COUNT(*)                                  AS orders,
               SUM(sales_fact.total_paid)::numeric(14,2) AS revenue
        FROM sales_fact
        JOIN customer_dim ON sales_fact.customer_key = customer_dim.customer_key
        JOIN date_dim     ON sales_fact.date_key     = date_dim.date_key
        JOIN store_dim    ON sales_fact.store_key    = store_dim.store_key
        JOIN product_dim  ON sales_fact.product_key  = product_dim.product_key
        JOIN payment_dim  ON sales_fact.payment_key  = payment_dim.payment_key
        {where}
        GROUP BY customer_dim.customer_name, customer_dim.city
        ORDER BY revenue DESC
        LIMIT {limit}`},

	QueryTopCouriers: {needsLimit: true, sql: `
        SELECT courier_dim.courier_name, courier_dim.zone, courier_dim.plate,
               COUNT(*)                                  AS deliveries,
               SUM(sales_fact.total_paid)::numeric(14,2) AS revenue
        FROM sales_fact
        JOIN courier_dim ON sales_fact.courier_key = courier_dim.courier_key
        JOIN date_dim    ON sales_fact.date_key    = date_dim.date_key
        JOIN store_dim   ON sales_fact.store_key   = store_dim.store_key
        JOIN product_dim ON sales_fact.product_key = product_dim.product_key
        JOIN payment_dim ON sales_fact.payment_key = payment_dim.payment_key
        {where}
        GROUP BY courier_dim.courier_name, courier_dim.zone, courier_dim.plate
        ORDER BY deliveries DESC, revenue DESC
        LIMIT {limit}`},

	QueryClientsByCity: {sql: `
        SELECT customer_dim.city,
               COUNT(DISTINCT customer_dim.customer_key)  AS customers,
               SUM(sales_fact.total_paid)::numeric(14,2)  AS revenue
        FROM sales_fact
        JOIN customer_dim ON sales_fact.customer_key = customer_dim.customer_key
        JOIN date_dim     ON sales_fact.date_key     = date_dim.date_key
        JOIN store_dim    ON sales_fact.store_key    = store_dim.store_key
        JOIN product_dim  ON sales_fact.product_key  = product_dim.product_key
        JOIN payment_dim  ON sales_fact.payment_key  = payment_dim.payment_key
        {where}
        GROUP BY customer_dim.city
        ORDER BY revenue DESC`},
}

// deliveryTimeSQL fetches the raw free-text delivery duration for the
// derived minutes metric. Not a catalog panel, but it carries the same
// join set so the shared predicate applies unchanged.
const deliveryTimeSQL = `
        SELECT sales_fact.delivery_time
        FROM sales_fact
        JOIN date_dim    ON sales_fact.date_key    = date_dim.date_key
        JOIN store_dim   ON sales_fact.store_key   = store_dim.store_key
        JOIN product_dim ON sales_fact.product_key = product_dim.product_key
        JOIN payment_dim ON sales_fact.payment_key = payment_dim.payment_key
        {where}`

// CatalogNames returns the catalog entries in a stable order.
func CatalogNames() []QueryName {
	return []QueryName{
		QueryTrend,
		QueryTopProducts,
		QueryCityStore,
		QueryPayMix,
		QueryDeliveryStatus,
		QueryTopClients,
		QueryTopCouriers,
		QueryClientsByCity,
	}
}

// NeedsLimit reports whether the named query requires a row limit.
func NeedsLimit(name QueryName) (bool, error) {
	tpl, ok := catalog[name]
	if !ok {
		return false, &ConfigurationError{Query: name}
	}
	return tpl.needsLimit, nil
}

// buildSQL substitutes the predicate for the named template and returns
// the final statement with its bind arguments. The limit, when required,
// is validated here so a bad call never reaches the backend.
func buildSQL(name QueryName, f FilterSet, limit int) (string, []any, error) {
	tpl, ok := catalog[name]
	if !ok {
		return "", nil, &ConfigurationError{Query: name}
	}

	where, args := BuildPredicate(f)
	sql := strings.Replace(tpl.sql, "{where}", where, 1)

	if tpl.needsLimit {
		if limit < 1 {
			return "", nil, &InvalidArgumentError{
				Reason: fmt.Sprintf("query %s requires a limit of at least 1, got %d", name, limit),
			}
		}
		args = append(args, limit)
		sql = strings.Replace(sql, "{limit}", fmt.Sprintf("$%d", len(args)), 1)
	}

	return sql, args, nil
}
