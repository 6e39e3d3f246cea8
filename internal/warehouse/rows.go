package warehouse

import (
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Result row types, one per catalog entry. Rows are materialized in full
// before they are returned and are never mutated afterwards, which is
// what makes them safe to share through the result cache. Money columns
// arrive already rounded to two digits by the numeric(14,2) cast in SQL.

// TrendRow is one (year, month) bucket of the revenue trend panel.
type TrendRow struct {
	Year         int
	Month        int
	Revenue      decimal.Decimal
	Quantity     int64
	Transactions int64
}

// TopProductRow is one product of the top-products panel.
type TopProductRow struct {
	Category    string
	ProductName string
	Units       int64
	Revenue     decimal.Decimal
}

// CityStoreRow is one store of the city/store breakdown panel.
type CityStoreRow struct {
	City      string
	StoreName string
	Revenue   decimal.Decimal
	Units     int64
}

// PayMixRow is one payment method of the payment mix panel.
type PayMixRow struct {
	Method       string
	Revenue      decimal.Decimal
	Transactions int64
}

// DeliveryStatusRow is one delivery status bucket.
type DeliveryStatusRow struct {
	Status     string
	Deliveries int64
	Revenue    decimal.Decimal
}

// TopClientRow is one customer of the top-clients panel.
type TopClientRow struct {
	CustomerName string
	City         string
	Orders       int64
	Revenue      decimal.Decimal
}

// TopCourierRow is one courier of the top-couriers panel.
type TopCourierRow struct {
	CourierName string
	Zone        string
	Plate       string
	Deliveries  int64
	Revenue     decimal.Decimal
}

// ClientsByCityRow is one city of the clients-by-city panel.
type ClientsByCityRow struct {
	City      string
	Customers int64
	Revenue   decimal.Decimal
}

func scanTrendRow(rows pgx.Rows) (TrendRow, error) {
	var r TrendRow
	err := rows.Scan(&r.Year, &r.Month, &r.Revenue, &r.Quantity, &r.Transactions)
	return r, err
}

func scanTopProductRow(rows pgx.Rows) (TopProductRow, error) {
	var r TopProductRow
	err := rows.Scan(&r.Category, &r.ProductName, &r.Units, &r.Revenue)
	return r, err
}

func scanCityStoreRow(rows pgx.Rows) (CityStoreRow, error) {
	var r CityStoreRow
	err := rows.Scan(&r.City, &r.StoreName, &r.Revenue, &r.Units)
	return r, err
}

func scanPayMixRow(rows pgx.Rows) (PayMixRow, error) {
	var r PayMixRow
	err := rows.Scan(&r.Method, &r.Revenue, &r.Transactions)
	return r, err
}

func scanDeliveryStatusRow(rows pgx.Rows) (DeliveryStatusRow, error) {
	var r DeliveryStatusRow
	err := rows.Scan(&r.Status, &r.Deliveries, &r.Revenue)
	return r, err
}

func scanTopClientRow(rows pgx.Rows) (TopClientRow, error) {
	var r TopClientRow
	err := rows.Scan(&r.CustomerName, &r.City, &r.Orders, &r.Revenue)
	return r, err
}

func scanTopCourierRow(rows pgx.Rows) (TopCourierRow, error) {
	var r TopCourierRow
	err := rows.Scan(&r.CourierName, &r.Zone, &r.Plate, &r.Deliveries, &r.Revenue)
	return r, err
}

func scanClientsByCityRow(rows pgx.Rows) (ClientsByCityRow, error) {
	var r ClientsByCityRow
	err := rows.Scan(&r.City, &r.Customers, &r.Revenue)
	return r, err
}

// collectRows drains a result set into a slice, closing it on the way
// out. No partial reads: panel results are bounded by LIMIT clauses or
// by aggregation, so full materialization is safe.
func collectRows[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
