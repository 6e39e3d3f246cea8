package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/quickdrop/quickdrop-dash/internal/warehouse"
)

// table is a rendered panel: a header plus stringified rows.
type table struct {
	header []string
	rows   [][]string
}

func (t table) write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, col := range t.header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func (t table) writeCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.header); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func i64(v int64) string            { return strconv.FormatInt(v, 10) }
func money(v decimal.Decimal) string { return v.StringFixed(2) }

func trendTable(rows []warehouse.TrendRow) table {
	t := table{header: []string{"year", "month", "revenue", "quantity", "transactions"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{
			strconv.Itoa(r.Year), strconv.Itoa(r.Month),
			money(r.Revenue), i64(r.Quantity), i64(r.Transactions),
		})
	}
	return t
}

func topProductsTable(rows []warehouse.TopProductRow) table {
	t := table{header: []string{"category", "product", "units", "revenue"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{r.Category, r.ProductName, i64(r.Units), money(r.Revenue)})
	}
	return t
}

func cityStoreTable(rows []warehouse.CityStoreRow) table {
	t := table{header: []string{"city", "store", "revenue", "units"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{r.City, r.StoreName, money(r.Revenue), i64(r.Units)})
	}
	return t
}

func payMixTable(rows []warehouse.PayMixRow) table {
	t := table{header: []string{"method", "revenue", "transactions"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{r.Method, money(r.Revenue), i64(r.Transactions)})
	}
	return t
}

func deliveryStatusTable(rows []warehouse.DeliveryStatusRow) table {
	t := table{header: []string{"status", "deliveries", "revenue"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{r.Status, i64(r.Deliveries), money(r.Revenue)})
	}
	return t
}

func topClientsTable(rows []warehouse.TopClientRow) table {
	t := table{header: []string{"customer", "city", "orders", "revenue"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{r.CustomerName, r.City, i64(r.Orders), money(r.Revenue)})
	}
	return t
}

func topCouriersTable(rows []warehouse.TopCourierRow) table {
	t := table{header: []string{"courier", "zone", "plate", "deliveries", "revenue"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{r.CourierName, r.Zone, r.Plate, i64(r.Deliveries), money(r.Revenue)})
	}
	return t
}

func clientsByCityTable(rows []warehouse.ClientsByCityRow) table {
	t := table{header: []string{"city", "customers", "revenue"}}
	for _, r := range rows {
		t.rows = append(t.rows, []string{r.City, i64(r.Customers), money(r.Revenue)})
	}
	return t
}

func deliveryStatsTable(stats warehouse.DeliveryStats) table {
	return table{
		header: []string{"deliveries", "mean_minutes", "median_minutes"},
		rows: [][]string{{
			strconv.Itoa(stats.Count),
			strconv.FormatFloat(stats.Mean, 'f', 1, 64),
			strconv.FormatFloat(stats.Median, 'f', 1, 64),
		}},
	}
}
