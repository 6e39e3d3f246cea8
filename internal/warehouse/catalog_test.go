package warehouse

import (
	"errors"
	"strings"
	"testing"
)

// Joins the predicate can reference; every template must carry them.
var predicateJoins = []string{
	"JOIN date_dim",
	"JOIN store_dim",
	"JOIN product_dim",
	"JOIN payment_dim",
}

func TestCatalogTemplatesCarryPredicateJoins(t *testing.T) {
	for _, name := range CatalogNames() {
		t.Run(string(name), func(t *testing.T) {
			tpl, ok := catalog[name]
			if !ok {
				t.Fatalf("Catalog missing entry %s", name)
			}
			if !strings.Contains(tpl.sql, "{where}") {
				t.Error("Template has no {where} token")
			}
			for _, join := range predicateJoins {
				if !strings.Contains(tpl.sql, join) {
					t.Errorf("Template missing %q", join)
				}
			}
			if tpl.needsLimit != strings.Contains(tpl.sql, "{limit}") {
				t.Error("needsLimit flag disagrees with {limit} token")
			}
		})
	}
}

func TestCatalogLimitFlags(t *testing.T) {
	limited := map[QueryName]bool{
		QueryTopProducts: true,
		QueryTopClients:  true,
		QueryTopCouriers: true,
	}

	for _, name := range CatalogNames() {
		needs, err := NeedsLimit(name)
		if err != nil {
			t.Fatalf("NeedsLimit(%s): %v", name, err)
		}
		if needs != limited[name] {
			t.Errorf("NeedsLimit(%s) = %v, want %v", name, needs, limited[name])
		}
	}

	if _, err := NeedsLimit(QueryName("bogus")); err == nil {
		t.Error("Expected error for unknown query name")
	}
}

func TestBuildSQLUnknownQuery(t *testing.T) {
	_, _, err := buildSQL(QueryName("nope"), FilterSet{}, 0)

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Query != "nope" {
		t.Errorf("Expected query name in error, got %q", cfgErr.Query)
	}
}

func TestBuildSQLMissingLimit(t *testing.T) {
	for _, name := range []QueryName{QueryTopProducts, QueryTopClients, QueryTopCouriers} {
		for _, limit := range []int{0, -3} {
			_, _, err := buildSQL(name, FilterSet{}, limit)

			var argErr *InvalidArgumentError
			if !errors.As(err, &argErr) {
				t.Errorf("buildSQL(%s, limit=%d): expected InvalidArgumentError, got %v",
					name, limit, err)
			}
		}
	}
}

func TestBuildSQLSubstitution(t *testing.T) {
	f := FilterSet{
		Cities:     []string{"Cali"},
		Categories: []string{"Comida"},
	}

	sql, args, err := buildSQL(QueryTopProducts, f, 10)
	if err != nil {
		t.Fatalf("buildSQL failed: %v", err)
	}

	if strings.Contains(sql, "{where}") || strings.Contains(sql, "{limit}") {
		t.Errorf("Unsubstituted token remains:\n%s", sql)
	}
	if !strings.Contains(sql, "WHERE store_dim.city = ANY($1) AND product_dim.category = ANY($2)") {
		t.Errorf("Predicate not substituted:\n%s", sql)
	}
	// Limit binds after the two predicate args.
	if !strings.Contains(sql, "LIMIT $3") {
		t.Errorf("Limit placeholder not rewritten:\n%s", sql)
	}
	if len(args) != 3 {
		t.Fatalf("Expected 3 args, got %d", len(args))
	}
	if args[2] != 10 {
		t.Errorf("Expected limit 10 as last arg, got %v", args[2])
	}
}

func TestBuildSQLNoFilters(t *testing.T) {
	sql, args, err := buildSQL(QueryTrend, FilterSet{}, 0)
	if err != nil {
		t.Fatalf("buildSQL failed: %v", err)
	}

	if strings.Contains(sql, "WHERE") {
		t.Errorf("Empty filter produced a WHERE clause:\n%s", sql)
	}
	if strings.Contains(sql, "{where}") {
		t.Errorf("Token not removed:\n%s", sql)
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %d", len(args))
	}
	if !strings.Contains(sql, "GROUP BY date_dim.year, date_dim.month") {
		t.Errorf("Trend grouping missing:\n%s", sql)
	}
	if !strings.Contains(sql, "ORDER BY date_dim.year, date_dim.month") {
		t.Errorf("Trend ordering missing:\n%s", sql)
	}
}

func TestCatalogOrdering(t *testing.T) {
	tests := []struct {
		name    QueryName
		orderBy string
	}{
		{QueryTopProducts, "ORDER BY revenue DESC"},
		{QueryCityStore, "ORDER BY store_dim.city, revenue DESC"},
		{QueryPayMix, "ORDER BY revenue DESC"},
		{QueryDeliveryStatus, "ORDER BY deliveries DESC"},
		{QueryTopClients, "ORDER BY revenue DESC"},
		{QueryTopCouriers, "ORDER BY deliveries DESC, revenue DESC"},
		{QueryClientsByCity, "ORDER BY revenue DESC"},
	}

	for _, tt := range tests {
		if !strings.Contains(catalog[tt.name].sql, tt.orderBy) {
			t.Errorf("%s: expected ordering %q", tt.name, tt.orderBy)
		}
	}
}

func TestCatalogRoundsRevenueInSQL(t *testing.T) {
	// Rounding must happen in the database, not the application.
	for _, name := range CatalogNames() {
		if !strings.Contains(catalog[name].sql, "::numeric(14,2)") {
			t.Errorf("%s: revenue sum not cast to numeric(14,2)", name)
		}
	}
}
