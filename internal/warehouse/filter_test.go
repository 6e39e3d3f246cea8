package warehouse

import (
	"strings"
	"testing"
	"time"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildPredicateEmpty(t *testing.T) {
	where, args := BuildPredicate(FilterSet{})

	if where != "" {
		t.Errorf("Expected empty predicate, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("Expected no args, got %d", len(args))
	}
}

func TestBuildPredicateClauseCount(t *testing.T) {
	tests := []struct {
		name    string
		f       FilterSet
		clauses int
	}{
		{
			name:    "single city filter",
			f:       FilterSet{Cities: []string{"Bogotá"}},
			clauses: 1,
		},
		{
			name: "date range only",
			f: FilterSet{
				DateFrom: date("2024-01-01"),
				DateTo:   date("2024-03-31"),
			},
			clauses: 2,
		},
		{
			name: "all fields present",
			f: FilterSet{
				DateFrom:       date("2024-01-01"),
				DateTo:         date("2024-12-31"),
				Cities:         []string{"Medellín", "Cali"},
				Categories:     []string{"Comida"},
				PaymentMethods: []string{"tarjeta"},
				Years:          []int{2024},
				Months:         []int{1, 2},
			},
			clauses: 7,
		},
		{
			name: "empty sets generate nothing",
			f: FilterSet{
				Cities:     []string{},
				Categories: []string{},
				Years:      []int{},
			},
			clauses: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := BuildPredicate(tt.f)

			if tt.clauses == 0 {
				if where != "" {
					t.Errorf("Expected empty predicate, got %q", where)
				}
				return
			}

			if !strings.HasPrefix(where, "WHERE ") {
				t.Errorf("Predicate missing WHERE prefix: %q", where)
			}
			got := len(strings.Split(strings.TrimPrefix(where, "WHERE "), " AND "))
			if got != tt.clauses {
				t.Errorf("Expected %d clauses, got %d: %q", tt.clauses, got, where)
			}
			if len(args) != tt.clauses {
				t.Errorf("Expected %d args, got %d", tt.clauses, len(args))
			}
		})
	}
}

func TestBuildPredicateClauseOrder(t *testing.T) {
	f := FilterSet{
		DateFrom:       date("2024-01-01"),
		DateTo:         date("2024-12-31"),
		Cities:         []string{"Cali"},
		Categories:     []string{"Salud"},
		PaymentMethods: []string{"efectivo"},
		Years:          []int{2023, 2024},
		Months:         []int{6},
	}

	where, args := BuildPredicate(f)

	expected := []string{
		"date_dim.year = ANY($1)",
		"date_dim.month = ANY($2)",
		"store_dim.city = ANY($3)",
		"product_dim.category = ANY($4)",
		"payment_dim.method = ANY($5)",
		"date_dim.date >= $6",
		"date_dim.date <= $7",
	}
	want := "WHERE " + strings.Join(expected, " AND ")

	if where != want {
		t.Errorf("Predicate mismatch.\n got: %s\nwant: %s", where, want)
	}
	if len(args) != 7 {
		t.Fatalf("Expected 7 args, got %d", len(args))
	}

	// Bind order must follow clause order.
	if years, ok := args[0].([]int); !ok || len(years) != 2 {
		t.Errorf("Expected years slice first, got %T %v", args[0], args[0])
	}
	if cities, ok := args[2].([]string); !ok || cities[0] != "Cali" {
		t.Errorf("Expected cities slice third, got %T %v", args[2], args[2])
	}
	if from, ok := args[5].(time.Time); !ok || !from.Equal(*f.DateFrom) {
		t.Errorf("Expected date_from sixth, got %T %v", args[5], args[5])
	}
}

func TestBuildPredicateNoValueInterpolation(t *testing.T) {
	// A hostile filter value must never appear in the SQL text.
	f := FilterSet{Cities: []string{"x'; DROP TABLE sales_fact; --"}}

	where, args := BuildPredicate(f)

	if strings.Contains(where, "DROP TABLE") {
		t.Errorf("Filter value leaked into SQL text: %q", where)
	}
	if len(args) != 1 {
		t.Fatalf("Expected 1 arg, got %d", len(args))
	}
}

func TestFilterSetKeyOrderInsensitive(t *testing.T) {
	a := FilterSet{
		Cities: []string{"A", "B"},
		Years:  []int{2024, 2023},
	}
	b := FilterSet{
		Cities: []string{"B", "A"},
		Years:  []int{2023, 2024},
	}

	if a.Key() != b.Key() {
		t.Errorf("Keys differ for order-only variation:\n%s\n%s", a.Key(), b.Key())
	}
}

func TestFilterSetKeyDistinguishesFilters(t *testing.T) {
	base := FilterSet{Cities: []string{"Cali"}}
	variants := []FilterSet{
		{Cities: []string{"Cali", "Bogotá"}},
		{Categories: []string{"Cali"}},
		{Cities: []string{"Cali"}, DateFrom: date("2024-01-01")},
		{},
	}

	for i, v := range variants {
		if v.Key() == base.Key() {
			t.Errorf("Variant %d collides with base key %q", i, base.Key())
		}
	}
}

func TestFilterSetKeyDoesNotMutate(t *testing.T) {
	f := FilterSet{Cities: []string{"B", "A"}}
	_ = f.Key()

	if f.Cities[0] != "B" {
		t.Error("Key() sorted the caller's slice in place")
	}
}
