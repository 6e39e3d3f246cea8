package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quickdrop/quickdrop-dash/internal/warehouse"
)

// filterFlags holds the dashboard filter selection shared by the query
// and report commands.
type filterFlags struct {
	from       string
	to         string
	cities     []string
	categories []string
	methods    []string
	years      []int
	months     []int
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.from, "from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&ff.to, "to", "", "end date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&ff.cities, "city", nil, "filter by store city (repeatable)")
	cmd.Flags().StringSliceVar(&ff.categories, "category", nil, "filter by product category (repeatable)")
	cmd.Flags().StringSliceVar(&ff.methods, "method", nil, "filter by payment method (repeatable)")
	cmd.Flags().IntSliceVar(&ff.years, "year", nil, "filter by year (repeatable, legacy)")
	cmd.Flags().IntSliceVar(&ff.months, "month", nil, "filter by month 1-12 (repeatable, legacy)")
}

// filterSet validates the flags and builds the FilterSet.
func (ff *filterFlags) filterSet() (warehouse.FilterSet, error) {
	f := warehouse.FilterSet{
		Cities:         ff.cities,
		Categories:     ff.categories,
		PaymentMethods: ff.methods,
		Years:          ff.years,
		Months:         ff.months,
	}

	if ff.from != "" {
		t, err := time.Parse("2006-01-02", ff.from)
		if err != nil {
			return f, fmt.Errorf("invalid --from date %q: %w", ff.from, err)
		}
		f.DateFrom = &t
	}
	if ff.to != "" {
		t, err := time.Parse("2006-01-02", ff.to)
		if err != nil {
			return f, fmt.Errorf("invalid --to date %q: %w", ff.to, err)
		}
		f.DateTo = &t
	}
	for _, m := range ff.months {
		if m < 1 || m > 12 {
			return f, fmt.Errorf("invalid --month %d: must be 1-12", m)
		}
	}

	return f, nil
}
