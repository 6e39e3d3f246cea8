package warehouse

import "sort"

// DeliveryStats holds descriptive statistics over parsed delivery
// minutes. The zero value is the valid "no data" state.
type DeliveryStats struct {
	Count  int
	Mean   float64
	Median float64
}

// Summarize computes count, mean and median of the given minute values.
// An empty input is not an error; it yields the zero stats.
func Summarize(minutes []int) DeliveryStats {
	if len(minutes) == 0 {
		return DeliveryStats{}
	}

	sorted := append([]int(nil), minutes...)
	sort.Ints(sorted)

	sum := 0
	for _, m := range sorted {
		sum += m
	}

	n := len(sorted)
	median := float64(sorted[n/2])
	if n%2 == 0 {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	return DeliveryStats{
		Count:  n,
		Mean:   float64(sum) / float64(n),
		Median: median,
	}
}
