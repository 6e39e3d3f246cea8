package warehouse

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		minutes []int
		want    DeliveryStats
	}{
		{
			name:    "empty input is valid no-data",
			minutes: nil,
			want:    DeliveryStats{},
		},
		{
			name:    "single value",
			minutes: []int{30},
			want:    DeliveryStats{Count: 1, Mean: 30, Median: 30},
		},
		{
			name:    "odd count",
			minutes: []int{40, 10, 25},
			want:    DeliveryStats{Count: 3, Mean: 25, Median: 25},
		},
		{
			name:    "even count averages middle pair",
			minutes: []int{10, 20, 30, 40},
			want:    DeliveryStats{Count: 4, Mean: 25, Median: 25},
		},
		{
			name:    "unsorted input",
			minutes: []int{50, 5, 20, 35},
			want:    DeliveryStats{Count: 4, Mean: 27.5, Median: 27.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.minutes)
			if got != tt.want {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	minutes := []int{3, 1, 2}
	Summarize(minutes)

	if minutes[0] != 3 || minutes[1] != 1 || minutes[2] != 2 {
		t.Errorf("Summarize sorted the caller's slice in place: %v", minutes)
	}
}
