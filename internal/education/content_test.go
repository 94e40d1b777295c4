package education

import "testing"

func TestIndicatorsAlignWithMonths(t *testing.T) {
	for _, series := range Indicators() {
		if len(series.Values) != len(Months) {
			t.Errorf("%s has %d values for %d months", series.Name, len(series.Values), len(Months))
		}
	}
}

func TestPortfolioAllocationSumsToHundred(t *testing.T) {
	var total float64
	for _, a := range PortfolioAllocation() {
		total += a.Percent
	}
	if total != 100 {
		t.Errorf("allocation sums to %.1f%%, want 100%%", total)
	}
}

func TestClampFedRate(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.125, 0},
		{0, 0},
		{5.375, 5.375},
		{10, 10},
		{10.125, 10},
	}
	for _, tt := range tests {
		if got := ClampFedRate(tt.in); got != tt.want {
			t.Errorf("ClampFedRate(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
