package pricing

import "testing"

func TestLineTotal(t *testing.T) {
	if got := LineTotal(3, 2500); got != 7500 {
		t.Fatalf("expected 7500, got %d", got)
	}
	if got := LineTotal(1, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestTaxRoundsHalfUp(t *testing.T) {
	cases := []struct {
		subtotal int
		want     int
	}{
		{0, 0},
		{100, 10},
		{105, 11},  // 10.5 rounds up
		{104, 10},  // 10.4 rounds down
		{999, 100}, // 99.9 rounds up
		{12345, 1235},
	}
	for _, tc := range cases {
		if got := Tax(tc.subtotal); got != tc.want {
			t.Fatalf("Tax(%d): expected %d, got %d", tc.subtotal, tc.want, got)
		}
	}
}

func TestComputeSumsLines(t *testing.T) {
	totals := Compute([]int{2500, 7500, 105})
	if totals.SubtotalCents != 10105 {
		t.Fatalf("expected subtotal 10105, got %d", totals.SubtotalCents)
	}
	if totals.TaxCents != 1011 {
		t.Fatalf("expected tax 1011, got %d", totals.TaxCents)
	}
	if totals.TotalCents != 11116 {
		t.Fatalf("expected total 11116, got %d", totals.TotalCents)
	}
}

func TestComputeEmpty(t *testing.T) {
	totals := Compute(nil)
	if totals.SubtotalCents != 0 || totals.TaxCents != 0 || totals.TotalCents != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}
