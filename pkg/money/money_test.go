package money

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{12345, "$123.45"},
		{100000, "$1000.00"},
		{-250, "-$2.50"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Fatalf("FormatCents(%d): expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestParseDollars(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"123.45", 12345},
		{"$123.45", 12345},
		{"$1,234.50", 123450},
		{"0", 0},
		{"19", 1900},
	}
	for _, tc := range cases {
		got, err := ParseDollars(tc.in)
		if err != nil {
			t.Fatalf("ParseDollars(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDollars(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestParseDollarsRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "1.005", "$"} {
		if _, err := ParseDollars(in); err == nil {
			t.Fatalf("ParseDollars(%q): expected error", in)
		}
	}
}
