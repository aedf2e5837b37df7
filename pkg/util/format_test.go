package util

import "testing"

func TestFormatCurrencyBR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "R$ 1.234,50"},
		{18, "R$ 18,00"},
		{1234567.891, "R$ 1.234.567,89"},
		{-2.5, "R$ -2,50"},
		{0.06, "R$ 0,06"},
	}
	for _, c := range cases {
		if got := FormatCurrencyBR(c.in); got != c.want {
			t.Fatalf("FormatCurrencyBR(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatNumberBRNoDecimals(t *testing.T) {
	if got := FormatNumberBR(1000000, 0); got != "1.000.000" {
		t.Fatalf("unexpected %q", got)
	}
}
