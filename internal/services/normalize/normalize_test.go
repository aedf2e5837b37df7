package normalize

import "testing"

func TestNumberCurrency(t *testing.T) {
	got := Number("R$ 1.234,56")
	if got == nil || *got != 1234.56 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestNumberPercent(t *testing.T) {
	got := Number("12,5%")
	if got == nil || *got != 12.5 {
		t.Fatalf("unexpected %v", got)
	}
	got = Number("12,5 %")
	if got == nil || *got != 12.5 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestNumberAbsent(t *testing.T) {
	for _, raw := range []string{"", "-", "   ", "R$ -", "R$", "%", "..", ",", "abc", "1,2,3"} {
		if got := Number(raw); got != nil {
			t.Fatalf("want nil for %q, got %v", raw, *got)
		}
	}
}

func TestNumberNegative(t *testing.T) {
	got := Number("-2,50")
	if got == nil || *got != -2.5 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestNumberMultipleGroupingSeparators(t *testing.T) {
	got := Number("1.234.567,89")
	if got == nil || *got != 1234567.89 {
		t.Fatalf("unexpected %v", got)
	}
}

func TestField(t *testing.T) {
	fields := map[string]string{"price": "10,00"}
	if got := Field(fields, "price"); got == nil || *got != 10 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Field(fields, "eps"); got != nil {
		t.Fatalf("want nil for missing key, got %v", *got)
	}
}
