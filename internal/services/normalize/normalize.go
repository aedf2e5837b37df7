package normalize

import (
	"strconv"
	"strings"
)

// Number converts locale-formatted currency/percentage text into a nullable
// float64. Providers emit pt-BR formatting: "R$" prefix, dots as grouping
// separators, comma as the decimal separator, optional "%" suffix.
//
// Nil means absent or unparseable, never zero. Empty strings, lone dashes
// and whitespace-only input are absent. The sign is preserved.
func Number(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return nil
	}

	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil
	}

	// "1.234.567,89" -> "1234567.89"
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Field looks name up in the set and normalizes it. Missing keys are nil.
func Field(fields map[string]string, name string) *float64 {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	return Number(raw)
}
