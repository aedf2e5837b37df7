package util

import (
	"strconv"
	"strings"
)

// FormatCurrencyBR renders v as pt-BR currency text, e.g. 1234.5 ->
// "R$ 1.234,50". Mirrors the formatting the providers themselves use so
// derived values display consistently with scraped ones.
func FormatCurrencyBR(v float64) string {
	return "R$ " + FormatNumberBR(v, 2)
}

// FormatNumberBR renders v with dot grouping and a comma decimal separator.
func FormatNumberBR(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}
