package classify

import "StockScope/internal/domain/models"

// rule holds the favorable/unfavorable predicates for one indicator.
// Neutral is the default when neither predicate holds.
type rule struct {
	favorable   func(v float64) bool
	unfavorable func(v float64) bool
}

var rules = map[string]rule{
	models.FieldPriceBook: {
		favorable:   func(v float64) bool { return v < 1.0 },
		unfavorable: func(v float64) bool { return v > 1.5 },
	},
	models.FieldPriceEarnings: {
		favorable:   func(v float64) bool { return v > 0 && v < 10 },
		unfavorable: func(v float64) bool { return v > 20 },
	},
	models.FieldDividendYield: {
		favorable:   func(v float64) bool { return v >= 6 },
		unfavorable: func(v float64) bool { return v < 4 },
	},
	models.FieldROE: {
		favorable:   func(v float64) bool { return v >= 15 },
		unfavorable: func(v float64) bool { return v < 8 },
	},
	models.FieldROIC: {
		favorable:   func(v float64) bool { return v >= 10 },
		unfavorable: func(v float64) bool { return v < 5 },
	},
	models.FieldNetMargin: {
		favorable:   func(v float64) bool { return v >= 15 },
		unfavorable: func(v float64) bool { return v < 5 },
	},
	models.FieldEBITDAMargin: {
		favorable:   func(v float64) bool { return v >= 20 },
		unfavorable: func(v float64) bool { return v < 10 },
	},
	models.FieldNetDebtEBIT: {
		favorable:   func(v float64) bool { return v <= 1.0 },
		unfavorable: func(v float64) bool { return v > 3.0 },
	},
	models.FieldNetDebtEBITDA: {
		favorable:   func(v float64) bool { return v <= 2.0 },
		unfavorable: func(v float64) bool { return v > 4.0 },
	},
	models.FieldCurrentLiquidity: {
		favorable:   func(v float64) bool { return v >= 1.5 },
		unfavorable: func(v float64) bool { return v < 1.0 },
	},
	models.FieldPayout: {
		favorable:   func(v float64) bool { return v >= 25 && v <= 75 },
		unfavorable: func(v float64) bool { return v > 100 },
	},
	models.FieldUpside: {
		favorable:   func(v float64) bool { return v > 15 },
		unfavorable: func(v float64) bool { return v < 0 },
	},
	models.FieldRiskScore: {
		favorable:   func(v float64) bool { return v <= 25 },
		unfavorable: func(v float64) bool { return v > 50 },
	},
	models.FieldEarningsGrowth: {
		favorable:   func(v float64) bool { return v >= 10 },
		unfavorable: func(v float64) bool { return v < 5 },
	},
}

// Indicator maps a named indicator plus its normalized value to a verdict.
// Unknown indicator names and nil values are always neutral.
func Indicator(name string, value *float64) models.Verdict {
	if value == nil {
		return models.VerdictNeutral
	}
	r, ok := rules[name]
	if !ok {
		return models.VerdictNeutral
	}
	switch {
	case r.favorable(*value):
		return models.VerdictFavorable
	case r.unfavorable(*value):
		return models.VerdictUnfavorable
	default:
		return models.VerdictNeutral
	}
}

// Known reports whether a classification rule exists for name.
func Known(name string) bool {
	_, ok := rules[name]
	return ok
}
