package usecase

import (
	"StockScope/internal/domain/models"
	"StockScope/internal/services/classify"
	"StockScope/internal/services/normalize"
	"StockScope/pkg/util"
)

// absentValue is the display sentinel for fields no provider produced.
const absentValue = "-"

// displayedIndicators is the fixed set and order of indicators the report
// exposes. Fields without a classification rule (price, eps, bvps) always
// render neutral.
var displayedIndicators = []string{
	models.FieldPrice,
	models.FieldEPS,
	models.FieldBVPS,
	models.FieldPriceBook,
	models.FieldPriceEarnings,
	models.FieldDividendYield,
	models.FieldAvgDividendYield5y,
	models.FieldROE,
	models.FieldROIC,
	models.FieldNetMargin,
	models.FieldEBITDAMargin,
	models.FieldNetDebtEBIT,
	models.FieldNetDebtEBITDA,
	models.FieldCurrentLiquidity,
	models.FieldPayout,
	models.FieldEarningsGrowth,
	models.FieldUpside,
	models.FieldRiskScore,
}

// assembleReport is pure composition: by the time it runs all retrieval is
// done and verdicts are a function of the merged raw text. Results are
// merged in configured provider order, so concurrent completion order
// never affects the output.
func assembleReport(
	ticker string,
	providerOrder []string,
	results map[string]models.ProviderResult,
	estimates []models.ValuationEstimate,
	warnings []string,
) *models.AggregatedReport {
	merged := mergeFields(providerOrder, results)

	indicators := make(map[string]models.IndicatorValue, len(displayedIndicators))
	for _, name := range displayedIndicators {
		raw, ok := merged.Get(name)
		if !ok {
			indicators[name] = models.IndicatorValue{Value: absentValue, Class: models.VerdictNeutral}
			continue
		}
		indicators[name] = models.IndicatorValue{
			Value: raw,
			Class: classify.Indicator(name, normalize.Number(raw)),
		}
	}

	valuations := make(map[string]models.IndicatorValue, len(estimates))
	for _, e := range estimates {
		value := absentValue
		if e.Value != nil {
			value = util.FormatCurrencyBR(*e.Value)
		}
		valuations[e.Formula] = models.IndicatorValue{Value: value, Class: e.Class}
	}

	if warnings == nil {
		warnings = []string{}
	}

	return &models.AggregatedReport{
		Ticker:     ticker,
		Indicators: indicators,
		Valuations: valuations,
		Warnings:   warnings,
	}
}

// mergeFields flattens provider results into one field set. Earlier
// providers in the configured order win on conflicts; failed providers
// contribute nothing.
func mergeFields(providerOrder []string, results map[string]models.ProviderResult) models.RawFieldSet {
	merged := make(models.RawFieldSet)
	for _, name := range providerOrder {
		r, ok := results[name]
		if !ok || !r.OK() {
			continue
		}
		for field, raw := range r.Fields {
			if _, exists := merged[field]; !exists {
				merged[field] = raw
			}
		}
	}
	return merged
}
