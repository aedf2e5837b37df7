package valuation

import (
	"math"
	"strings"

	"StockScope/internal/domain/models"
)

// Formula names used as keys in the report's valuations block.
const (
	FormulaGraham        = "graham"
	FormulaBazin         = "bazin"
	FormulaBazinAvg5y    = "bazin_avg_5y"
	FormulaRevisedGraham = "revised_graham"
)

// grahamMultiplier is the classic 22.5 constant (15 P/E x 1.5 P/B).
const grahamMultiplier = 22.5

// Params are the macro constants the formulas combine with fundamentals.
// All of them come from configuration, never from providers.
type Params struct {
	// BazinTargetYield is the minimum acceptable dividend yield used as the
	// Bazin ceiling divisor (e.g. 0.06).
	BazinTargetYield float64
	// BasePE is the no-growth P/E multiple of the revised Graham formula.
	BasePE float64
	// CurrentRate and HistoricalRate are the current and historical average
	// benchmark rates; their ratio scales the revised Graham value.
	CurrentRate    float64
	HistoricalRate float64
	// FallbackGrowthRate replaces trailing earnings growth when it is
	// missing or non-positive.
	FallbackGrowthRate float64
	// UnreliableSegments lists sectors/segments for which the formulas are
	// known to mislead; matching instruments get an advisory warning.
	UnreliableSegments []string
}

// Engine computes derived fair/ceiling price estimates. Every formula is
// independently null-guarded: a missing or non-positive required input
// yields a nil estimate for that formula, never a crash or an infinity.
type Engine struct {
	params     Params
	unreliable map[string]struct{}
}

func NewEngine(p Params) *Engine {
	unreliable := make(map[string]struct{}, len(p.UnreliableSegments))
	for _, s := range p.UnreliableSegments {
		unreliable[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return &Engine{params: p, unreliable: unreliable}
}

// Estimates computes every formula against f and classifies each result
// against the current price. Order is fixed.
func (e *Engine) Estimates(f models.Fundamentals) []models.ValuationEstimate {
	estimates := []models.ValuationEstimate{
		{Formula: FormulaGraham, Value: e.graham(f)},
		{Formula: FormulaBazin, Value: e.bazin(f.Price, f.DividendYield)},
		{Formula: FormulaBazinAvg5y, Value: e.bazin(f.Price, f.AvgDividendYield5y)},
		{Formula: FormulaRevisedGraham, Value: e.revisedGraham(f)},
	}
	for i := range estimates {
		estimates[i].Class = verdict(f.Price, estimates[i].Value)
	}
	return estimates
}

// Warnings returns advisory notes for f. A warning never suppresses an
// estimate.
func (e *Engine) Warnings(f models.Fundamentals) []string {
	var warnings []string
	for _, label := range []string{f.Sector, f.Segment} {
		key := strings.ToLower(strings.TrimSpace(label))
		if key == "" {
			continue
		}
		if _, ok := e.unreliable[key]; ok {
			warnings = append(warnings, "valuation formulas are unreliable for "+label)
		}
	}
	return warnings
}

// graham = sqrt(22.5 x EPS x BVPS), both operands strictly positive.
func (e *Engine) graham(f models.Fundamentals) *float64 {
	if f.EPS == nil || f.BVPS == nil || *f.EPS <= 0 || *f.BVPS <= 0 {
		return nil
	}
	v := math.Sqrt(grahamMultiplier * *f.EPS * *f.BVPS)
	return &v
}

// bazin = price x (yield/100) / targetYield. Shared by the current-yield
// and trailing-5y-average variants.
func (e *Engine) bazin(price, yield *float64) *float64 {
	if price == nil || yield == nil || *price <= 0 || *yield <= 0 {
		return nil
	}
	if e.params.BazinTargetYield <= 0 {
		return nil
	}
	v := *price * (*yield / 100) / e.params.BazinTargetYield
	return &v
}

// revisedGraham = EPS x (basePE + 2 x growth) x (historicalRate/currentRate).
// Growth falls back to the configured default when trailing earnings growth
// is missing or non-positive.
func (e *Engine) revisedGraham(f models.Fundamentals) *float64 {
	if f.EPS == nil || *f.EPS <= 0 {
		return nil
	}
	if e.params.BasePE <= 0 || e.params.HistoricalRate <= 0 || e.params.CurrentRate <= 0 {
		return nil
	}
	growth := e.params.FallbackGrowthRate
	if f.EarningsGrowth != nil && *f.EarningsGrowth > 0 {
		growth = *f.EarningsGrowth
	}
	v := *f.EPS * (e.params.BasePE + 2*growth) * (e.params.HistoricalRate / e.params.CurrentRate)
	return &v
}

// verdict compares the current price to an estimate: favorable when price is
// strictly below a positive estimate, neutral when the estimate is nil or
// non-positive (or price is unknown), unfavorable otherwise.
func verdict(price, estimate *float64) models.Verdict {
	if estimate == nil || *estimate <= 0 || price == nil {
		return models.VerdictNeutral
	}
	if *price < *estimate {
		return models.VerdictFavorable
	}
	return models.VerdictUnfavorable
}
