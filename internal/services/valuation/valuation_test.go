package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScope/internal/domain/models"
)

func f(v float64) *float64 { return &v }

func testParams() Params {
	return Params{
		BazinTargetYield:   0.06,
		BasePE:             8.5,
		CurrentRate:        10.5,
		HistoricalRate:     7.5,
		FallbackGrowthRate: 5.0,
		UnreliableSegments: []string{"Bancos", "Seguradoras"},
	}
}

func byFormula(es []models.ValuationEstimate, formula string) models.ValuationEstimate {
	for _, e := range es {
		if e.Formula == formula {
			return e
		}
	}
	return models.ValuationEstimate{}
}

func TestGraham(t *testing.T) {
	e := NewEngine(testParams())

	es := e.Estimates(models.Fundamentals{Price: f(15), EPS: f(2), BVPS: f(8)})
	g := byFormula(es, FormulaGraham)
	require.NotNil(t, g.Value)
	assert.InDelta(t, 18.0, *g.Value, 1e-9)
	assert.Equal(t, models.VerdictFavorable, g.Class)

	// price above the estimate
	es = e.Estimates(models.Fundamentals{Price: f(20), EPS: f(2), BVPS: f(8)})
	assert.Equal(t, models.VerdictUnfavorable, byFormula(es, FormulaGraham).Class)
}

func TestGrahamNullGuards(t *testing.T) {
	e := NewEngine(testParams())
	cases := []models.Fundamentals{
		{Price: f(10), EPS: nil, BVPS: f(8)},
		{Price: f(10), EPS: f(2), BVPS: nil},
		{Price: f(10), EPS: f(-2), BVPS: f(8)},
		{Price: f(10), EPS: f(2), BVPS: f(0)},
	}
	for _, c := range cases {
		g := byFormula(e.Estimates(c), FormulaGraham)
		assert.Nil(t, g.Value)
		assert.Equal(t, models.VerdictNeutral, g.Class)
	}
}

func TestBazin(t *testing.T) {
	e := NewEngine(testParams())

	es := e.Estimates(models.Fundamentals{Price: f(30), DividendYield: f(9)})
	b := byFormula(es, FormulaBazin)
	require.NotNil(t, b.Value)
	assert.InDelta(t, 45.0, *b.Value, 1e-9) // 30 * 0.09 / 0.06
	assert.Equal(t, models.VerdictFavorable, b.Class)

	// monotonic in price and yield
	higherPrice := byFormula(e.Estimates(models.Fundamentals{Price: f(40), DividendYield: f(9)}), FormulaBazin)
	higherYield := byFormula(e.Estimates(models.Fundamentals{Price: f(30), DividendYield: f(10)}), FormulaBazin)
	assert.Greater(t, *higherPrice.Value, *b.Value)
	assert.Greater(t, *higherYield.Value, *b.Value)

	// non-positive yield
	zero := byFormula(e.Estimates(models.Fundamentals{Price: f(30), DividendYield: f(0)}), FormulaBazin)
	assert.Nil(t, zero.Value)
	assert.Equal(t, models.VerdictNeutral, zero.Class)
}

func TestBazinAvg5y(t *testing.T) {
	e := NewEngine(testParams())
	es := e.Estimates(models.Fundamentals{Price: f(30), AvgDividendYield5y: f(6)})
	b := byFormula(es, FormulaBazinAvg5y)
	require.NotNil(t, b.Value)
	assert.InDelta(t, 30.0, *b.Value, 1e-9)
}

func TestRevisedGraham(t *testing.T) {
	e := NewEngine(testParams())

	// explicit growth
	es := e.Estimates(models.Fundamentals{Price: f(10), EPS: f(2), EarningsGrowth: f(8)})
	r := byFormula(es, FormulaRevisedGraham)
	require.NotNil(t, r.Value)
	// 2 * (8.5 + 16) * (7.5/10.5)
	assert.InDelta(t, 2*24.5*(7.5/10.5), *r.Value, 1e-9)

	// growth fallback when trailing growth is missing or non-positive
	for _, growth := range []*float64{nil, f(-3)} {
		es = e.Estimates(models.Fundamentals{Price: f(10), EPS: f(2), EarningsGrowth: growth})
		r = byFormula(es, FormulaRevisedGraham)
		require.NotNil(t, r.Value)
		assert.InDelta(t, 2*(8.5+2*5.0)*(7.5/10.5), *r.Value, 1e-9)
	}

	// missing EPS
	es = e.Estimates(models.Fundamentals{Price: f(10)})
	assert.Nil(t, byFormula(es, FormulaRevisedGraham).Value)
}

func TestWarnings(t *testing.T) {
	e := NewEngine(testParams())

	warnings := e.Warnings(models.Fundamentals{Sector: "bancos"})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "bancos")

	assert.Empty(t, e.Warnings(models.Fundamentals{Sector: "Energia"}))
	assert.Empty(t, e.Warnings(models.Fundamentals{}))
}

func TestEstimatesOrderIsStable(t *testing.T) {
	e := NewEngine(testParams())
	es := e.Estimates(models.Fundamentals{})
	require.Len(t, es, 4)
	assert.Equal(t, FormulaGraham, es[0].Formula)
	assert.Equal(t, FormulaBazin, es[1].Formula)
	assert.Equal(t, FormulaBazinAvg5y, es[2].Formula)
	assert.Equal(t, FormulaRevisedGraham, es[3].Formula)
}
