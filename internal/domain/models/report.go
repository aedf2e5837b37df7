package models

// Verdict classifies an indicator or valuation estimate for display.
type Verdict string

const (
	VerdictFavorable   Verdict = "favorable"
	VerdictUnfavorable Verdict = "unfavorable"
	VerdictNeutral     Verdict = "neutral"
)

// Canonical field names shared by provider clients, the classifier and the
// valuation engine. Provider clients must emit these keys regardless of how
// the upstream page or API labels the data.
const (
	FieldPrice              = "price"
	FieldEPS                = "eps"
	FieldBVPS               = "bvps"
	FieldSector             = "sector"
	FieldSegment            = "segment"
	FieldPriceBook          = "price_book"
	FieldPriceEarnings      = "price_earnings"
	FieldDividendYield      = "dividend_yield"
	FieldAvgDividendYield5y = "avg_dividend_yield_5y"
	FieldROE                = "roe"
	FieldROIC               = "roic"
	FieldNetMargin          = "net_margin"
	FieldEBITDAMargin       = "ebitda_margin"
	FieldNetDebtEBIT        = "net_debt_ebit"
	FieldNetDebtEBITDA      = "net_debt_ebitda"
	FieldCurrentLiquidity   = "current_liquidity"
	FieldPayout             = "payout"
	FieldEarningsGrowth     = "earnings_growth"
	FieldUpside             = "upside"
	FieldRiskScore          = "risk_score"
)

// RawFieldSet maps canonical field names to the raw text one provider
// returned for one ticker. Absent fields are missing keys; the set is not
// mutated after the provider task produces it.
type RawFieldSet map[string]string

// Get returns the raw text for name and whether the provider produced it.
func (s RawFieldSet) Get(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// FailureKind tags why a provider produced no fields.
type FailureKind string

const (
	FailureTimeout     FailureKind = "timeout"
	FailureUnavailable FailureKind = "unavailable"
)

// FailureReason describes one provider's failure. It never aborts the
// sibling providers of the same request.
type FailureReason struct {
	Provider string
	Kind     FailureKind
	Err      error
}

func (f *FailureReason) Error() string {
	if f.Err != nil {
		return string(f.Kind) + ": " + f.Err.Error()
	}
	return string(f.Kind)
}

// ProviderResult is the tagged outcome of one provider task: a field set or
// a failure reason, never both.
type ProviderResult struct {
	Provider string
	Fields   RawFieldSet
	Failure  *FailureReason
}

// OK reports whether the provider returned fields.
func (r ProviderResult) OK() bool { return r.Failure == nil }

// Fundamentals are the normalized primary-provider inputs the valuation
// engine works from. Nil means absent or unparseable, never zero.
type Fundamentals struct {
	Price              *float64
	EPS                *float64
	BVPS               *float64
	DividendYield      *float64
	AvgDividendYield5y *float64
	EarningsGrowth     *float64
	Sector             string
	Segment            string
}

// IndicatorValue pairs the raw display text with its verdict.
type IndicatorValue struct {
	Value string  `json:"value"`
	Class Verdict `json:"class"`
}

// ValuationEstimate is a suggested fair/ceiling price from one formula.
// Value is nil when a required input was missing or non-positive.
type ValuationEstimate struct {
	Formula string
	Value   *float64
	Class   Verdict
}

// AggregatedReport is the per-request response: one (raw text, verdict)
// pair per displayed indicator plus the valuation estimates and any
// advisory warnings. Ticker is always uppercase.
type AggregatedReport struct {
	Ticker     string                    `json:"ticker"`
	Indicators map[string]IndicatorValue `json:"indicators"`
	Valuations map[string]IndicatorValue `json:"valuations"`
	Warnings   []string                  `json:"warnings"`
}

// ReportRequest is the inbound aggregate request.
type ReportRequest struct {
	Ticker string `json:"ticker" param:"ticker" validate:"required,alphanum,min=4,max=10"`
}
