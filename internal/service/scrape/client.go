package scrape

import (
	"context"
	"fmt"
	"strings"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
)

// Client extracts raw field text from a provider's HTML page. Pages differ
// per provider only in the URL template and the CSS selector per canonical
// field name; everything downstream works off the RawFieldSet contract.
type Client struct {
	name string
	role repository.Role
	// urlTemplate contains a single %s placeholder for the ticker.
	urlTemplate string
	selectors   map[string]string
	pool        *SessionPool
}

// NewClient builds a scraping provider client. Selectors map canonical
// field names to CSS selectors on the ticker page.
func NewClient(name string, role repository.Role, urlTemplate string, selectors map[string]string, pool *SessionPool) *Client {
	return &Client{
		name:        name,
		role:        role,
		urlTemplate: urlTemplate,
		selectors:   selectors,
		pool:        pool,
	}
}

func (c *Client) Name() string          { return c.name }
func (c *Client) Role() repository.Role { return c.role }

// Fetch leases a session, loads the ticker page and extracts every selector
// that matches. Missing selectors simply leave the field absent.
func (c *Client) Fetch(ctx context.Context, ticker string) (models.RawFieldSet, error) {
	sess, err := c.pool.Lease(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: lease session: %w", c.name, err)
	}
	defer c.pool.Release(sess)

	url := fmt.Sprintf(c.urlTemplate, strings.ToLower(ticker))
	doc, err := sess.FetchDocument(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}

	fields := make(models.RawFieldSet, len(c.selectors))
	for field, selector := range c.selectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			fields[field] = text
		}
	}
	return fields, nil
}

// DefaultFundamentalsSelectors is the shipped selector set for the primary
// fundamentals page. Overridable per provider in config when the upstream
// markup changes.
func DefaultFundamentalsSelectors() map[string]string {
	return map[string]string{
		models.FieldPrice:              "div[data-item=cotacao] strong.value",
		models.FieldEPS:                "div[data-item=lpa] strong.value",
		models.FieldBVPS:               "div[data-item=vpa] strong.value",
		models.FieldSector:             "div.company-header span.sector",
		models.FieldSegment:            "div.company-header span.segment",
		models.FieldPriceBook:          "div[data-item=p_vp] strong.value",
		models.FieldPriceEarnings:      "div[data-item=p_l] strong.value",
		models.FieldDividendYield:      "div[data-item=dy] strong.value",
		models.FieldAvgDividendYield5y: "div[data-item=dy_avg_5y] strong.value",
		models.FieldROE:                "div[data-item=roe] strong.value",
		models.FieldROIC:               "div[data-item=roic] strong.value",
		models.FieldNetMargin:          "div[data-item=margem_liquida] strong.value",
		models.FieldEBITDAMargin:       "div[data-item=margem_ebitda] strong.value",
		models.FieldNetDebtEBIT:        "div[data-item=divida_liquida_ebit] strong.value",
		models.FieldNetDebtEBITDA:      "div[data-item=divida_liquida_ebitda] strong.value",
		models.FieldCurrentLiquidity:   "div[data-item=liquidez_corrente] strong.value",
		models.FieldPayout:             "div[data-item=payout] strong.value",
		models.FieldEarningsGrowth:     "div[data-item=cagr_lucros] strong.value",
	}
}

// DefaultRecommendationSelectors covers the secondary analyst pages, which
// expose only upside potential and a risk score.
func DefaultRecommendationSelectors() map[string]string {
	return map[string]string{
		models.FieldUpside:    "div.recommendation span.upside",
		models.FieldRiskScore: "div.recommendation span.risk",
	}
}
