package analyst

import (
	"context"
	"fmt"
	"strings"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
	xhttp "StockScope/pkg/http"
)

// Client pulls analyst recommendation fields from a JSON API provider.
// The upstream serves values as locale-formatted text, which is passed
// through untouched; normalization happens downstream like for any other
// provider.
type Client struct {
	name string
	// urlTemplate contains a single %s placeholder for the ticker.
	urlTemplate string
	http        *xhttp.Client
}

type recommendationResponse struct {
	Ticker    string `json:"ticker"`
	Upside    string `json:"upside"`
	RiskScore string `json:"risk_score"`
}

// New builds a secondary recommendation provider client.
func New(name, urlTemplate string, timeout time.Duration) *Client {
	return &Client{
		name:        name,
		urlTemplate: urlTemplate,
		http:        xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *Client) Name() string          { return c.name }
func (c *Client) Role() repository.Role { return repository.RoleSecondary }

// Fetch retrieves the recommendation payload for ticker. Empty payload
// values leave the field absent.
func (c *Client) Fetch(ctx context.Context, ticker string) (models.RawFieldSet, error) {
	var resp recommendationResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf(c.urlTemplate, strings.ToUpper(ticker)),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}

	fields := make(models.RawFieldSet, 2)
	if resp.Upside != "" {
		fields[models.FieldUpside] = resp.Upside
	}
	if resp.RiskScore != "" {
		fields[models.FieldRiskScore] = resp.RiskScore
	}
	return fields, nil
}
