package repository

import (
	"context"

	"StockScope/internal/domain/models"
)

// Role distinguishes the mandatory fundamentals source from optional ones.
// Exactly one configured provider is primary; its failure fails the request.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
)

// ProviderClient hands the engine raw field text for one ticker. The engine
// does not depend on how fields are extracted, only that keys match the
// canonical field names in models.
type ProviderClient interface {
	Name() string
	Role() Role
	Fetch(ctx context.Context, ticker string) (models.RawFieldSet, error)
}

// Metrics records operational counters and timings.
type Metrics interface {
	RecordFetch(provider string, seconds float64)
	RecordProviderError(provider, kind string)
	RecordReport(outcome string)
	RecordParseFailure(field string)
}

// ReportPublisher emits successful reports to downstream consumers.
type ReportPublisher interface {
	Publish(ctx context.Context, report *models.AggregatedReport) error
	Close() error
}
