package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"StockScope/internal/domain/models"
	"StockScope/internal/domain/repository"
	"StockScope/internal/service/ratelimit"
	"StockScope/internal/services/normalize"
	"StockScope/internal/services/valuation"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"
)

const defaultProviderTimeout = 10 * time.Second

// ProviderSpec pairs a provider client with its retrieval timeout.
type ProviderSpec struct {
	Client  repository.ProviderClient
	Timeout time.Duration
}

// ReportAggregator fans retrieval out to every configured provider, joins
// on all outcomes, and composes the aggregated report. Provider failures
// are isolated: only the primary provider (or its missing price field)
// fails the request.
type ReportAggregator struct {
	providers []ProviderSpec
	engine    *valuation.Engine
	limiter   *ratelimit.Limiter
	metrics   repository.Metrics
	publisher repository.ReportPublisher
	logger    *xlogger.Logger
}

func NewReportAggregator(
	providers []ProviderSpec,
	engine *valuation.Engine,
	limiter *ratelimit.Limiter,
	metrics repository.Metrics,
	publisher repository.ReportPublisher,
	logger *xlogger.Logger,
) *ReportAggregator {
	return &ReportAggregator{
		providers: providers,
		engine:    engine,
		limiter:   limiter,
		metrics:   metrics,
		publisher: publisher,
		logger:    logger,
	}
}

// BuildReport aggregates all providers for ticker and derives valuations.
// Returns a 404-style AppError when the primary provider failed or its
// mandatory price field is absent.
func (a *ReportAggregator) BuildReport(ctx context.Context, ticker string) (*models.AggregatedReport, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	start := time.Now()

	results := a.fetchAll(ctx, ticker)

	primary, ok := a.primaryResult(results)
	if !ok || !primary.OK() {
		a.metrics.RecordReport("not_found")
		return nil, xhttp.NotFoundErrorf("no data found for %s", ticker)
	}
	if price := a.normalizeField(primary.Fields, models.FieldPrice); price == nil {
		a.metrics.RecordReport("not_found")
		return nil, xhttp.NotFoundErrorf("no price available for %s", ticker)
	}

	fundamentals := a.fundamentals(primary.Fields)
	estimates := a.engine.Estimates(fundamentals)
	warnings := a.engine.Warnings(fundamentals)

	report := assembleReport(ticker, a.providerOrder(), results, estimates, warnings)

	a.metrics.RecordReport("ok")
	a.logger.Info("report assembled",
		xlogger.String("ticker", ticker),
		xlogger.Int("providers", len(results)),
		xlogger.Duration("duration_ms", time.Since(start)),
	)

	if a.publisher != nil {
		if err := a.publisher.Publish(ctx, report); err != nil {
			// downstream events are best effort
			a.logger.Warn("report event publish failed",
				xlogger.String("ticker", ticker),
				xlogger.Error(err),
			)
		}
	}

	return report, nil
}

// fetchAll dispatches one task per provider and waits for every outcome.
// A failing or slow provider never cancels its siblings.
func (a *ReportAggregator) fetchAll(ctx context.Context, ticker string) map[string]models.ProviderResult {
	results := make([]models.ProviderResult, len(a.providers))

	var wg sync.WaitGroup
	for i, spec := range a.providers {
		wg.Add(1)
		go func(i int, spec ProviderSpec) {
			defer wg.Done()
			results[i] = a.fetchOne(ctx, spec, ticker)
		}(i, spec)
	}
	wg.Wait()

	out := make(map[string]models.ProviderResult, len(results))
	for _, r := range results {
		out[r.Provider] = r
	}
	return out
}

func (a *ReportAggregator) fetchOne(ctx context.Context, spec ProviderSpec, ticker string) (res models.ProviderResult) {
	name := spec.Client.Name()
	res = models.ProviderResult{Provider: name}

	fail := func(kind models.FailureKind, err error) {
		res.Fields = nil
		res.Failure = &models.FailureReason{Provider: name, Kind: kind, Err: err}
		a.metrics.RecordProviderError(name, string(kind))
		a.logger.Warn("provider fetch failed",
			xlogger.String("provider", name),
			xlogger.String("ticker", ticker),
			xlogger.String("kind", string(kind)),
			xlogger.Error(err),
		)
	}

	defer func() {
		if r := recover(); r != nil {
			fail(models.FailureUnavailable, fmt.Errorf("panic: %v", r))
		}
	}()

	if a.limiter != nil && !a.limiter.Allow(name) {
		fail(models.FailureUnavailable, errors.New("rate limited"))
		return res
	}

	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	fields, err := spec.Client.Fetch(fctx, ticker)
	a.metrics.RecordFetch(name, time.Since(start).Seconds())

	if err != nil {
		kind := models.FailureUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			kind = models.FailureTimeout
		}
		fail(kind, err)
		return res
	}

	res.Fields = fields
	return res
}

func (a *ReportAggregator) primaryResult(results map[string]models.ProviderResult) (models.ProviderResult, bool) {
	for _, spec := range a.providers {
		if spec.Client.Role() == repository.RolePrimary {
			r, ok := results[spec.Client.Name()]
			return r, ok
		}
	}
	return models.ProviderResult{}, false
}

// providerOrder is the configured order, used for deterministic field
// merging independent of completion order.
func (a *ReportAggregator) providerOrder() []string {
	order := make([]string, len(a.providers))
	for i, spec := range a.providers {
		order[i] = spec.Client.Name()
	}
	return order
}

func (a *ReportAggregator) fundamentals(fields models.RawFieldSet) models.Fundamentals {
	sector, _ := fields.Get(models.FieldSector)
	segment, _ := fields.Get(models.FieldSegment)
	return models.Fundamentals{
		Price:              a.normalizeField(fields, models.FieldPrice),
		EPS:                a.normalizeField(fields, models.FieldEPS),
		BVPS:               a.normalizeField(fields, models.FieldBVPS),
		DividendYield:      a.normalizeField(fields, models.FieldDividendYield),
		AvgDividendYield5y: a.normalizeField(fields, models.FieldAvgDividendYield5y),
		EarningsGrowth:     a.normalizeField(fields, models.FieldEarningsGrowth),
		Sector:             strings.TrimSpace(sector),
		Segment:            strings.TrimSpace(segment),
	}
}

// normalizeField parses one raw field, counting values that carried text
// but did not parse.
func (a *ReportAggregator) normalizeField(fields models.RawFieldSet, name string) *float64 {
	raw, ok := fields.Get(name)
	if !ok {
		return nil
	}
	v := normalize.Number(raw)
	if v == nil && strings.TrimSpace(raw) != "" && strings.TrimSpace(raw) != "-" {
		a.metrics.RecordParseFailure(name)
	}
	return v
}
