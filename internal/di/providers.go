package di

import (
	"fmt"

	"StockScope/internal/domain/repository"
	"StockScope/internal/handler/api"
	internalrepo "StockScope/internal/repository"
	"StockScope/internal/service/analyst"
	"StockScope/internal/service/ratelimit"
	"StockScope/internal/service/scrape"
	"StockScope/internal/services/valuation"
	"StockScope/internal/usecase"
	"StockScope/pkg/config"
	xhttp "StockScope/pkg/http"
	pkgkafka "StockScope/pkg/kafka"
	"StockScope/pkg/logger"
	"StockScope/pkg/metrics"
	"StockScope/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSessionPool creates the shared scraping session pool.
func ProvideSessionPool(cfg *config.Config) *scrape.SessionPool {
	return scrape.NewSessionPool(scrape.PoolConfig{
		UserAgent: cfg.Scrape.UserAgent,
		Timeout:   cfg.Scrape.SessionTimeout,
		MaxAge:    cfg.Scrape.SessionMaxAge,
		MaxUses:   cfg.Scrape.SessionMaxUses,
	})
}

// ProvideRateLimiter creates the per-provider limiter and registers every
// configured bucket.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	l := ratelimit.New()
	for _, p := range cfg.Providers {
		l.Configure(p.Name, p.RateLimit.Capacity, p.RateLimit.RefillPerSec)
	}
	return l
}

// ProvideProviders builds the configured provider clients. Scrape providers
// share the session pool; api providers get a plain JSON client.
func ProvideProviders(cfg *config.Config, pool *scrape.SessionPool) ([]usecase.ProviderSpec, error) {
	specs := make([]usecase.ProviderSpec, 0, len(cfg.Providers))
	for _, pc := range cfg.Providers {
		role := repository.RoleSecondary
		if pc.Role == "primary" {
			role = repository.RolePrimary
		}

		var client repository.ProviderClient
		switch pc.Kind {
		case "scrape":
			selectors := pc.Selectors
			if len(selectors) == 0 {
				if role == repository.RolePrimary {
					selectors = scrape.DefaultFundamentalsSelectors()
				} else {
					selectors = scrape.DefaultRecommendationSelectors()
				}
			}
			client = scrape.NewClient(pc.Name, role, pc.URLTemplate, selectors, pool)
		case "api":
			if role == repository.RolePrimary {
				return nil, fmt.Errorf("provider %s: api providers are secondary only", pc.Name)
			}
			client = analyst.New(pc.Name, pc.URLTemplate, pc.Timeout)
		default:
			return nil, fmt.Errorf("provider %s: unknown kind '%s'", pc.Name, pc.Kind)
		}

		specs = append(specs, usecase.ProviderSpec{Client: client, Timeout: pc.Timeout})
	}
	return specs, nil
}

// ProvideValuationEngine creates the valuation engine with the configured
// macro parameters.
func ProvideValuationEngine(cfg *config.Config) *valuation.Engine {
	return valuation.NewEngine(valuation.Params{
		BazinTargetYield:   cfg.Valuation.BazinTargetYield,
		BasePE:             cfg.Valuation.BasePE,
		CurrentRate:        cfg.Valuation.CurrentRate,
		HistoricalRate:     cfg.Valuation.HistoricalRate,
		FallbackGrowthRate: cfg.Valuation.FallbackGrowthRate,
		UnreliableSegments: cfg.Valuation.UnreliableSegments,
	})
}

// ProvideReportPublisher creates the Kafka publisher when events are enabled,
// otherwise a no-op.
func ProvideReportPublisher(cfg *config.Config) (repository.ReportPublisher, error) {
	if !cfg.Events.Enabled {
		return internalrepo.NoopReportPublisher{}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithWriteTimeout(cfg.Events.WriteTimeout),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaReportPublisher(producer, cfg.Events.Topic), nil
}

// ProvideReportAggregator creates the report use case.
func ProvideReportAggregator(
	providers []usecase.ProviderSpec,
	engine *valuation.Engine,
	limiter *ratelimit.Limiter,
	m repository.Metrics,
	publisher repository.ReportPublisher,
	log *logger.Logger,
) *usecase.ReportAggregator {
	return usecase.NewReportAggregator(providers, engine, limiter, m, publisher, log)
}

// ProvideHTTPHandler creates the Echo handler for the report API.
func ProvideHTTPHandler(log *logger.Logger, agg *usecase.ReportAggregator, pool *scrape.SessionPool) xhttp.Handler {
	return api.NewReportEchoHandler(log, agg, pool)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler xhttp.Handler,
	pool *scrape.SessionPool,
	publisher repository.ReportPublisher,
) *server.App {
	return server.New(cfg, log, handler, pool, publisher)
}
