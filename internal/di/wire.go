//go:build wireinject
// +build wireinject

package di

import (
	"StockScope/pkg/config"
	"StockScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Provider infrastructure
		ProvideSessionPool,
		ProvideRateLimiter,
		ProvideProviders,

		// Domain services
		ProvideValuationEngine,
		ProvideReportPublisher,

		// Use cases
		ProvideReportAggregator,

		// HTTP surface
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
