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

		// Provider clients
		ProvideFMPClient,
		ProvideTickerSearcher,
		ProvideNewsSource,
		ProvideMarketData,

		// Analysis collaborators
		ProvideSentimentAnalyzer,
		ProvideRiskAnalyzer,
		ProvidePricePredictor,

		// Use cases
		ProvideStockAggregator,
		ProvideSearchUseCase,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
