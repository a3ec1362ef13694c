package di

import (
	"fmt"

	drepo "StockScope/internal/domain/repository"
	domsvc "StockScope/internal/domain/service"
	"StockScope/internal/handler/api"
	"StockScope/internal/service/fmp"
	"StockScope/internal/service/ratelimit"
	"StockScope/internal/service/yahoo"
	"StockScope/internal/services/analysis"
	"StockScope/internal/usecase"
	"StockScope/pkg/config"
	xhttp "StockScope/pkg/http"
	applogger "StockScope/pkg/logger"
	"StockScope/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	l, err := applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideFMPClient creates the search/news provider client.
func ProvideFMPClient(cfg *config.Config) *fmp.Client {
	return fmp.New(cfg.FMP.APIKey, cfg.FMP.BaseURL, cfg.FMP.Timeout)
}

// ProvideTickerSearcher exposes the FMP client as the search provider.
func ProvideTickerSearcher(c *fmp.Client) drepo.TickerSearcher { return c }

// ProvideNewsSource exposes the FMP client as the news provider.
func ProvideNewsSource(c *fmp.Client) drepo.NewsSource { return c }

// ProvideMarketData creates the market data provider client.
func ProvideMarketData(cfg *config.Config) drepo.MarketData {
	return yahoo.New(cfg.MarketData.BaseURL, cfg.MarketData.Timeout)
}

// ProvideSentimentAnalyzer creates the sentiment collaborator adapter.
func ProvideSentimentAnalyzer(cfg *config.Config) domsvc.SentimentAnalyzer {
	return analysis.NewHTTPSentimentAnalyzer(cfg.Analysis.ServiceURL, cfg.Analysis.Timeout)
}

// ProvideRiskAnalyzer creates the risk collaborator adapter.
func ProvideRiskAnalyzer(cfg *config.Config) domsvc.RiskAnalyzer {
	return analysis.NewHTTPRiskAnalyzer(cfg.Analysis.ServiceURL, cfg.Analysis.Timeout)
}

// ProvidePricePredictor creates the price prediction collaborator adapter.
func ProvidePricePredictor(cfg *config.Config) domsvc.PricePredictor {
	return analysis.NewHTTPPricePredictor(cfg.Analysis.ServiceURL, cfg.Analysis.Timeout)
}

// ProvideStockAggregator creates the aggregation use case.
func ProvideStockAggregator(
	market drepo.MarketData,
	news drepo.NewsSource,
	sentiment domsvc.SentimentAnalyzer,
	risk domsvc.RiskAnalyzer,
	predictor domsvc.PricePredictor,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.StockAggregator {
	return usecase.NewStockAggregator(market, news, sentiment, risk, predictor,
		cfg.Risk.Portfolio, cfg.FMP.NewsLimit, l)
}

// ProvideSearchUseCase creates the ticker search use case.
func ProvideSearchUseCase(searcher drepo.TickerSearcher, cfg *config.Config, l *applogger.Logger) *usecase.SearchUseCase {
	return usecase.NewSearchUseCase(searcher, cfg.FMP.SearchLimit, l)
}

// ProvideHandler creates the HTTP handler with optional rate limiting.
func ProvideHandler(
	cfg *config.Config,
	l *applogger.Logger,
	search *usecase.SearchUseCase,
	agg *usecase.StockAggregator,
) xhttp.Handler {
	h := api.NewStocksHandler(l, search, agg)
	if cfg.RateLimit.Enabled {
		var limiter ratelimit.Limiter
		if cfg.RateLimit.Redis.Addr != "" {
			limiter = ratelimit.NewRedisLimiter(ratelimit.RedisConfig{
				Addr:     cfg.RateLimit.Redis.Addr,
				Password: cfg.RateLimit.Redis.Password,
				DB:       cfg.RateLimit.Redis.DB,
			})
		} else {
			limiter = ratelimit.New()
		}
		h.SetRateLimit(limiter, cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
