package repository

import (
	"context"

	"StockScope/internal/domain/models"
)

// MarketData provides company profile and price series for a symbol.
type MarketData interface {
	// Profile returns company identity fields.
	Profile(ctx context.Context, symbol string) (models.Profile, error)
	// DailyCloses returns the close prices of the current trading day,
	// oldest sample first.
	DailyCloses(ctx context.Context, symbol string) ([]float64, error)
	// History returns daily closes over the trailing number of days,
	// oldest first, in source order.
	History(ctx context.Context, symbol string, days int) ([]models.HistoricalPoint, error)
}

// NewsSource fetches recent articles for a symbol, most recent first.
type NewsSource interface {
	LatestNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error)
}

// TickerSearcher resolves a free-text query to ticker matches.
type TickerSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.TickerMatch, error)
}
