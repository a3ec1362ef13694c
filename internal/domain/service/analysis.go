package service

import (
	"context"
	"time"

	"StockScope/internal/domain/models"
)

// SentimentAnalyzer scores recent coverage for a symbol. Its report may
// carry its own news items, which take priority over the news provider's.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, symbol string) (models.SentimentReport, error)
}

// RiskAnalyzer scores a symbol against a fixed reference portfolio.
type RiskAnalyzer interface {
	Analyze(ctx context.Context, symbol string, portfolio []string) (models.RiskAnalysis, error)
}

// PricePredictor predicts the next price from a trailing window of closes.
type PricePredictor interface {
	Predict(ctx context.Context, symbol string, from, to time.Time) (models.PricePrediction, error)
}
