package analysis

import (
	"context"
	"fmt"
	"time"

	"StockScope/internal/domain/models"
	domsvc "StockScope/internal/domain/service"
	"StockScope/pkg/util"
)

type HTTPPricePredictor struct{ base *HTTPServiceBase }

func NewHTTPPricePredictor(baseURL string, timeout time.Duration) *HTTPPricePredictor {
	return &HTTPPricePredictor{base: NewHTTPServiceBase(baseURL, timeout)}
}

type predictionRequest struct {
	Symbol    string `json:"symbol"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type predictionResponse struct {
	PredictedPrice       float64 `json:"predicted_price"`
	LastClosePrice       float64 `json:"last_close_price"`
	PriceChange          float64 `json:"price_change"`
	PredictionConfidence int     `json:"prediction_confidence"`
	PredictionDirection  string  `json:"prediction_direction"`
	Error                string  `json:"error"`
}

func (p *HTTPPricePredictor) Predict(ctx context.Context, symbol string, from, to time.Time) (models.PricePrediction, error) {
	req := predictionRequest{
		Symbol:    symbol,
		StartDate: util.FormatDate(from),
		EndDate:   util.FormatDate(to),
	}
	var pr predictionResponse
	if err := p.base.PostJSONWithRetry(ctx, "/prediction/predict", req, &pr, 3); err != nil {
		return models.PricePrediction{}, fmt.Errorf("post prediction: %w", err)
	}
	if pr.Error != "" {
		return models.PricePrediction{}, fmt.Errorf("prediction service: %s", pr.Error)
	}

	confidence := pr.PredictionConfidence
	if confidence == 0 {
		confidence = 70
	}
	return models.PricePrediction{
		PredictedPrice:       pr.PredictedPrice,
		LastClosePrice:       pr.LastClosePrice,
		PriceChange:          pr.PriceChange,
		PredictionConfidence: confidence,
		PredictionDirection:  pr.PredictionDirection,
	}, nil
}

var _ domsvc.PricePredictor = (*HTTPPricePredictor)(nil)
