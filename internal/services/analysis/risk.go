package analysis

import (
	"context"
	"fmt"
	"time"

	"StockScope/internal/domain/models"
	domsvc "StockScope/internal/domain/service"
)

type HTTPRiskAnalyzer struct{ base *HTTPServiceBase }

func NewHTTPRiskAnalyzer(baseURL string, timeout time.Duration) *HTTPRiskAnalyzer {
	return &HTTPRiskAnalyzer{base: NewHTTPServiceBase(baseURL, timeout)}
}

type riskRequest struct {
	Symbol    string   `json:"symbol"`
	Portfolio []string `json:"portfolio"`
}

type riskResponse struct {
	RiskLevel    string   `json:"risk_level"`
	Volatility   string   `json:"volatility"`
	DailyReturn  string   `json:"daily_return"`
	CurrentPrice string   `json:"current_price"`
	Trend        string   `json:"trend"`
	LatestClose  *float64 `json:"latest_close"`
	Error        string   `json:"error"`
}

func (a *HTTPRiskAnalyzer) Analyze(ctx context.Context, symbol string, portfolio []string) (models.RiskAnalysis, error) {
	var rr riskResponse
	err := a.base.PostJSONWithRetry(ctx, "/risk/analyze", riskRequest{Symbol: symbol, Portfolio: portfolio}, &rr, 3)
	if err != nil {
		return models.RiskAnalysis{}, fmt.Errorf("post risk: %w", err)
	}
	if rr.Error != "" {
		return models.RiskAnalysis{}, fmt.Errorf("risk service: %s", rr.Error)
	}

	res := models.RiskAnalysis{
		RiskLevel:    orNA(rr.RiskLevel),
		Volatility:   orNA(rr.Volatility),
		DailyReturn:  orNA(rr.DailyReturn),
		CurrentPrice: orNA(rr.CurrentPrice),
		Trend:        orNA(rr.Trend),
		LatestClose:  rr.LatestClose,
	}
	return res, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

var _ domsvc.RiskAnalyzer = (*HTTPRiskAnalyzer)(nil)
