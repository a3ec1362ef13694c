package analysis

import (
	"context"
	"fmt"
	"time"

	"StockScope/internal/domain/models"
	domsvc "StockScope/internal/domain/service"
)

type HTTPSentimentAnalyzer struct{ base *HTTPServiceBase }

func NewHTTPSentimentAnalyzer(baseURL string, timeout time.Duration) *HTTPSentimentAnalyzer {
	return &HTTPSentimentAnalyzer{base: NewHTTPServiceBase(baseURL, timeout)}
}

type sentimentRequest struct {
	Symbol string `json:"symbol"`
}

type sentimentResponse struct {
	News []struct {
		Title       string `json:"title"`
		Publisher   string `json:"publisher"`
		Link        string `json:"link"`
		PublishedAt string `json:"published_at"`
	} `json:"news"`
	OverallPrediction string `json:"overall_prediction"`
}

func (a *HTTPSentimentAnalyzer) Analyze(ctx context.Context, symbol string) (models.SentimentReport, error) {
	var sr sentimentResponse
	err := a.base.PostJSONWithRetry(ctx, "/sentiment/analyze", sentimentRequest{Symbol: symbol}, &sr, 3)
	if err != nil {
		return models.SentimentReport{}, fmt.Errorf("post sentiment: %w", err)
	}

	report := models.SentimentReport{OverallPrediction: sr.OverallPrediction}
	for _, n := range sr.News {
		report.News = append(report.News, models.NewsItem{
			Title:       n.Title,
			Publisher:   n.Publisher,
			Link:        n.Link,
			PublishedAt: n.PublishedAt,
		})
	}
	return report, nil
}

var _ domsvc.SentimentAnalyzer = (*HTTPSentimentAnalyzer)(nil)
