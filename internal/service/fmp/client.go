package fmp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	xhttp "StockScope/pkg/http"
)

// Provider-side failures callers are expected to branch on.
var (
	ErrAuthentication = errors.New("fmp: authentication failed")
	ErrRateLimited    = errors.New("fmp: rate limited")
)

// Client talks to the Financial Modeling Prep REST API with an API key
// passed as a query parameter.
type Client struct {
	apiKey  string
	baseURL string
	client  *xhttp.Client
}

// New creates a new FMP client.
func New(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// Search queries /v3/search-ticker with a bounded result count.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]models.TickerMatch, error) {
	var matches []models.TickerMatch
	err := c.getJSON(ctx, "/v3/search-ticker", map[string][]string{
		"query": {query},
		"limit": {fmt.Sprintf("%d", limit)},
	}, &matches)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.TickerMatch{}
	}
	return matches, nil
}

type newsArticle struct {
	Title         string `json:"title"`
	Site          string `json:"site"`
	URL           string `json:"url"`
	PublishedDate string `json:"publishedDate"`
}

// LatestNews queries /v3/stock_news and maps articles to NewsItems, capped
// at limit in provider order.
func (c *Client) LatestNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	var articles []newsArticle
	err := c.getJSON(ctx, "/v3/stock_news", map[string][]string{
		"tickers": {symbol},
		"limit":   {fmt.Sprintf("%d", limit)},
	}, &articles)
	if err != nil {
		return nil, err
	}

	if len(articles) > limit {
		articles = articles[:limit]
	}
	items := make([]models.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, models.NewsItem{
			Title:       a.Title,
			Publisher:   a.Site,
			Link:        a.URL,
			PublishedAt: a.PublishedDate,
		})
	}
	return items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params map[string][]string, dest interface{}) error {
	params["apikey"] = []string{c.apiKey}

	resp, err := c.client.SendRequest(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: params,
	})
	if err != nil {
		return fmt.Errorf("fmp %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthentication
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("fmp %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("fmp %s: decode: %w", path, err)
	}
	return nil
}

var (
	_ drepo.TickerSearcher = (*Client)(nil)
	_ drepo.NewsSource     = (*Client)(nil)
)
