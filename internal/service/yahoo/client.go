package yahoo

import (
	"context"
	"fmt"
	"time"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	xhttp "StockScope/pkg/http"
	"StockScope/pkg/util"
)

// Client implements MarketData against the Yahoo Finance v8/v10 JSON API.
type Client struct {
	baseURL string
	client  *xhttp.Client
}

// New creates a new market data client.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

// chartResponse mirrors the v8 chart payload, trimmed to needed fields.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// quoteSummaryResponse mirrors the v10 quoteSummary payload, trimmed.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile struct {
				Industry string `json:"industry"`
				Sector   string `json:"sector"`
				Country  string `json:"country"`
				Website  string `json:"website"`
			} `json:"assetProfile"`
			Price struct {
				LongName  string `json:"longName"`
				ShortName string `json:"shortName"`
				Symbol    string `json:"symbol"`
			} `json:"price"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"quoteSummary"`
}

// Profile fetches company identity fields. Missing fields stay empty; the
// aggregator keeps its defaults for those.
func (c *Client) Profile(ctx context.Context, symbol string) (models.Profile, error) {
	var qs quoteSummaryResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v10/finance/quoteSummary/%s", c.baseURL, symbol),
		QueryParams: map[string][]string{
			"modules": {"assetProfile,price"},
		},
	}, &qs)
	if err != nil {
		return models.Profile{}, fmt.Errorf("quote summary %s: %w", symbol, err)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return models.Profile{}, fmt.Errorf("quote summary %s: empty result", symbol)
	}

	r := qs.QuoteSummary.Result[0]
	name := r.Price.LongName
	if name == "" {
		name = r.Price.ShortName
	}
	return models.Profile{
		Name:     name,
		Symbol:   symbol,
		Industry: r.AssetProfile.Industry,
		Sector:   r.AssetProfile.Sector,
		Country:  r.AssetProfile.Country,
		Website:  r.AssetProfile.Website,
	}, nil
}

// DailyCloses returns the close samples of the current trading day in
// source order. An empty series is not an error.
func (c *Client) DailyCloses(ctx context.Context, symbol string) ([]float64, error) {
	_, closes, err := c.chart(ctx, symbol, "1d", "5m")
	if err != nil {
		return nil, err
	}
	return closes, nil
}

// History returns daily closes over the trailing days, oldest first.
func (c *Client) History(ctx context.Context, symbol string, days int) ([]models.HistoricalPoint, error) {
	rng := "1y"
	if days <= 31 {
		rng = "1mo"
	}
	ts, closes, err := c.chart(ctx, symbol, rng, "1d")
	if err != nil {
		return nil, err
	}

	points := make([]models.HistoricalPoint, 0, len(closes))
	for i, cl := range closes {
		if i >= len(ts) {
			break
		}
		points = append(points, models.HistoricalPoint{
			Date:  util.FormatDate(time.Unix(ts[i], 0)),
			Close: cl,
		})
	}
	return points, nil
}

// chart fetches a close series, dropping null samples the API emits for
// halted intervals.
func (c *Client) chart(ctx context.Context, symbol, rng, interval string) ([]int64, []float64, error) {
	var cr chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, symbol),
		QueryParams: map[string][]string{
			"range":    {rng},
			"interval": {interval},
		},
	}, &cr)
	if err != nil {
		return nil, nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if len(cr.Chart.Result) == 0 {
		return nil, nil, nil
	}

	r := cr.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return nil, nil, nil
	}

	raw := r.Indicators.Quote[0].Close
	ts := make([]int64, 0, len(raw))
	closes := make([]float64, 0, len(raw))
	for i, v := range raw {
		if v == nil || i >= len(r.Timestamp) {
			continue
		}
		ts = append(ts, r.Timestamp[i])
		closes = append(closes, *v)
	}
	return ts, closes, nil
}

var _ drepo.MarketData = (*Client)(nil)
