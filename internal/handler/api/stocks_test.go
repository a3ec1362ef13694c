package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"StockScope/internal/domain/models"
	"StockScope/internal/service/fmp"
	"StockScope/internal/service/ratelimit"
	"StockScope/internal/usecase"
	applogger "StockScope/pkg/logger"
)

type stubSearcher struct {
	matches []models.TickerMatch
	err     error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ int) ([]models.TickerMatch, error) {
	return s.matches, s.err
}

type stubMarket struct{}

func (stubMarket) Profile(_ context.Context, symbol string) (models.Profile, error) {
	return models.Profile{Name: "Tata Consultancy Services", Symbol: symbol}, nil
}
func (stubMarket) DailyCloses(_ context.Context, _ string) ([]float64, error) {
	return []float64{100, 101}, nil
}
func (stubMarket) History(_ context.Context, _ string, _ int) ([]models.HistoricalPoint, error) {
	return []models.HistoricalPoint{{Date: "2025-08-29", Close: 100}}, nil
}

type stubNews struct{}

func (stubNews) LatestNews(_ context.Context, _ string, _ int) ([]models.NewsItem, error) {
	return []models.NewsItem{{Title: "story"}}, nil
}

type stubSentiment struct{}

func (stubSentiment) Analyze(_ context.Context, _ string) (models.SentimentReport, error) {
	return models.SentimentReport{OverallPrediction: "Positive"}, nil
}

type stubRisk struct{ err error }

func (s stubRisk) Analyze(_ context.Context, _ string, _ []string) (models.RiskAnalysis, error) {
	if s.err != nil {
		return models.RiskAnalysis{}, s.err
	}
	return models.RiskAnalysis{RiskLevel: "Low", Volatility: "0.1", DailyReturn: "0.2", CurrentPrice: "101", Trend: "Upward"}, nil
}

type stubPredictor struct{}

func (stubPredictor) Predict(_ context.Context, _ string, _, _ time.Time) (models.PricePrediction, error) {
	return models.PricePrediction{PredictedPrice: 105, PredictionDirection: "up"}, nil
}

func newTestServer(t *testing.T, searcher *stubSearcher, riskErr error) *echo.Echo {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	search := usecase.NewSearchUseCase(searcher, 10, l)
	agg := usecase.NewStockAggregator(stubMarket{}, stubNews{}, stubSentiment{}, stubRisk{err: riskErr}, stubPredictor{}, []string{"TCS.NS"}, 5, l)

	e := echo.New()
	NewStocksHandler(l, search, agg).RegisterRoutes(e)
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSearchMissingQueryIs400(t *testing.T) {
	e := newTestServer(t, &stubSearcher{}, nil)

	rec := doGet(e, "/stocks/search")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "Please provide a valid stock name or symbol" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestSearchReturnsMatches(t *testing.T) {
	e := newTestServer(t, &stubSearcher{matches: []models.TickerMatch{{Symbol: "TCS.NS", Name: "Tata Consultancy Services Limited"}}}, nil)

	rec := doGet(e, "/stocks/search?name=tata")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var matches []models.TickerMatch
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(matches) != 1 || matches[0].Symbol != "TCS.NS" {
		t.Fatalf("matches = %+v", matches)
	}
}

func TestSearchProviderFailuresStay200(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmp.ErrAuthentication, "API authentication failed"},
		{fmp.ErrRateLimited, "API rate limit exceeded"},
		{errors.New("connection refused"), "API request error"},
	}
	for _, tc := range cases {
		e := newTestServer(t, &stubSearcher{err: tc.err}, nil)
		rec := doGet(e, "/stocks/search?name=tata")
		if rec.Code != http.StatusOK {
			t.Fatalf("%v: status = %d, want 200", tc.err, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["error"] != tc.want {
			t.Fatalf("%v: error = %q, want %q", tc.err, body["error"], tc.want)
		}
	}
}

func TestDetailsAlways200(t *testing.T) {
	e := newTestServer(t, &stubSearcher{}, nil)

	rec := doGet(e, "/stocks/details/TCS.NS")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var d models.StockDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Profile.Symbol != "TCS.NS" {
		t.Fatalf("symbol = %q", d.Profile.Symbol)
	}
	if d.CurrentQuote.Price != 101 {
		t.Fatalf("price = %v", d.CurrentQuote.Price)
	}
	if d.Error != "" {
		t.Fatalf("unexpected error field: %q", d.Error)
	}
}

func TestRiskEnvelope(t *testing.T) {
	e := newTestServer(t, &stubSearcher{}, nil)

	rec := doGet(e, "/risk/analyze/TCS.NS")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]models.RiskAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	risk, ok := body["risk_analysis"]
	if !ok {
		t.Fatalf("missing risk_analysis key: %s", rec.Body.String())
	}
	if risk.RiskLevel != "Low" {
		t.Fatalf("risk level = %q", risk.RiskLevel)
	}
}

func TestRiskErrorStays200(t *testing.T) {
	e := newTestServer(t, &stubSearcher{}, errors.New("risk service down"))

	rec := doGet(e, "/risk/analyze/TCS.NS")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]models.RiskAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	risk := body["risk_analysis"]
	if risk.RiskLevel != "N/A" || risk.Error == "" {
		t.Fatalf("risk = %+v", risk)
	}
}

func TestHealthAndHome(t *testing.T) {
	e := newTestServer(t, &stubSearcher{}, nil)

	for _, target := range []string{"/", "/health"} {
		rec := doGet(e, target)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d", target, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
		if body["status"] != "ok" {
			t.Fatalf("%s: status field = %q", target, body["status"])
		}
	}
}

func TestRateLimitedSearchIs429(t *testing.T) {
	e := newTestServer(t, &stubSearcher{matches: []models.TickerMatch{}}, nil)

	// reuse the registered handler with a tight limiter
	l, _ := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	search := usecase.NewSearchUseCase(&stubSearcher{matches: []models.TickerMatch{}}, 10, l)
	agg := usecase.NewStockAggregator(stubMarket{}, stubNews{}, stubSentiment{}, stubRisk{}, stubPredictor{}, nil, 5, l)
	h := NewStocksHandler(l, search, agg)
	h.SetRateLimit(ratelimit.New(), 1, 0)

	e = echo.New()
	h.RegisterRoutes(e)

	if rec := doGet(e, "/stocks/search?name=tata"); rec.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", rec.Code)
	}
	if rec := doGet(e, "/stocks/search?name=tata"); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", rec.Code)
	}
}
