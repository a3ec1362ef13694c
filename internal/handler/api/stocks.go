package api

import (
	"errors"
	"net/http"

	"StockScope/internal/domain/models"
	"StockScope/internal/service/fmp"
	"StockScope/internal/service/ratelimit"
	"StockScope/internal/usecase"
	xhttp "StockScope/pkg/http"
	xlogger "StockScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StocksHandler exposes the stock aggregation REST surface. Endpoint
// policy: provider failures surface as HTTP 200 with an error body so the
// frontend keeps rendering during partial upstream outages; only client
// input errors get a 4xx.
type StocksHandler struct {
	logger  *xlogger.Logger
	search  *usecase.SearchUseCase
	agg     *usecase.StockAggregator
	limiter ratelimit.Limiter

	rlCapacity float64
	rlRefill   float64
}

func NewStocksHandler(logger *xlogger.Logger, search *usecase.SearchUseCase, agg *usecase.StockAggregator) *StocksHandler {
	return &StocksHandler{logger: logger, search: search, agg: agg}
}

// SetRateLimit installs an inbound per-client limiter on the public routes.
func (h *StocksHandler) SetRateLimit(l ratelimit.Limiter, capacity, refillPerSec float64) {
	h.limiter = l
	h.rlCapacity = capacity
	h.rlRefill = refillPerSec
}

func (h *StocksHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/health", h.Health)

	s := e.Group("/stocks")
	s.GET("/search", h.Search)
	s.GET("/details/:symbol", h.Details)

	r := e.Group("/risk")
	r.GET("/analyze/:symbol", h.AnalyzeRisk)
}

func (h *StocksHandler) Home(c echo.Context) error {
	return xhttp.OK(c, map[string]string{
		"status":  "ok",
		"message": "Stock Analysis API is running",
	})
}

func (h *StocksHandler) Health(c echo.Context) error {
	return xhttp.OK(c, map[string]string{
		"status":  "ok",
		"version": "1.0.0",
	})
}

func (h *StocksHandler) Search(c echo.Context) error {
	req := &models.SearchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequest(c, "Please provide a valid stock name or symbol")
	}
	if !h.allow(c, "search") {
		return xhttp.TooManyRequests(c, "rate limited")
	}

	matches, err := h.search.Search(c.Request().Context(), req.Name, req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyQuery):
			return xhttp.BadRequest(c, "Please provide a valid stock name or symbol")
		case errors.Is(err, fmp.ErrAuthentication):
			return xhttp.ErrorJSON(c, http.StatusOK, "API authentication failed")
		case errors.Is(err, fmp.ErrRateLimited):
			return xhttp.ErrorJSON(c, http.StatusOK, "API rate limit exceeded")
		default:
			return xhttp.ErrorJSON(c, http.StatusOK, "API request error")
		}
	}
	return xhttp.OK(c, matches)
}

func (h *StocksHandler) Details(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequest(c, "Symbol is required")
	}
	if !h.allow(c, "details") {
		return xhttp.TooManyRequests(c, "rate limited")
	}

	details := h.agg.GetStockDetails(c.Request().Context(), req.Symbol)
	return xhttp.OK(c, details)
}

func (h *StocksHandler) AnalyzeRisk(c echo.Context) error {
	req := &models.SymbolRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequest(c, "Symbol is required")
	}

	risk := h.agg.AnalyzeRisk(c.Request().Context(), req.Symbol)
	return xhttp.OK(c, map[string]*models.RiskAnalysis{"risk_analysis": risk})
}

func (h *StocksHandler) allow(c echo.Context, route string) bool {
	if h.limiter == nil {
		return true
	}
	if h.limiter.Allow(c.RealIP()+":"+route, h.rlCapacity, h.rlRefill) {
		return true
	}
	h.logger.Warn("request rate limited",
		xlogger.String("route", route),
		xlogger.String("remote", c.RealIP()),
	)
	return false
}
