package usecase

import (
	"context"
	"errors"
	"strings"

	"StockScope/internal/domain/models"
	drepo "StockScope/internal/domain/repository"
	"StockScope/internal/service/fmp"
	"StockScope/internal/service/metrics"
	applogger "StockScope/pkg/logger"
)

// ErrEmptyQuery is returned before any network call is made.
var ErrEmptyQuery = errors.New("empty search query")

// SearchUseCase resolves free-text queries against the ticker search
// provider with a bounded result count.
type SearchUseCase struct {
	searcher drepo.TickerSearcher
	limit    int
	l        *applogger.Logger
}

func NewSearchUseCase(searcher drepo.TickerSearcher, limit int, l *applogger.Logger) *SearchUseCase {
	metrics.Register()
	if limit <= 0 {
		limit = 10
	}
	return &SearchUseCase{searcher: searcher, limit: limit, l: l}
}

// Search trims and validates the query before touching the network, then
// returns the provider's matches in provider order.
func (uc *SearchUseCase) Search(ctx context.Context, query string, limit int) ([]models.TickerMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 || limit > uc.limit {
		limit = uc.limit
	}

	matches, err := uc.searcher.Search(ctx, query, limit)
	if err != nil {
		switch {
		case errors.Is(err, fmp.ErrAuthentication):
			metrics.SearchErrors.WithLabelValues("auth").Inc()
		case errors.Is(err, fmp.ErrRateLimited):
			metrics.SearchErrors.WithLabelValues("rate_limit").Inc()
		default:
			metrics.SearchErrors.WithLabelValues("transport").Inc()
		}
		uc.l.Error("ticker search failed", applogger.String("query", query), applogger.Error(err))
		return nil, err
	}
	return matches, nil
}
