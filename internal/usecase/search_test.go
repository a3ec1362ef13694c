package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"StockScope/internal/domain/models"
	"StockScope/internal/service/fmp"
)

type fakeSearcher struct {
	matches  []models.TickerMatch
	err      error
	calls    int
	gotLimit int
}

func (f *fakeSearcher) Search(_ context.Context, _ string, limit int) ([]models.TickerMatch, error) {
	f.calls++
	f.gotLimit = limit
	return f.matches, f.err
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	f := &fakeSearcher{}
	uc := NewSearchUseCase(f, 10, testLogger(t))

	for _, q := range []string{"", "   ", "\t"} {
		_, err := uc.Search(context.Background(), q, 10)
		if !errors.Is(err, ErrEmptyQuery) {
			t.Fatalf("query %q: err = %v, want ErrEmptyQuery", q, err)
		}
	}
	if f.calls != 0 {
		t.Fatalf("provider called %d times for empty queries", f.calls)
	}
}

func TestSearchLimitClamped(t *testing.T) {
	f := &fakeSearcher{matches: []models.TickerMatch{{Symbol: "TCS.NS", Name: "Tata Consultancy Services"}}}
	uc := NewSearchUseCase(f, 10, testLogger(t))

	if _, err := uc.Search(context.Background(), "tata", 500); err != nil {
		t.Fatalf("search: %v", err)
	}
	if f.gotLimit != 10 {
		t.Fatalf("limit = %d, want clamped to 10", f.gotLimit)
	}

	if _, err := uc.Search(context.Background(), "tata", 3); err != nil {
		t.Fatalf("search: %v", err)
	}
	if f.gotLimit != 3 {
		t.Fatalf("limit = %d, want 3", f.gotLimit)
	}
}

func TestSearchPropagatesProviderErrors(t *testing.T) {
	f := &fakeSearcher{err: fmt.Errorf("search ticker: %w", fmp.ErrAuthentication)}
	uc := NewSearchUseCase(f, 10, testLogger(t))

	_, err := uc.Search(context.Background(), "tata", 10)
	if !errors.Is(err, fmp.ErrAuthentication) {
		t.Fatalf("err = %v, want ErrAuthentication", err)
	}
}
