package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func chartBody(ts []int64, closes []string) string {
	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"close":[%s]}]}}],"error":null}}`,
		joinInt64(ts), strings.Join(closes, ","))
}

func joinInt64(vs []int64) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, ",")
}

func TestDailyClosesDropsNullSamples(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/") {
			t.Fatalf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("range") != "1d" || q.Get("interval") != "5m" {
			t.Fatalf("query = %v", q)
		}
		w.Write([]byte(chartBody([]int64{1756700000, 1756700300, 1756700600}, []string{"100.5", "null", "101.25"})))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	closes, err := c.DailyCloses(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("daily closes: %v", err)
	}
	if len(closes) != 2 || closes[0] != 100.5 || closes[1] != 101.25 {
		t.Fatalf("closes = %v", closes)
	}
}

func TestDailyClosesEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	closes, err := c.DailyCloses(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("daily closes: %v", err)
	}
	if len(closes) != 0 {
		t.Fatalf("closes = %v, want empty", closes)
	}
}

func TestHistoryFormatsDates(t *testing.T) {
	day := time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("interval") != "1d" {
			t.Fatalf("interval = %q", r.URL.Query().Get("interval"))
		}
		w.Write([]byte(chartBody(
			[]int64{day.Unix(), day.AddDate(0, 0, 1).Unix()},
			[]string{"95.0", "96.5"},
		)))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	points, err := c.History(context.Background(), "TCS.NS", 365)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points", len(points))
	}
	if points[0].Date != "2025-08-29" || points[0].Close != 95.0 {
		t.Fatalf("first point = %+v", points[0])
	}
	if points[1].Date != "2025-08-30" || points[1].Close != 96.5 {
		t.Fatalf("second point = %+v", points[1])
	}
}

func TestProfileParsesAndFallsBackToShortName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v10/finance/quoteSummary/") {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("modules") != "assetProfile,price" {
			t.Fatalf("modules = %q", r.URL.Query().Get("modules"))
		}
		w.Write([]byte(`{"quoteSummary":{"result":[{
			"assetProfile":{"industry":"IT Services","sector":"Technology","country":"India","website":"https://www.tcs.com"},
			"price":{"longName":"","shortName":"TCS","symbol":"TCS.NS"}
		}],"error":null}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	p, err := c.Profile(context.Background(), "TCS.NS")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Name != "TCS" {
		t.Fatalf("name = %q, want short name fallback", p.Name)
	}
	if p.Symbol != "TCS.NS" || p.Industry != "IT Services" || p.Sector != "Technology" {
		t.Fatalf("profile = %+v", p)
	}
	if p.Country != "India" || p.Website != "https://www.tcs.com" {
		t.Fatalf("profile = %+v", p)
	}
}

func TestProfileEmptyResultIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary":{"result":[],"error":null}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	if _, err := c.Profile(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for empty result")
	}
}
