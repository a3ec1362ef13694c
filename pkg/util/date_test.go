package util

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 10, 10, 23, 59, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-10-10" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestTrailingWindow(t *testing.T) {
	from, to := TrailingWindow(365)
	if !from.Before(to) {
		t.Fatalf("expected from before to")
	}
	days := to.Sub(from).Hours() / 24
	if days < 364 || days > 366 {
		t.Fatalf("unexpected window length %.1f days", days)
	}
}
