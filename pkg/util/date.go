package util

import "time"

// ISODate is the wire format for daily price dates.
const ISODate = "2006-01-02"

// FormatDate renders t as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(ISODate)
}

// TrailingWindow returns the [from, to] range ending now and starting the
// given number of days back.
func TrailingWindow(days int) (time.Time, time.Time) {
	to := time.Now()
	from := to.AddDate(0, 0, -days)
	return from, to
}
