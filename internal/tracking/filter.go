package tracking

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date bucket format used by both stores.
const DateLayout = "2006-01-02"

// Filter narrows a store read. Username is a case-insensitive exact match,
// dates are calendar-date buckets. A from/to range takes precedence over the
// single date; UpdatedSince is the live-view rolling cutoff and is ignored
// when zero.
type Filter struct {
	Username     string
	Date         string
	DateFrom     string
	DateTo       string
	ClientCode   string
	UpdatedSince time.Time
}

// HasRange reports whether both range bounds are set.
func (f Filter) HasRange() bool {
	return f.DateFrom != "" && f.DateTo != ""
}

// ValidDate reports whether s parses as a date bucket.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// NormalizeDate trims s and returns it when it is a valid date bucket,
// otherwise the empty string. Malformed explicit dates degrade to "no
// explicit date" rather than failing the request.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if !ValidDate(s) {
		return ""
	}
	return s
}
