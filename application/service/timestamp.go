package service

import (
	"strings"
	"time"
)

// legacyTimestampLayout is the second-resolution wall clock format legacy
// dumps write timestamps in.
const legacyTimestampLayout = "2006-01-02 15:04:05"

// NormalizeTimestamp parses a legacy dump timestamp. Some exporters append
// fractional seconds; everything from the first dot on is discarded before
// parsing. An empty or unparseable value normalizes to nil, never to a
// zero time.
func NormalizeTimestamp(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	t, err := time.Parse(legacyTimestampLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
