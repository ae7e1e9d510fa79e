package app

import (
	"strings"
	"time"
)

// DateProvider yields the calendar date used to query the upstream.
type DateProvider struct {
	now func() time.Time
	loc *time.Location
}

// NewDateProvider uses time.Now and UTC when now or loc are nil.
func NewDateProvider(now func() time.Time, loc *time.Location) DateProvider {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return DateProvider{now: now, loc: loc}
}

// Today returns the current date as YYYY-MM-DD, or "" if the RFC 3339
// rendering carries no 'T' separator.
func (p DateProvider) Today() string {
	stamp := p.now().In(p.loc).Format(time.RFC3339)
	date, _, ok := strings.Cut(stamp, "T")
	if !ok {
		return ""
	}
	return date
}
