// Package usecase contains the business logic of the application.
package usecase

import (
	"log"
	"strings"
	"time"

	"github.com/lechnerc77/github-pr-analytics/internal/domain"
)

// Interval is a user-selectable reporting time range.
type Interval string

const (
	IntervalLastWeek  Interval = "last_week"
	IntervalLastMonth Interval = "last_month"
)

// ParseInterval maps user input to an Interval. Empty input selects the
// default; anything unrecognized falls back to last_week with a logged
// notice instead of failing.
func ParseInterval(input string, logger *log.Logger) Interval {
	switch Interval(strings.ToLower(strings.TrimSpace(input))) {
	case IntervalLastWeek, "":
		return IntervalLastWeek
	case IntervalLastMonth:
		return IntervalLastMonth
	default:
		logger.Printf("Unknown time interval %q, falling back to %s.\n", input, IntervalLastWeek)
		return IntervalLastWeek
	}
}

// Window computes the reporting window ending at now.
func (i Interval) Window(now time.Time) domain.Window {
	var start time.Time
	switch i {
	case IntervalLastMonth:
		start = now.AddDate(0, -1, 0)
	default:
		start = now.AddDate(0, 0, -7)
	}
	return domain.Window{Start: start, End: now}
}
