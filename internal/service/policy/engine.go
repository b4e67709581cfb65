// Package policy evaluates the studio cancellation window. All
// comparisons happen in the studio's own timezone against the server
// clock. Client-reported time is never trusted.
package policy

import (
	"time"

	"github.com/studiofit/booking-service/internal/domain"
	"github.com/studiofit/booking-service/pkg/types"
)

type Engine struct {
	loc *time.Location
}

func NewEngine(loc *time.Location) *Engine {
	return &Engine{loc: loc}
}

// IsWithinWindow reports whether a booking may still be cancelled under
// the given policy. A zero policy value means cancellation is always
// allowed. Otherwise the remaining time until class start must strictly
// exceed the lead time; a booking exactly at the boundary is outside.
func (e *Engine) IsWithinWindow(policy domain.CancellationPolicy, bookingDate time.Time, startTime types.TimeString, now time.Time) (bool, error) {
	leadHours := policy.LeadTimeHours()
	if leadHours == 0 {
		return true, nil
	}

	start, err := startTime.AtDate(bookingDate, e.loc)
	if err != nil {
		return false, err
	}

	hoursUntil := start.Sub(now.In(e.loc)).Hours()
	return hoursUntil > leadHours, nil
}
