package domain

import (
	"strings"
	"time"
)

// CanonicalShiftHours is the duration the cost function assigns to every
// shift occurrence regardless of the shift's declared StartTime/EndTime.
// Night shifts whose EndTime is numerically before StartTime do NOT cause
// the cost function to treat the shift as wrapping past midnight — this
// matches the source system exactly and is not a bug to silently fix
// (see design notes on shift end-time wrap).
const CanonicalShiftHours = 8

// Shift is a named time-of-day window that a clinic may need staffed.
type Shift struct {
	ID        int
	Name      string
	StartTime time.Time // only the time-of-day component is meaningful
	EndTime   time.Time

	// IsNight is computed once from Name at construction time; see
	// Clinic.Operates247 for the same pattern.
	IsNight bool
}

// NewShift builds a Shift and derives IsNight from its name.
func NewShift(id int, name string, start, end time.Time) Shift {
	return Shift{
		ID:        id,
		Name:      name,
		StartTime: start,
		EndTime:   end,
		IsNight:   strings.Contains(name, nightMarker),
	}
}

// StartDateTime combines the shift's start-of-day time with a calendar
// date to produce the instant a given occurrence of this shift begins.
func (s Shift) StartDateTime(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		s.StartTime.Hour(), s.StartTime.Minute(), s.StartTime.Second(), 0,
		date.Location(),
	)
}

// ShiftRequired implements the skip rule: a clinic that operates 24/7
// requires every shift; any other clinic skips shifts marked as night.
// The Initial Solution Builder and the Cost Function must both call this
// exact predicate — divergence would make the cost function permanently
// penalize correctly-skipped slots.
func ShiftRequired(clinic Clinic, shift Shift) bool {
	if clinic.Operates247 || strings.Contains(clinic.Name, roundTheClockMarker) {
		return true
	}
	return !shift.IsNight && !strings.Contains(shift.Name, nightMarker)
}
