package domain

import "errors"

// Domain-level sentinel errors, following the teacher's var-block
// convention for entity-level validation errors.
var (
	// ErrInsufficientInputs is returned when doctors, clinics, or shifts
	// is empty at Context Store construction time.
	ErrInsufficientInputs = errors.New("insufficient inputs: doctors, clinics, and shifts must all be non-empty")

	// ErrBadDateRange is returned when end date precedes start date.
	ErrBadDateRange = errors.New("bad date range: end date is before start date")

	// ErrJobNotPending describes a start attempted on a job that is not
	// currently PENDING. SchedulingService.Run does not return it: it
	// skips such a job and returns nil.
	ErrJobNotPending = errors.New("job is not pending")
)
