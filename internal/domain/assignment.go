package domain

import "time"

// Assignment records that a specific doctor staffs a specific shift at a
// specific clinic on a specific date for a specific scheduling job. It is
// the flattened, persistence-facing projection of a State's assignment
// map — produced only at save time, never mutated by the solver itself.
type Assignment struct {
	ID       int
	JobID    int
	Date     time.Time
	DoctorID int
	ClinicID int
	ShiftID  int
}
