// Package solver implements the scheduling core: the Context Store,
// Initial Solution Builder, Cost Function, Mutation Operator, and
// Annealer that together search for a low-penalty doctor-to-shift
// assignment over a date range.
package solver

import (
	"time"

	"github.com/schedcu/optimizer/internal/domain"
)

// Context is the immutable, indexed snapshot of one job's inputs. It is
// built once per job and never modified for the duration of the run;
// the only thing that changes during optimization is the State.
type Context struct {
	StartDate time.Time
	EndDate   time.Time
	Dates     []time.Time

	Doctors map[int]domain.Doctor
	Clinics map[int]domain.Clinic
	Shifts  map[int]domain.Shift

	// DoctorsByClinic indexes eligible doctors (those with a home
	// clinic) by clinic then role, for the Initial Solution Builder and
	// the Mutation Operator's candidate-pool lookup.
	DoctorsByClinic map[int]map[domain.Role][]int

	// Leaves is keyed by domain.NewLeaveKey(doctorID, date); presence
	// means the doctor must not be scheduled that date.
	Leaves map[domain.LeaveKey]bool

	// Preferences is keyed by (doctor, shift, day-of-week); see
	// domain.Preference for the "only negative scores count" note.
	Preferences map[domain.PreferenceKey]int
}

// NewContext builds a Context Store from the six inputs the External
// Interfaces §6 input loader returns. It fails with
// domain.ErrInsufficientInputs if doctors, clinics, or shifts is empty,
// and domain.ErrBadDateRange if end precedes start.
func NewContext(
	doctors []domain.Doctor,
	clinics []domain.Clinic,
	shifts []domain.Shift,
	leaves []domain.LeaveApproval,
	preferences []domain.Preference,
	start, end time.Time,
) (*Context, error) {
	if len(doctors) == 0 || len(clinics) == 0 || len(shifts) == 0 {
		return nil, domain.ErrInsufficientInputs
	}
	if end.Before(start) {
		return nil, domain.ErrBadDateRange
	}

	ctx := &Context{
		StartDate:       start,
		EndDate:         end,
		Dates:           dateRange(start, end),
		Doctors:         make(map[int]domain.Doctor, len(doctors)),
		Clinics:         make(map[int]domain.Clinic, len(clinics)),
		Shifts:          make(map[int]domain.Shift, len(shifts)),
		DoctorsByClinic: make(map[int]map[domain.Role][]int),
		Leaves:          make(map[domain.LeaveKey]bool, len(leaves)),
		Preferences:     make(map[domain.PreferenceKey]int, len(preferences)),
	}

	for _, d := range doctors {
		ctx.Doctors[d.ID] = d
		if !d.HasHomeClinic() {
			continue
		}
		clinicID := *d.HomeClinicID
		if ctx.DoctorsByClinic[clinicID] == nil {
			ctx.DoctorsByClinic[clinicID] = make(map[domain.Role][]int)
		}
		ctx.DoctorsByClinic[clinicID][d.Role] = append(ctx.DoctorsByClinic[clinicID][d.Role], d.ID)
	}

	for _, c := range clinics {
		ctx.Clinics[c.ID] = c
	}
	for _, s := range shifts {
		ctx.Shifts[s.ID] = s
	}
	for _, l := range leaves {
		ctx.Leaves[domain.NewLeaveKey(l.DoctorID, l.Date)] = true
	}
	for _, p := range preferences {
		key := domain.PreferenceKey{DoctorID: p.DoctorID, ShiftID: p.ShiftID, DayOfWeek: p.DayOfWeek}
		ctx.Preferences[key] = p.Score
	}

	return ctx, nil
}

// CandidatesFor returns the pool of doctor IDs eligible to staff role at
// a given clinic — the same pool both the Initial Solution Builder and
// the Mutation Operator draw from.
func (c *Context) CandidatesFor(clinicID int, role domain.Role) []int {
	byRole, ok := c.DoctorsByClinic[clinicID]
	if !ok {
		return nil
	}
	return byRole[role]
}

// ShiftRequired consults domain.ShiftRequired for the (clinic, shift)
// pair named by a slot's IDs, looking both up from the Context.
func (c *Context) ShiftRequired(clinicID, shiftID int) bool {
	clinic, ok := c.Clinics[clinicID]
	if !ok {
		return false
	}
	shift, ok := c.Shifts[shiftID]
	if !ok {
		return false
	}
	return domain.ShiftRequired(clinic, shift)
}

// OnLeave reports whether doctorID has approved leave on date.
func (c *Context) OnLeave(doctorID int, date time.Time) bool {
	return c.Leaves[domain.NewLeaveKey(doctorID, date)]
}

// PreferenceScore returns the raw preference score for (doctor, shift,
// date's weekday), or 0 if none is recorded.
func (c *Context) PreferenceScore(doctorID, shiftID int, date time.Time) int {
	key := domain.PreferenceKey{DoctorID: doctorID, ShiftID: shiftID, DayOfWeek: int(date.Weekday())}
	return c.Preferences[key]
}

// dateRange expands [start, end] into the inclusive list of calendar
// days, normalized to midnight UTC so slot keys compare reliably.
func dateRange(start, end time.Time) []time.Time {
	sy, sm, sd := start.Date()
	start = time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	ey, em, ed := end.Date()
	end = time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
