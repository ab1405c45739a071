package domain

import "strings"

// nightMarker and roundTheClockMarker drive the shift-needed rule by
// name-substring, per the source system. They are consulted as a
// fallback when a Clinic/Shift doesn't carry the explicit boolean field.
const (
	roundTheClockMarker = "24/7"
	nightMarker         = "Đêm"
)

// Clinic is a staffing unit with per-role headcount requirements.
type Clinic struct {
	ID           int
	Name         string
	RequiredMain int
	RequiredSub  int

	// Operates247 is computed once from Name at construction time and
	// cached; ShiftRequired consults it before falling back to the
	// substring check, so a caller that sets this to true explicitly
	// marks the clinic 24/7 whatever its name. A false value does not
	// override a name that carries the marker.
	Operates247 bool
}

// NewClinic builds a Clinic and derives Operates247 from its name.
func NewClinic(id int, name string, requiredMain, requiredSub int) Clinic {
	return Clinic{
		ID:           id,
		Name:         name,
		RequiredMain: requiredMain,
		RequiredSub:  requiredSub,
		Operates247:  strings.Contains(name, roundTheClockMarker),
	}
}

// RequiredForRole returns the clinic's headcount requirement for a role.
func (c Clinic) RequiredForRole(role Role) int {
	if role == RoleMain {
		return c.RequiredMain
	}
	return c.RequiredSub
}
