package solver

import (
	"time"

	"github.com/schedcu/optimizer/internal/domain"
)

// SlotKey identifies one (date, clinic, shift) staffing slot. The set of
// SlotKeys present in a State is fixed after the initial build; only the
// doctor lists behind them are ever rewritten.
type SlotKey struct {
	Date     time.Time
	ClinicID int
	ShiftID  int
}

// State is the assignment map the annealer searches over: for every
// required slot, the ordered list of doctor IDs currently staffing it.
// A slot key that does not satisfy domain.ShiftRequired must never
// appear here — its absence, not an empty list, is how the skip rule is
// represented.
type State struct {
	Assignments map[SlotKey][]int
}

// NewState creates an empty State.
func NewState() *State {
	return &State{Assignments: make(map[SlotKey][]int)}
}

// Clone produces a deep copy. The annealer's hot loop avoids this in
// favor of move/undo, but it is useful for tests and for the Annealer's
// best-state snapshot.
func (s *State) Clone() *State {
	clone := &State{Assignments: make(map[SlotKey][]int, len(s.Assignments))}
	for k, doctors := range s.Assignments {
		cp := make([]int, len(doctors))
		copy(cp, doctors)
		clone.Assignments[k] = cp
	}
	return clone
}

// SlotCount returns the number of doctors assigned at key, or zero if
// the slot is not present in the state.
func (s *State) SlotCount(key SlotKey) int {
	return len(s.Assignments[key])
}

// RoleCounts tallies how many of the doctors in a slot hold each role,
// given the clinic's full doctor directory. It is used by tests
// asserting the role-preservation invariant; the mutation operator
// itself never needs to recompute this since it swaps within a role.
func RoleCounts(ctx *Context, key SlotKey, doctorIDs []int) (main, sub int) {
	for _, id := range doctorIDs {
		d, ok := ctx.Doctors[id]
		if !ok {
			continue
		}
		if d.Role == domain.RoleMain {
			main++
		} else {
			sub++
		}
	}
	return main, sub
}
