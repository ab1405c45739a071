package solver

import (
	"math/rand"
	"time"
)

// Move records one mutation's effect so a rejected proposal can be
// undone without re-cloning the whole state, per the design notes'
// undo-over-snapshot guidance. A Move with NoOp set means the call
// picked an empty slot or a redundant replacement and changed nothing.
type Move struct {
	NoOp  bool
	Slot  SlotKey
	Index int
	OutID int
	InID  int
}

// Undo reverts the move on state, restoring OutID at Index in Slot. It
// is a no-op if the move itself was a no-op.
func (m Move) Undo(state *State) {
	if m.NoOp {
		return
	}
	state.Assignments[m.Slot][m.Index] = m.OutID
}

// Mutate proposes one local neighborhood move: it picks a random date,
// clinic, and one of the shifts actually present at that slot (never a
// shift absent under the skip rule), then swaps one assigned doctor for
// another eligible doctor from the same home-clinic role pool. It
// mutates state in place and returns the Move so the caller can revert
// it on rejection.
//
// The swap never changes a slot's headcount or role composition: the
// replacement is always drawn from the same role pool as the doctor it
// replaces, which is exactly what keeps invariants 2 and 3 of the
// testable properties intact under arbitrary mutation sequences.
func Mutate(ctx *Context, state *State, rng *rand.Rand) Move {
	if len(ctx.Dates) == 0 || len(ctx.Clinics) == 0 {
		return Move{NoOp: true}
	}

	date := ctx.Dates[rng.Intn(len(ctx.Dates))]
	clinicID := randomClinicID(ctx, rng)

	shiftID, ok := randomPresentShift(state, date, clinicID, rng)
	if !ok {
		return Move{NoOp: true}
	}

	slot := SlotKey{Date: date, ClinicID: clinicID, ShiftID: shiftID}
	doctors := state.Assignments[slot]
	if len(doctors) == 0 {
		return Move{NoOp: true}
	}

	outIndex := rng.Intn(len(doctors))
	outID := doctors[outIndex]

	outDoctor, ok := ctx.Doctors[outID]
	if !ok {
		return Move{NoOp: true}
	}

	// The pool is the outgoing doctor's home-clinic role pool. Since
	// BuildInitialState only places doctors at their home clinic, this is
	// the same pool as the slot's clinic.
	if !outDoctor.HasHomeClinic() {
		return Move{NoOp: true}
	}
	pool := ctx.CandidatesFor(*outDoctor.HomeClinicID, outDoctor.Role)
	if len(pool) == 0 {
		return Move{NoOp: true}
	}

	inID := pool[rng.Intn(len(pool))]
	if alreadyInSlot(doctors, inID) {
		return Move{NoOp: true}
	}

	doctors[outIndex] = inID

	return Move{Slot: slot, Index: outIndex, OutID: outID, InID: inID}
}

func randomClinicID(ctx *Context, rng *rand.Rand) int {
	ids := make([]int, 0, len(ctx.Clinics))
	for id := range ctx.Clinics {
		ids = append(ids, id)
	}
	return ids[rng.Intn(len(ids))]
}

// randomPresentShift picks uniformly among the shifts actually keyed at
// (date, clinicID) in state — never from the full shift catalog, so the
// skip rule is respected by construction.
func randomPresentShift(state *State, date time.Time, clinicID int, rng *rand.Rand) (int, bool) {
	var present []int
	for key := range state.Assignments {
		if key.Date.Equal(date) && key.ClinicID == clinicID {
			present = append(present, key.ShiftID)
		}
	}
	if len(present) == 0 {
		return 0, false
	}
	return present[rng.Intn(len(present))], true
}

func alreadyInSlot(doctors []int, candidateID int) bool {
	for _, id := range doctors {
		if id == candidateID {
			return true
		}
	}
	return false
}
