package solver

import (
	"math/rand"

	"github.com/schedcu/optimizer/internal/domain"
)

// BuildInitialState produces a structurally-complete starting State:
// every (date, clinic, shift) slot for which domain.ShiftRequired holds
// gets keyed, and filled with clinic.RequiredMain MAIN doctors followed
// by clinic.RequiredSub SUB doctors, drawn uniformly without
// replacement from the clinic's home-roster candidate pools. A pool
// smaller than its requirement is taken in full — the resulting
// shortfall is a structural defect the Cost Function penalizes, not an
// error here.
//
// Leave approvals and labor-law rest rules are deliberately ignored:
// resolving them is the Annealer's job.
func BuildInitialState(ctx *Context, rng *rand.Rand) *State {
	state := NewState()

	for _, date := range ctx.Dates {
		for _, clinic := range ctx.Clinics {
			for _, shift := range ctx.Shifts {
				if !domain.ShiftRequired(clinic, shift) {
					continue
				}

				key := SlotKey{Date: date, ClinicID: clinic.ID, ShiftID: shift.ID}
				doctors := drawDoctors(ctx, clinic, rng)
				state.Assignments[key] = doctors
			}
		}
	}

	return state
}

// drawDoctors samples clinic.RequiredMain MAIN doctors and
// clinic.RequiredSub SUB doctors without replacement from the clinic's
// candidate pools, taking the whole pool when it falls short.
func drawDoctors(ctx *Context, clinic domain.Clinic, rng *rand.Rand) []int {
	var doctors []int
	doctors = append(doctors, sampleWithoutReplacement(ctx.CandidatesFor(clinic.ID, domain.RoleMain), clinic.RequiredMain, rng)...)
	doctors = append(doctors, sampleWithoutReplacement(ctx.CandidatesFor(clinic.ID, domain.RoleSub), clinic.RequiredSub, rng)...)
	return doctors
}

// sampleWithoutReplacement picks min(n, len(pool)) distinct elements
// from pool uniformly at random, leaving pool itself untouched.
func sampleWithoutReplacement(pool []int, n int, rng *rand.Rand) []int {
	if n <= 0 || len(pool) == 0 {
		return nil
	}

	shuffled := make([]int, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
