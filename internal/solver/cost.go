package solver

import (
	"sort"
	"time"

	"github.com/schedcu/optimizer/internal/domain"
)

// Penalty weights. Hard constraints (leave violations, headcount
// shortfall, overtime, insufficient rest) are weighted far above soft
// preference penalties so the search always resolves hard violations
// first.
const (
	WHard = 10_000
	WSoft = 10
)

// Breakdown counts how many times each violation category fired during
// the most recent Energy call. It exists purely for reporting — the SA
// loop only consumes the scalar energy.
type Breakdown struct {
	MissingStaff  int
	Over48h       int
	BadRest       int
	PreferenceBad int
}

// Evaluator computes State energy against a Context. It holds the
// breakdown from its own last evaluation as a side product; callers
// that need contemporaneous breakdown and energy should read Last
// immediately after calling Energy, before any concurrent use (the
// Annealer never evaluates concurrently, per its single-threaded
// contract).
//
// WHard and WSoft override the package-level default weights when
// nonzero; a zero-value Evaluator (as every existing caller that
// doesn't care about configurable weights constructs) falls back to
// the WHard/WSoft constants, so this is backward compatible.
type Evaluator struct {
	Last Breakdown

	WHard float64
	WSoft float64
}

// weights returns the effective hard/soft penalty weights, falling back
// to the package defaults when the Evaluator wasn't given explicit
// ones.
func (e *Evaluator) weights() (wHard, wSoft float64) {
	wHard, wSoft = e.WHard, e.WSoft
	if wHard == 0 {
		wHard = WHard
	}
	if wSoft == 0 {
		wSoft = WSoft
	}
	return wHard, wSoft
}

// historyEntry is one occurrence of a doctor working a shift, used to
// evaluate the per-doctor overtime and rest-interval rules.
type historyEntry struct {
	start time.Time
	date  time.Time
}

// Energy is a pure function of (state, context): it returns the
// nonnegative scalar the Annealer minimizes. Lower is better; zero
// means every hard and soft constraint is satisfied.
func (e *Evaluator) Energy(ctx *Context, state *State) float64 {
	wHard, wSoft := e.weights()

	var energy float64
	breakdown := Breakdown{}
	histories := make(map[int][]historyEntry)

	for key, doctorIDs := range state.Assignments {
		clinic, ok := ctx.Clinics[key.ClinicID]
		if !ok {
			continue
		}
		shift, ok := ctx.Shifts[key.ShiftID]
		if !ok {
			continue
		}
		if !domain.ShiftRequired(clinic, shift) {
			continue
		}

		var countMain, countSub int
		for _, doctorID := range doctorIDs {
			doctor, ok := ctx.Doctors[doctorID]
			if ok {
				if doctor.Role == domain.RoleMain {
					countMain++
				} else {
					countSub++
				}
			}

			histories[doctorID] = append(histories[doctorID], historyEntry{
				start: shift.StartDateTime(key.Date),
				date:  key.Date,
			})

			if ctx.OnLeave(doctorID, key.Date) {
				energy += wHard
			}
			// Only negative scores count; a positive preference earns no
			// reward. The asymmetry is deliberate.
			if score := ctx.PreferenceScore(doctorID, key.ShiftID, key.Date); score < 0 {
				energy += float64(-score) * wSoft
				breakdown.PreferenceBad++
			}
		}

		if shortfall := clinic.RequiredMain - countMain; shortfall > 0 {
			energy += float64(shortfall) * wHard
			breakdown.MissingStaff++
		}
		if shortfall := clinic.RequiredSub - countSub; shortfall > 0 {
			energy += float64(shortfall) * wHard
			breakdown.MissingStaff++
		}
	}

	for _, history := range histories {
		sort.Slice(history, func(i, j int) bool { return history[i].start.Before(history[j].start) })

		totalHours := float64(len(history)) * domain.CanonicalShiftHours
		if totalHours > 48 {
			energy += (totalHours - 48) * wHard
			breakdown.Over48h++
		}

		for i := 0; i+1 < len(history); i++ {
			curr, next := history[i], history[i+1]
			currEnd := curr.start.Add(domain.CanonicalShiftHours * time.Hour)
			rest := next.start.Sub(currEnd).Hours()

			if rest < 12 {
				energy += wHard
				breakdown.BadRest++
			}
			if curr.date.Equal(next.date) {
				energy += 2 * wHard
				breakdown.BadRest++
			}
		}
	}

	e.Last = breakdown
	return energy
}
