package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/optimizer/internal/domain"
)

func buildMutationFixture(t *testing.T) (*Context, *State) {
	t.Helper()

	clinic := domain.NewClinic(1, "Pediatrics", 2, 1)
	shift := dayShift(1, "Day", 8)
	doctors := []domain.Doctor{
		mainDoctor(1, 1, "M1"),
		mainDoctor(2, 1, "M2"),
		mainDoctor(3, 1, "M3"),
		subDoctor(4, 1, "S1"),
		subDoctor(5, 1, "S2"),
	}

	ctx, err := NewContext(doctors, []domain.Clinic{clinic}, []domain.Shift{shift}, nil, nil, date(2026, 1, 1), date(2026, 1, 3))
	require.NoError(t, err)

	state := BuildInitialState(ctx, rand.New(rand.NewSource(3)))
	return ctx, state
}

func TestMutate_PreservesHeadcountAndRole(t *testing.T) {
	ctx, state := buildMutationFixture(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		Mutate(ctx, state, rng)

		for key, doctors := range state.Assignments {
			clinic := ctx.Clinics[key.ClinicID]
			assert.LessOrEqual(t, len(doctors), clinic.RequiredMain+clinic.RequiredSub)

			main, sub := RoleCounts(ctx, key, doctors)
			assert.LessOrEqual(t, main, clinic.RequiredMain)
			assert.LessOrEqual(t, sub, clinic.RequiredSub)
		}
	}
}

func TestMutate_NeverProducesDuplicates(t *testing.T) {
	ctx, state := buildMutationFixture(t)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 500; i++ {
		Mutate(ctx, state, rng)

		for _, doctors := range state.Assignments {
			seen := make(map[int]bool)
			for _, id := range doctors {
				assert.False(t, seen[id])
				seen[id] = true
			}
		}
	}
}

func TestMutate_NeverAddsOrRemovesSlotKeys(t *testing.T) {
	ctx, state := buildMutationFixture(t)
	originalKeys := make(map[SlotKey]bool, len(state.Assignments))
	for k := range state.Assignments {
		originalKeys[k] = true
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		Mutate(ctx, state, rng)
	}

	assert.Len(t, state.Assignments, len(originalKeys))
	for k := range state.Assignments {
		assert.True(t, originalKeys[k])
	}
}

func TestMove_UndoRestoresOutDoctor(t *testing.T) {
	ctx, state := buildMutationFixture(t)
	rng := rand.New(rand.NewSource(5))

	before := state.Clone()
	move := Mutate(ctx, state, rng)
	if move.NoOp {
		return
	}

	move.Undo(state)
	assert.Equal(t, before.Assignments[move.Slot], state.Assignments[move.Slot])
}
