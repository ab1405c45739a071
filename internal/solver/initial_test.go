package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/optimizer/internal/domain"
)

func TestBuildInitialState_StructuralCompleteness(t *testing.T) {
	cardiology := domain.NewClinic(1, "Cardiology", 1, 1)
	night := dayShift(1, "Night Đêm", 22)
	morning := dayShift(2, "Morning", 8)

	doctors := []domain.Doctor{
		mainDoctor(1, 1, "Main One"),
		subDoctor(2, 1, "Sub One"),
	}

	ctx, err := NewContext(doctors, []domain.Clinic{cardiology}, []domain.Shift{night, morning}, nil, nil, date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)

	state := BuildInitialState(ctx, rand.New(rand.NewSource(1)))

	morningKey := SlotKey{Date: date(2026, 1, 1), ClinicID: cardiology.ID, ShiftID: morning.ID}
	nightKey := SlotKey{Date: date(2026, 1, 1), ClinicID: cardiology.ID, ShiftID: night.ID}

	_, morningPresent := state.Assignments[morningKey]
	_, nightPresent := state.Assignments[nightKey]

	assert.True(t, morningPresent, "required slot must be keyed")
	assert.False(t, nightPresent, "skipped slot must be absent, not empty")
}

func TestBuildInitialState_HeadcountAndRoleFill(t *testing.T) {
	clinic := domain.NewClinic(1, "Oncology", 2, 1)
	shift := dayShift(1, "Day", 8)

	doctors := []domain.Doctor{
		mainDoctor(1, 1, "M1"),
		mainDoctor(2, 1, "M2"),
		mainDoctor(3, 1, "M3"),
		subDoctor(4, 1, "S1"),
	}

	ctx, err := NewContext(doctors, []domain.Clinic{clinic}, []domain.Shift{shift}, nil, nil, date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)

	state := BuildInitialState(ctx, rand.New(rand.NewSource(1)))
	key := SlotKey{Date: date(2026, 1, 1), ClinicID: clinic.ID, ShiftID: shift.ID}
	assigned := state.Assignments[key]

	main, sub := RoleCounts(ctx, key, assigned)
	assert.Equal(t, 2, main)
	assert.Equal(t, 1, sub)
	assert.Len(t, assigned, 3)
}

func TestBuildInitialState_ShortfallTakesWholePool(t *testing.T) {
	clinic := domain.NewClinic(1, "Neurology", 2, 0)
	shift := dayShift(1, "Day", 8)
	doctors := []domain.Doctor{mainDoctor(1, 1, "Only One")}

	ctx, err := NewContext(doctors, []domain.Clinic{clinic}, []domain.Shift{shift}, nil, nil, date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)

	state := BuildInitialState(ctx, rand.New(rand.NewSource(1)))
	key := SlotKey{Date: date(2026, 1, 1), ClinicID: clinic.ID, ShiftID: shift.ID}
	assert.Len(t, state.Assignments[key], 1)
}

func TestBuildInitialState_NoDuplicateDoctorsInSlot(t *testing.T) {
	clinic := domain.NewClinic(1, "Surgery", 3, 0)
	shift := dayShift(1, "Day", 8)
	doctors := []domain.Doctor{
		mainDoctor(1, 1, "M1"),
		mainDoctor(2, 1, "M2"),
		mainDoctor(3, 1, "M3"),
	}

	ctx, err := NewContext(doctors, []domain.Clinic{clinic}, []domain.Shift{shift}, nil, nil, date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)

	state := BuildInitialState(ctx, rand.New(rand.NewSource(7)))
	key := SlotKey{Date: date(2026, 1, 1), ClinicID: clinic.ID, ShiftID: shift.ID}

	seen := make(map[int]bool)
	for _, id := range state.Assignments[key] {
		assert.False(t, seen[id], "doctor %d appears twice in slot", id)
		seen[id] = true
	}
}
