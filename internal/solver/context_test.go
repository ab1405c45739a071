package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/optimizer/internal/domain"
)

func TestNewContext_InsufficientInputs(t *testing.T) {
	start := date(2026, 1, 1)
	end := date(2026, 1, 1)

	_, err := NewContext(nil, []domain.Clinic{domain.NewClinic(1, "C", 1, 0)}, []domain.Shift{dayShift(1, "Day", 8)}, nil, nil, start, end)
	assert.ErrorIs(t, err, domain.ErrInsufficientInputs)
}

func TestNewContext_BadDateRange(t *testing.T) {
	doctors := []domain.Doctor{mainDoctor(1, 1, "A")}
	clinics := []domain.Clinic{domain.NewClinic(1, "C", 1, 0)}
	shifts := []domain.Shift{dayShift(1, "Day", 8)}

	_, err := NewContext(doctors, clinics, shifts, nil, nil, date(2026, 1, 2), date(2026, 1, 1))
	assert.ErrorIs(t, err, domain.ErrBadDateRange)
}

func TestNewContext_DoctorsByClinicDropsHomeless(t *testing.T) {
	homeless := domain.Doctor{ID: 2, Name: "Homeless", Role: domain.RoleMain}
	doctors := []domain.Doctor{mainDoctor(1, 1, "A"), homeless}
	clinics := []domain.Clinic{domain.NewClinic(1, "C", 1, 0)}
	shifts := []domain.Shift{dayShift(1, "Day", 8)}

	ctx, err := NewContext(doctors, clinics, shifts, nil, nil, date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)

	candidates := ctx.CandidatesFor(1, domain.RoleMain)
	assert.Equal(t, []int{1}, candidates)
}

func TestNewContext_LeaveWindowFiltering(t *testing.T) {
	doctors := []domain.Doctor{mainDoctor(1, 1, "A")}
	clinics := []domain.Clinic{domain.NewClinic(1, "C", 1, 0)}
	shifts := []domain.Shift{dayShift(1, "Day", 8)}
	leaves := []domain.LeaveApproval{{DoctorID: 1, Date: date(2026, 1, 1)}}

	ctx, err := NewContext(doctors, clinics, shifts, leaves, nil, date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)

	assert.True(t, ctx.OnLeave(1, date(2026, 1, 1)))
	assert.False(t, ctx.OnLeave(1, date(2026, 1, 2)))
}

func TestDateRange_Inclusive(t *testing.T) {
	doctors := []domain.Doctor{mainDoctor(1, 1, "A")}
	clinics := []domain.Clinic{domain.NewClinic(1, "C", 1, 0)}
	shifts := []domain.Shift{dayShift(1, "Day", 8)}

	ctx, err := NewContext(doctors, clinics, shifts, nil, nil, date(2026, 1, 1), date(2026, 1, 3))
	require.NoError(t, err)

	require.Len(t, ctx.Dates, 3)
	assert.True(t, ctx.Dates[0].Equal(date(2026, 1, 1)))
	assert.True(t, ctx.Dates[2].Equal(date(2026, 1, 3)))
}

func TestShiftRequired_NightSkipAndRoundTheClock(t *testing.T) {
	regular := domain.NewClinic(1, "Cardiology", 1, 0)
	roundTheClock := domain.NewClinic(2, "Emergency 24/7", 1, 0)
	night := dayShift(1, "Night Đêm", 22)
	morning := dayShift(2, "Morning", 8)

	doctors := []domain.Doctor{mainDoctor(1, 1, "A"), mainDoctor(2, 2, "B")}
	clinics := []domain.Clinic{regular, roundTheClock}
	shifts := []domain.Shift{night, morning}

	ctx, err := NewContext(doctors, clinics, shifts, nil, nil, date(2026, 1, 1), date(2026, 1, 1))
	require.NoError(t, err)

	assert.False(t, ctx.ShiftRequired(regular.ID, night.ID))
	assert.True(t, ctx.ShiftRequired(regular.ID, morning.ID))
	assert.True(t, ctx.ShiftRequired(roundTheClock.ID, night.ID))
	assert.True(t, ctx.ShiftRequired(roundTheClock.ID, morning.ID))
}
