package validation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository/memory"
)

func TestPreflightJob_ErrorsOnEmptyDatabase(t *testing.T) {
	db := memory.NewDatabase()

	result := PreflightJob(context.Background(), db)

	assert.True(t, result.HasErrors())
	assert.NotEmpty(t, result.MessagesByCode(CodeNoDoctors))
	assert.NotEmpty(t, result.MessagesByCode(CodeNoClinics))
	assert.NotEmpty(t, result.MessagesByCode(CodeNoShifts))
}

func TestPreflightJob_PassesWithMinimalData(t *testing.T) {
	db := memory.NewDatabase()
	ctx := context.Background()

	clinic := domain.NewClinic(0, "Main Clinic", 1, 0)
	require.NoError(t, db.ClinicRepository().Create(ctx, &clinic))

	homeClinicID := clinic.ID
	doctor := &domain.Doctor{Name: "Dr. Default", Role: domain.RoleMain, HomeClinicID: &homeClinicID}
	require.NoError(t, db.DoctorRepository().Create(ctx, doctor))

	start := time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC)
	shift := domain.NewShift(0, "Day Shift", start, start.Add(8*time.Hour))
	require.NoError(t, db.ShiftRepository().Create(ctx, &shift))

	result := PreflightJob(ctx, db)

	assert.False(t, result.HasErrors())
	assert.False(t, result.HasWarnings())
}

func TestPreflightJob_WarnsOnDoctorWithNoHomeClinic(t *testing.T) {
	db := memory.NewDatabase()
	ctx := context.Background()

	clinic := domain.NewClinic(0, "Main Clinic", 1, 0)
	require.NoError(t, db.ClinicRepository().Create(ctx, &clinic))

	homeClinicID := clinic.ID
	homed := &domain.Doctor{Name: "Dr. Homed", Role: domain.RoleMain, HomeClinicID: &homeClinicID}
	homeless := &domain.Doctor{Name: "Dr. Homeless", Role: domain.RoleMain}
	require.NoError(t, db.DoctorRepository().Create(ctx, homed))
	require.NoError(t, db.DoctorRepository().Create(ctx, homeless))

	start := time.Date(2000, 1, 1, 8, 0, 0, 0, time.UTC)
	shift := domain.NewShift(0, "Day Shift", start, start.Add(8*time.Hour))
	require.NoError(t, db.ShiftRepository().Create(ctx, &shift))

	result := PreflightJob(ctx, db)

	assert.False(t, result.HasErrors())
	assert.True(t, result.HasWarnings())
	assert.NotEmpty(t, result.MessagesByCode(CodeDoctorNoHomeClinic))
}

func TestPreflightDateRange_ErrorsWhenEndBeforeStart(t *testing.T) {
	result := PreflightDateRange(false, 7)
	assert.True(t, result.HasErrors())
	assert.NotEmpty(t, result.MessagesByCode(CodeInvalidDateRange))
}

func TestPreflightDateRange_WarnsOnOverlongWindow(t *testing.T) {
	result := PreflightDateRange(true, 400)
	assert.False(t, result.HasErrors())
	assert.True(t, result.HasWarnings())
	assert.NotEmpty(t, result.MessagesByCode(CodeWindowTooLarge))
}

func TestPreflightDateRange_CleanForOrdinaryWindow(t *testing.T) {
	result := PreflightDateRange(true, 7)
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasWarnings())
}
