package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedcu/optimizer/internal/domain"
)

func TestDoctorBuilder_DefaultsToMainWithoutHomeClinic(t *testing.T) {
	d := NewDoctorBuilder().Build()
	assert.Equal(t, domain.RoleMain, d.Role)
	assert.False(t, d.HasHomeClinic())
}

func TestDoctorBuilder_WithHomeClinicMakesSchedulable(t *testing.T) {
	d := NewDoctorBuilder().WithID(1).WithHomeClinic(5).WithRole(domain.RoleSub).Build()
	assert.True(t, d.HasHomeClinic())
	assert.Equal(t, 5, *d.HomeClinicID)
	assert.Equal(t, domain.RoleSub, d.Role)
}

func TestClinicBuilder_DerivesOperates247FromName(t *testing.T) {
	c := NewClinicBuilder().WithName("ER 24/7 Clinic").Build()
	assert.True(t, c.Operates247)
}

func TestShiftBuilder_DerivesNightFromName(t *testing.T) {
	s := NewShiftBuilder().WithName("Night Đêm").WithStartHour(22).Build()
	assert.True(t, s.IsNight)
}

func TestSchedulingJobBuilder_DefaultsToPendingSingleDay(t *testing.T) {
	j := NewSchedulingJobBuilder().Build()
	assert.Equal(t, domain.JobStatusPending, j.Status)
	assert.Equal(t, j.StartDate, j.EndDate)
}
