// Package helpers provides builder-pattern test fixtures for domain
// types, following the teacher's builder convention (fluent With*
// methods over a struct literal) scaled down to this domain's entities.
package helpers

import (
	"time"

	"github.com/schedcu/optimizer/internal/domain"
)

// DoctorBuilder builds a domain.Doctor with sensible defaults.
type DoctorBuilder struct {
	doctor domain.Doctor
}

// NewDoctorBuilder returns a builder for a MAIN doctor with no home
// clinic set — callers needing a schedulable doctor must call
// WithHomeClinic.
func NewDoctorBuilder() *DoctorBuilder {
	return &DoctorBuilder{doctor: domain.Doctor{Name: "Dr. Default", Role: domain.RoleMain}}
}

func (b *DoctorBuilder) WithID(id int) *DoctorBuilder {
	b.doctor.ID = id
	return b
}

func (b *DoctorBuilder) WithName(name string) *DoctorBuilder {
	b.doctor.Name = name
	return b
}

func (b *DoctorBuilder) WithRole(role domain.Role) *DoctorBuilder {
	b.doctor.Role = role
	return b
}

func (b *DoctorBuilder) WithHomeClinic(clinicID int) *DoctorBuilder {
	b.doctor.HomeClinicID = &clinicID
	return b
}

func (b *DoctorBuilder) Build() domain.Doctor {
	return b.doctor
}

// ClinicBuilder builds a domain.Clinic with sensible defaults.
type ClinicBuilder struct {
	id, requiredMain, requiredSub int
	name                          string
}

// NewClinicBuilder returns a builder for a clinic needing one MAIN
// doctor and no SUB doctors.
func NewClinicBuilder() *ClinicBuilder {
	return &ClinicBuilder{name: "Default Clinic", requiredMain: 1}
}

func (b *ClinicBuilder) WithID(id int) *ClinicBuilder {
	b.id = id
	return b
}

func (b *ClinicBuilder) WithName(name string) *ClinicBuilder {
	b.name = name
	return b
}

func (b *ClinicBuilder) WithRequiredMain(n int) *ClinicBuilder {
	b.requiredMain = n
	return b
}

func (b *ClinicBuilder) WithRequiredSub(n int) *ClinicBuilder {
	b.requiredSub = n
	return b
}

func (b *ClinicBuilder) Build() domain.Clinic {
	return domain.NewClinic(b.id, b.name, b.requiredMain, b.requiredSub)
}

// ShiftBuilder builds a domain.Shift with sensible defaults.
type ShiftBuilder struct {
	id            int
	name          string
	startHour     int
	durationHours int
}

// NewShiftBuilder returns a builder for an 8-hour shift starting at 08:00.
func NewShiftBuilder() *ShiftBuilder {
	return &ShiftBuilder{name: "Day Shift", startHour: 8, durationHours: 8}
}

func (b *ShiftBuilder) WithID(id int) *ShiftBuilder {
	b.id = id
	return b
}

func (b *ShiftBuilder) WithName(name string) *ShiftBuilder {
	b.name = name
	return b
}

func (b *ShiftBuilder) WithStartHour(hour int) *ShiftBuilder {
	b.startHour = hour
	return b
}

func (b *ShiftBuilder) Build() domain.Shift {
	start := time.Date(2000, 1, 1, b.startHour, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(b.durationHours) * time.Hour)
	return domain.NewShift(b.id, b.name, start, end)
}

// SchedulingJobBuilder builds a domain.SchedulingJob with sensible
// defaults: a single-day PENDING job.
type SchedulingJobBuilder struct {
	job domain.SchedulingJob
}

func NewSchedulingJobBuilder() *SchedulingJobBuilder {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &SchedulingJobBuilder{job: domain.SchedulingJob{
		Name:      "Test Job",
		StartDate: day,
		EndDate:   day,
		Status:    domain.JobStatusPending,
	}}
}

func (b *SchedulingJobBuilder) WithDateRange(start, end time.Time) *SchedulingJobBuilder {
	b.job.StartDate = start
	b.job.EndDate = end
	return b
}

func (b *SchedulingJobBuilder) WithStatus(status domain.JobStatus) *SchedulingJobBuilder {
	b.job.Status = status
	return b
}

func (b *SchedulingJobBuilder) WithName(name string) *SchedulingJobBuilder {
	b.job.Name = name
	return b
}

func (b *SchedulingJobBuilder) Build() domain.SchedulingJob {
	return b.job
}
