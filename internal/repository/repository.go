// Package repository defines the persistence contracts the scheduling
// core consumes. Concrete implementations live in the memory and
// postgres subpackages; the solver and service layers depend only on
// these interfaces.
package repository

import (
	"context"
	"time"

	"github.com/schedcu/optimizer/internal/domain"
)

// Database provides access to all repositories plus transaction and
// connection management, mirroring the teacher's Database/Transaction
// split so the save phase of a job run can be wrapped in one atomic
// transaction.
type Database interface {
	BeginTx(ctx context.Context) (Transaction, error)

	DoctorRepository() DoctorRepository
	ClinicRepository() ClinicRepository
	ShiftRepository() ShiftRepository
	LeaveApprovalRepository() LeaveApprovalRepository
	PreferenceRepository() PreferenceRepository
	SchedulingJobRepository() SchedulingJobRepository
	AssignmentRepository() AssignmentRepository

	Close() error
	Health(ctx context.Context) error
}

// Transaction is a single unit-of-work scoped view of the same
// repositories exposed by Database.
type Transaction interface {
	Commit() error
	Rollback() error

	SchedulingJobRepository() SchedulingJobRepository
	AssignmentRepository() AssignmentRepository
}

// DoctorRepository defines data access operations for doctors.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	GetByID(ctx context.Context, id int) (*domain.Doctor, error)
	GetAll(ctx context.Context) ([]domain.Doctor, error)
	Update(ctx context.Context, doctor *domain.Doctor) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

// ClinicRepository defines data access operations for clinics.
type ClinicRepository interface {
	Create(ctx context.Context, clinic *domain.Clinic) error
	GetByID(ctx context.Context, id int) (*domain.Clinic, error)
	GetAll(ctx context.Context) ([]domain.Clinic, error)
	Update(ctx context.Context, clinic *domain.Clinic) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

// ShiftRepository defines data access operations for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	GetByID(ctx context.Context, id int) (*domain.Shift, error)
	GetAll(ctx context.Context) ([]domain.Shift, error)
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

// LeaveApprovalRepository defines data access operations for approved
// leave within a date window.
type LeaveApprovalRepository interface {
	Create(ctx context.Context, leave *domain.LeaveApproval) error
	GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.LeaveApproval, error)
	GetByDoctor(ctx context.Context, doctorID int) ([]domain.LeaveApproval, error)
	Delete(ctx context.Context, doctorID int, date time.Time) error
	Count(ctx context.Context) (int64, error)
}

// PreferenceRepository defines data access operations for schedule
// preferences. All preferences are loaded regardless of date (§6 of the
// scheduling core spec).
type PreferenceRepository interface {
	Create(ctx context.Context, pref *domain.Preference) error
	GetAll(ctx context.Context) ([]domain.Preference, error)
	GetByDoctor(ctx context.Context, doctorID int) ([]domain.Preference, error)
	Delete(ctx context.Context, doctorID, shiftID, dayOfWeek int) error
	Count(ctx context.Context) (int64, error)
}

// SchedulingJobRepository defines data access operations for scheduling
// jobs, including the lifecycle status channel the Job Coordinator
// drives.
type SchedulingJobRepository interface {
	Create(ctx context.Context, job *domain.SchedulingJob) error
	GetByID(ctx context.Context, id int) (*domain.SchedulingJob, error)
	GetAll(ctx context.Context) ([]domain.SchedulingJob, error)
	Update(ctx context.Context, job *domain.SchedulingJob) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int64, error)
}

// AssignmentRepository defines data access operations for assignments,
// including the atomic delete-then-insert the result writer requires.
type AssignmentRepository interface {
	CreateBatch(ctx context.Context, assignments []domain.Assignment) error
	GetByJobID(ctx context.Context, jobID int) ([]domain.Assignment, error)
	DeleteByJobID(ctx context.Context, jobID int) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// NotFoundError represents a record-not-found condition, mirroring the
// teacher's repository.NotFoundError.
type NotFoundError struct {
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.ResourceType + " " + e.ResourceID
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// ValidationError represents a repository-level validation failure.
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
