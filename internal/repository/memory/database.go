// Package memory implements repository.Database entirely in process
// memory, the teacher's pattern for fast unit tests that exercise
// repository-consuming code without a live PostgreSQL instance.
package memory

import (
	"context"

	"github.com/schedcu/optimizer/internal/repository"
)

// Database wires together every in-memory repository and satisfies
// repository.Database.
type Database struct {
	doctorRepo     *DoctorRepository
	clinicRepo     *ClinicRepository
	shiftRepo      *ShiftRepository
	leaveRepo      *LeaveApprovalRepository
	prefRepo       *PreferenceRepository
	jobRepo        *SchedulingJobRepository
	assignmentRepo *AssignmentRepository
}

// NewDatabase creates a new empty in-memory database.
func NewDatabase() *Database {
	return &Database{
		doctorRepo:     NewDoctorRepository(),
		clinicRepo:     NewClinicRepository(),
		shiftRepo:      NewShiftRepository(),
		leaveRepo:      NewLeaveApprovalRepository(),
		prefRepo:       NewPreferenceRepository(),
		jobRepo:        NewSchedulingJobRepository(),
		assignmentRepo: NewAssignmentRepository(),
	}
}

func (d *Database) DoctorRepository() repository.DoctorRepository { return d.doctorRepo }
func (d *Database) ClinicRepository() repository.ClinicRepository { return d.clinicRepo }
func (d *Database) ShiftRepository() repository.ShiftRepository   { return d.shiftRepo }
func (d *Database) LeaveApprovalRepository() repository.LeaveApprovalRepository {
	return d.leaveRepo
}
func (d *Database) PreferenceRepository() repository.PreferenceRepository { return d.prefRepo }
func (d *Database) SchedulingJobRepository() repository.SchedulingJobRepository {
	return d.jobRepo
}
func (d *Database) AssignmentRepository() repository.AssignmentRepository { return d.assignmentRepo }

// BeginTx returns a Transaction view over the same job/assignment
// repositories. In-memory storage has no real rollback log, so Rollback
// is best-effort: it restores the pre-transaction snapshot captured at
// BeginTx time.
func (d *Database) BeginTx(ctx context.Context) (repository.Transaction, error) {
	return &Transaction{
		jobRepo:        d.jobRepo,
		assignmentRepo: d.assignmentRepo,
		jobSnapshot:    d.jobRepo.snapshot(),
		assignmentSnap: d.assignmentRepo.snapshot(),
	}, nil
}

// Close is a no-op; there is no connection to release.
func (d *Database) Close() error { return nil }

// Health always succeeds; the store is always reachable.
func (d *Database) Health(ctx context.Context) error { return nil }
