// Package postgres implements repository.Database against PostgreSQL
// using database/sql and github.com/lib/pq, following the teacher's
// one-file-per-aggregate layout.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/schedcu/optimizer/internal/repository"
)

// Database wraps a *sql.DB and exposes repository.Database.
type Database struct {
	db *sql.DB

	doctorRepo     *DoctorRepository
	clinicRepo     *ClinicRepository
	shiftRepo      *ShiftRepository
	leaveRepo      *LeaveApprovalRepository
	prefRepo       *PreferenceRepository
	jobRepo        *SchedulingJobRepository
	assignmentRepo *AssignmentRepository
}

// New opens a PostgreSQL connection and verifies it with a short-lived
// ping, matching the teacher's connection-on-construction convention.
func New(connString string) (*Database, error) {
	sqldb, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		db:             sqldb,
		doctorRepo:     NewDoctorRepository(sqldb),
		clinicRepo:     NewClinicRepository(sqldb),
		shiftRepo:      NewShiftRepository(sqldb),
		leaveRepo:      NewLeaveApprovalRepository(sqldb),
		prefRepo:       NewPreferenceRepository(sqldb),
		jobRepo:        NewSchedulingJobRepository(sqldb),
		assignmentRepo: NewAssignmentRepository(sqldb),
	}, nil
}

func (d *Database) DoctorRepository() repository.DoctorRepository          { return d.doctorRepo }
func (d *Database) ClinicRepository() repository.ClinicRepository          { return d.clinicRepo }
func (d *Database) ShiftRepository() repository.ShiftRepository            { return d.shiftRepo }
func (d *Database) LeaveApprovalRepository() repository.LeaveApprovalRepository {
	return d.leaveRepo
}
func (d *Database) PreferenceRepository() repository.PreferenceRepository { return d.prefRepo }
func (d *Database) SchedulingJobRepository() repository.SchedulingJobRepository {
	return d.jobRepo
}
func (d *Database) AssignmentRepository() repository.AssignmentRepository { return d.assignmentRepo }

// BeginTx starts a transaction scoped to the job/assignment repositories
// the save phase needs — the only two tables spec.md §4.F's result
// writer touches.
func (d *Database) BeginTx(ctx context.Context) (repository.Transaction, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &Transaction{
		tx:             tx,
		jobRepo:        NewSchedulingJobRepository(tx),
		assignmentRepo: NewAssignmentRepository(tx),
	}, nil
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	return d.db.Close()
}

// Health checks database connectivity.
func (d *Database) Health(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// querier is satisfied by both *sql.DB and *sql.Tx, letting every
// per-aggregate repository work unmodified inside or outside a
// transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Transaction implements repository.Transaction.
type Transaction struct {
	tx             *sql.Tx
	jobRepo        *SchedulingJobRepository
	assignmentRepo *AssignmentRepository
}

func (t *Transaction) Commit() error   { return t.tx.Commit() }
func (t *Transaction) Rollback() error { return t.tx.Rollback() }

func (t *Transaction) SchedulingJobRepository() repository.SchedulingJobRepository {
	return t.jobRepo
}
func (t *Transaction) AssignmentRepository() repository.AssignmentRepository {
	return t.assignmentRepo
}
