package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/schedcu/optimizer/internal/domain"
)

// AssignmentRepository implements repository.AssignmentRepository for
// PostgreSQL. It realizes spec.md §6 interface 2: the result writer
// deletes every prior assignment for a job, then inserts the new set,
// both inside the caller's transaction.
type AssignmentRepository struct {
	db querier
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db querier) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateBatch inserts every assignment in a single multi-row statement.
// Callers are expected to have already cleared prior rows for the job
// via DeleteByJobID in the same transaction.
func (r *AssignmentRepository) CreateBatch(ctx context.Context, assignments []domain.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO assignments (job_id, date, doctor_id, clinic_id, shift_id) VALUES ")

	args := make([]interface{}, 0, len(assignments)*5)
	for i, a := range assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 5
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5)
		args = append(args, a.JobID, a.Date, a.DoctorID, a.ClinicID, a.ShiftID)
	}

	if _, err := r.db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("failed to create assignment batch: %w", err)
	}

	return nil
}

// GetByJobID retrieves every assignment produced by a job.
func (r *AssignmentRepository) GetByJobID(ctx context.Context, jobID int) ([]domain.Assignment, error) {
	query := `
		SELECT id, job_id, date, doctor_id, clinic_id, shift_id
		FROM assignments WHERE job_id = $1
		ORDER BY date, clinic_id, shift_id
	`

	rows, err := r.db.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ID, &a.JobID, &a.Date, &a.DoctorID, &a.ClinicID, &a.ShiftID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// DeleteByJobID removes every assignment belonging to a job, returning
// the number of rows removed. A zero count is not an error: a job whose
// prior run produced no assignments (or has never run) has nothing to
// clear.
func (r *AssignmentRepository) DeleteByJobID(ctx context.Context, jobID int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE job_id = $1`, jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete assignments: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// Count returns the total number of assignments across all jobs.
func (r *AssignmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assignments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}
