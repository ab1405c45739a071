package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/schedcu/optimizer/internal/domain"
)

// LeaveApprovalRepository implements repository.LeaveApprovalRepository
// for PostgreSQL.
type LeaveApprovalRepository struct {
	db querier
}

// NewLeaveApprovalRepository creates a new LeaveApprovalRepository.
func NewLeaveApprovalRepository(db querier) *LeaveApprovalRepository {
	return &LeaveApprovalRepository{db: db}
}

// Create inserts a new leave approval.
func (r *LeaveApprovalRepository) Create(ctx context.Context, leave *domain.LeaveApproval) error {
	query := `INSERT INTO leave_approvals (doctor_id, date) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, leave.DoctorID, leave.Date)
	if err != nil {
		return fmt.Errorf("failed to create leave approval: %w", err)
	}

	return nil
}

// GetByDateRange retrieves leave approvals whose date falls in [start,end]
// inclusive, the exact window the Context Store loads.
func (r *LeaveApprovalRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.LeaveApproval, error) {
	query := `
		SELECT doctor_id, date FROM leave_approvals
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, doctor_id
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave approvals: %w", err)
	}
	defer rows.Close()

	var leaves []domain.LeaveApproval
	for rows.Next() {
		var l domain.LeaveApproval
		if err := rows.Scan(&l.DoctorID, &l.Date); err != nil {
			return nil, fmt.Errorf("failed to scan leave approval: %w", err)
		}
		leaves = append(leaves, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave approvals: %w", err)
	}

	return leaves, nil
}

// GetByDoctor retrieves all leave approvals for a doctor.
func (r *LeaveApprovalRepository) GetByDoctor(ctx context.Context, doctorID int) ([]domain.LeaveApproval, error) {
	query := `SELECT doctor_id, date FROM leave_approvals WHERE doctor_id = $1 ORDER BY date`

	rows, err := r.db.QueryContext(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave approvals: %w", err)
	}
	defer rows.Close()

	var leaves []domain.LeaveApproval
	for rows.Next() {
		var l domain.LeaveApproval
		if err := rows.Scan(&l.DoctorID, &l.Date); err != nil {
			return nil, fmt.Errorf("failed to scan leave approval: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

// Delete removes a leave approval.
func (r *LeaveApprovalRepository) Delete(ctx context.Context, doctorID int, date time.Time) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leave_approvals WHERE doctor_id = $1 AND date = $2`, doctorID, date)
	if err != nil {
		return fmt.Errorf("failed to delete leave approval: %w", err)
	}

	return requireRowsAffected(result, "LeaveApproval", fmt.Sprintf("%d/%s", doctorID, date))
}

// Count returns the total number of leave approvals.
func (r *LeaveApprovalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leave_approvals`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave approvals: %w", err)
	}
	return count, nil
}
