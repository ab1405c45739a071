package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// timeOfDayLayout is the wire format used to persist a Shift's
// time-of-day fields, which carry no meaningful date component.
const timeOfDayLayout = "15:04:05"

// ShiftRepository implements repository.ShiftRepository for PostgreSQL.
type ShiftRepository struct {
	db querier
}

// NewShiftRepository creates a new ShiftRepository.
func NewShiftRepository(db querier) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create inserts a new shift.
func (r *ShiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (name, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		shift.Name,
		shift.StartTime.Format(timeOfDayLayout),
		shift.EndTime.Format(timeOfDayLayout),
	).Scan(&shift.ID)
	if err != nil {
		return fmt.Errorf("failed to create shift: %w", err)
	}

	return nil
}

// GetByID retrieves a shift by ID.
func (r *ShiftRepository) GetByID(ctx context.Context, id int) (*domain.Shift, error) {
	var gotID int
	var name, start, end string

	query := `SELECT id, name, start_time, end_time FROM shifts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&gotID, &name, &start, &end)
	if err == sql.ErrNoRows {
		return nil, &repository.NotFoundError{ResourceType: "Shift", ResourceID: fmt.Sprintf("%d", id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	shift, err := buildShift(gotID, name, start, end)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves every shift.
func (r *ShiftRepository) GetAll(ctx context.Context) ([]domain.Shift, error) {
	query := `SELECT id, name, start_time, end_time FROM shifts ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []domain.Shift
	for rows.Next() {
		var id int
		var name, start, end string
		if err := rows.Scan(&id, &name, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shift, err := buildShift(id, name, start, end)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// Update updates an existing shift.
func (r *ShiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	query := `UPDATE shifts SET name = $2, start_time = $3, end_time = $4 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		shift.ID, shift.Name,
		shift.StartTime.Format(timeOfDayLayout),
		shift.EndTime.Format(timeOfDayLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}

	return requireRowsAffected(result, "Shift", fmt.Sprintf("%d", shift.ID))
}

// Delete removes a shift.
func (r *ShiftRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return requireRowsAffected(result, "Shift", fmt.Sprintf("%d", id))
}

// Count returns the total number of shifts.
func (r *ShiftRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shifts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count shifts: %w", err)
	}
	return count, nil
}

func buildShift(id int, name, start, end string) (domain.Shift, error) {
	startTime, err := time.Parse(timeOfDayLayout, start)
	if err != nil {
		return domain.Shift{}, fmt.Errorf("failed to parse shift start_time: %w", err)
	}
	endTime, err := time.Parse(timeOfDayLayout, end)
	if err != nil {
		return domain.Shift{}, fmt.Errorf("failed to parse shift end_time: %w", err)
	}
	return domain.NewShift(id, name, startTime, endTime), nil
}
