package postgres

import (
	"context"
	"fmt"

	"github.com/schedcu/optimizer/internal/domain"
)

// PreferenceRepository implements repository.PreferenceRepository for
// PostgreSQL.
type PreferenceRepository struct {
	db querier
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db querier) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Create inserts a new preference.
func (r *PreferenceRepository) Create(ctx context.Context, pref *domain.Preference) error {
	query := `
		INSERT INTO preferences (doctor_id, shift_id, day_of_week, score)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, pref.DoctorID, pref.ShiftID, pref.DayOfWeek, pref.Score)
	if err != nil {
		return fmt.Errorf("failed to create preference: %w", err)
	}

	return nil
}

// GetAll retrieves every preference regardless of date, per §6 of the
// scheduling core spec.
func (r *PreferenceRepository) GetAll(ctx context.Context) ([]domain.Preference, error) {
	query := `SELECT doctor_id, shift_id, day_of_week, score FROM preferences`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.Preference
	for rows.Next() {
		var p domain.Preference
		if err := rows.Scan(&p.DoctorID, &p.ShiftID, &p.DayOfWeek, &p.Score); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}

	return prefs, rows.Err()
}

// GetByDoctor retrieves every preference for one doctor.
func (r *PreferenceRepository) GetByDoctor(ctx context.Context, doctorID int) ([]domain.Preference, error) {
	query := `SELECT doctor_id, shift_id, day_of_week, score FROM preferences WHERE doctor_id = $1`

	rows, err := r.db.QueryContext(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.Preference
	for rows.Next() {
		var p domain.Preference
		if err := rows.Scan(&p.DoctorID, &p.ShiftID, &p.DayOfWeek, &p.Score); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}

	return prefs, rows.Err()
}

// Delete removes a preference.
func (r *PreferenceRepository) Delete(ctx context.Context, doctorID, shiftID, dayOfWeek int) error {
	query := `DELETE FROM preferences WHERE doctor_id = $1 AND shift_id = $2 AND day_of_week = $3`

	result, err := r.db.ExecContext(ctx, query, doctorID, shiftID, dayOfWeek)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}

	return requireRowsAffected(result, "Preference", fmt.Sprintf("%d/%d/%d", doctorID, shiftID, dayOfWeek))
}

// Count returns the total number of preferences.
func (r *PreferenceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM preferences`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count preferences: %w", err)
	}
	return count, nil
}
