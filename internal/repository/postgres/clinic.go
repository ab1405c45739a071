package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// ClinicRepository implements repository.ClinicRepository for PostgreSQL.
type ClinicRepository struct {
	db querier
}

// NewClinicRepository creates a new ClinicRepository.
func NewClinicRepository(db querier) *ClinicRepository {
	return &ClinicRepository{db: db}
}

// Create inserts a new clinic.
func (r *ClinicRepository) Create(ctx context.Context, clinic *domain.Clinic) error {
	query := `
		INSERT INTO clinics (name, required_main, required_sub)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, clinic.Name, clinic.RequiredMain, clinic.RequiredSub).Scan(&clinic.ID)
	if err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}

	return nil
}

// GetByID retrieves a clinic by ID.
func (r *ClinicRepository) GetByID(ctx context.Context, id int) (*domain.Clinic, error) {
	var name string
	var requiredMain, requiredSub int

	query := `SELECT id, name, required_main, required_sub FROM clinics WHERE id = $1`

	var gotID int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&gotID, &name, &requiredMain, &requiredSub)
	if err == sql.ErrNoRows {
		return nil, &repository.NotFoundError{ResourceType: "Clinic", ResourceID: fmt.Sprintf("%d", id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	clinic := domain.NewClinic(gotID, name, requiredMain, requiredSub)
	return &clinic, nil
}

// GetAll retrieves every clinic.
func (r *ClinicRepository) GetAll(ctx context.Context) ([]domain.Clinic, error) {
	query := `SELECT id, name, required_main, required_sub FROM clinics ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clinics: %w", err)
	}
	defer rows.Close()

	var clinics []domain.Clinic
	for rows.Next() {
		var id, requiredMain, requiredSub int
		var name string
		if err := rows.Scan(&id, &name, &requiredMain, &requiredSub); err != nil {
			return nil, fmt.Errorf("failed to scan clinic: %w", err)
		}
		clinics = append(clinics, domain.NewClinic(id, name, requiredMain, requiredSub))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clinics: %w", err)
	}

	return clinics, nil
}

// Update updates an existing clinic.
func (r *ClinicRepository) Update(ctx context.Context, clinic *domain.Clinic) error {
	query := `UPDATE clinics SET name = $2, required_main = $3, required_sub = $4 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, clinic.ID, clinic.Name, clinic.RequiredMain, clinic.RequiredSub)
	if err != nil {
		return fmt.Errorf("failed to update clinic: %w", err)
	}

	return requireRowsAffected(result, "Clinic", fmt.Sprintf("%d", clinic.ID))
}

// Delete removes a clinic.
func (r *ClinicRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clinics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete clinic: %w", err)
	}

	return requireRowsAffected(result, "Clinic", fmt.Sprintf("%d", id))
}

// Count returns the total number of clinics.
func (r *ClinicRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clinics`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clinics: %w", err)
	}
	return count, nil
}
