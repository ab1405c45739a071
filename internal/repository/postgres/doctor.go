package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// DoctorRepository implements repository.DoctorRepository for PostgreSQL.
type DoctorRepository struct {
	db querier
}

// NewDoctorRepository creates a new DoctorRepository.
func NewDoctorRepository(db querier) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// Create inserts a new doctor.
func (r *DoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	query := `
		INSERT INTO doctors (name, home_clinic_id, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, doctor.Name, doctor.HomeClinicID, string(doctor.Role)).Scan(&doctor.ID)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	return nil
}

// GetByID retrieves a doctor by ID.
func (r *DoctorRepository) GetByID(ctx context.Context, id int) (*domain.Doctor, error) {
	doctor := &domain.Doctor{}
	var role string

	query := `SELECT id, name, home_clinic_id, role FROM doctors WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(&doctor.ID, &doctor.Name, &doctor.HomeClinicID, &role)
	if err == sql.ErrNoRows {
		return nil, &repository.NotFoundError{ResourceType: "Doctor", ResourceID: fmt.Sprintf("%d", id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	doctor.Role = domain.Role(role)

	return doctor, nil
}

// GetAll retrieves every doctor.
func (r *DoctorRepository) GetAll(ctx context.Context) ([]domain.Doctor, error) {
	query := `SELECT id, name, home_clinic_id, role FROM doctors ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		var role string
		if err := rows.Scan(&d.ID, &d.Name, &d.HomeClinicID, &role); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		d.Role = domain.Role(role)
		doctors = append(doctors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return doctors, nil
}

// Update updates an existing doctor.
func (r *DoctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	query := `UPDATE doctors SET name = $2, home_clinic_id = $3, role = $4 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, doctor.ID, doctor.Name, doctor.HomeClinicID, string(doctor.Role))
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	return requireRowsAffected(result, "Doctor", fmt.Sprintf("%d", doctor.ID))
}

// Delete removes a doctor.
func (r *DoctorRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	return requireRowsAffected(result, "Doctor", fmt.Sprintf("%d", id))
}

// Count returns the total number of doctors.
func (r *DoctorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
