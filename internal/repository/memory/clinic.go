package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// ClinicRepository is an in-memory implementation for testing.
type ClinicRepository struct {
	mu      sync.RWMutex
	clinics map[int]domain.Clinic
	nextID  int
}

// NewClinicRepository creates a new in-memory clinic repository.
func NewClinicRepository() *ClinicRepository {
	return &ClinicRepository{
		clinics: make(map[int]domain.Clinic),
		nextID:  1,
	}
}

func (r *ClinicRepository) Create(ctx context.Context, clinic *domain.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clinic.ID = r.nextID
	r.nextID++
	r.clinics[clinic.ID] = *clinic

	return nil
}

func (r *ClinicRepository) GetByID(ctx context.Context, id int) (*domain.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clinic, ok := r.clinics[id]
	if !ok {
		return nil, &repository.NotFoundError{ResourceType: "Clinic", ResourceID: fmt.Sprintf("%d", id)}
	}

	return &clinic, nil
}

func (r *ClinicRepository) GetAll(ctx context.Context) ([]domain.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Clinic, 0, len(r.clinics))
	for _, c := range r.clinics {
		result = append(result, c)
	}

	return result, nil
}

func (r *ClinicRepository) Update(ctx context.Context, clinic *domain.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clinics[clinic.ID]; !ok {
		return &repository.NotFoundError{ResourceType: "Clinic", ResourceID: fmt.Sprintf("%d", clinic.ID)}
	}

	r.clinics[clinic.ID] = *clinic
	return nil
}

func (r *ClinicRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clinics[id]; !ok {
		return &repository.NotFoundError{ResourceType: "Clinic", ResourceID: fmt.Sprintf("%d", id)}
	}

	delete(r.clinics, id)
	return nil
}

func (r *ClinicRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.clinics)), nil
}
