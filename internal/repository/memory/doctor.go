package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// DoctorRepository is an in-memory implementation for testing.
type DoctorRepository struct {
	mu         sync.RWMutex
	doctors    map[int]domain.Doctor
	nextID     int
	queryCount int
}

// NewDoctorRepository creates a new in-memory doctor repository.
func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{
		doctors: make(map[int]domain.Doctor),
		nextID:  1,
	}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queryCount++

	doctor.ID = r.nextID
	r.nextID++
	r.doctors[doctor.ID] = *doctor

	return nil
}

func (r *DoctorRepository) GetByID(ctx context.Context, id int) (*domain.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	r.queryCount++

	doctor, ok := r.doctors[id]
	if !ok {
		return nil, &repository.NotFoundError{ResourceType: "Doctor", ResourceID: fmt.Sprintf("%d", id)}
	}

	return &doctor, nil
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]domain.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	r.queryCount++

	result := make([]domain.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		result = append(result, d)
	}

	return result, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *domain.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queryCount++

	if _, ok := r.doctors[doctor.ID]; !ok {
		return &repository.NotFoundError{ResourceType: "Doctor", ResourceID: fmt.Sprintf("%d", doctor.ID)}
	}

	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queryCount++

	if _, ok := r.doctors[id]; !ok {
		return &repository.NotFoundError{ResourceType: "Doctor", ResourceID: fmt.Sprintf("%d", id)}
	}

	delete(r.doctors, id)
	return nil
}

func (r *DoctorRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.doctors)), nil
}
