package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// ShiftRepository is an in-memory implementation for testing.
type ShiftRepository struct {
	mu     sync.RWMutex
	shifts map[int]domain.Shift
	nextID int
}

// NewShiftRepository creates a new in-memory shift repository.
func NewShiftRepository() *ShiftRepository {
	return &ShiftRepository{
		shifts: make(map[int]domain.Shift),
		nextID: 1,
	}
}

func (r *ShiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shift.ID = r.nextID
	r.nextID++
	r.shifts[shift.ID] = *shift

	return nil
}

func (r *ShiftRepository) GetByID(ctx context.Context, id int) (*domain.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shift, ok := r.shifts[id]
	if !ok {
		return nil, &repository.NotFoundError{ResourceType: "Shift", ResourceID: fmt.Sprintf("%d", id)}
	}

	return &shift, nil
}

func (r *ShiftRepository) GetAll(ctx context.Context) ([]domain.Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Shift, 0, len(r.shifts))
	for _, s := range r.shifts {
		result = append(result, s)
	}

	return result, nil
}

func (r *ShiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shifts[shift.ID]; !ok {
		return &repository.NotFoundError{ResourceType: "Shift", ResourceID: fmt.Sprintf("%d", shift.ID)}
	}

	r.shifts[shift.ID] = *shift
	return nil
}

func (r *ShiftRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.shifts[id]; !ok {
		return &repository.NotFoundError{ResourceType: "Shift", ResourceID: fmt.Sprintf("%d", id)}
	}

	delete(r.shifts, id)
	return nil
}

func (r *ShiftRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.shifts)), nil
}
