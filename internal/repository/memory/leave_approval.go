package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// LeaveApprovalRepository is an in-memory implementation for testing.
type LeaveApprovalRepository struct {
	mu     sync.RWMutex
	leaves map[domain.LeaveKey]domain.LeaveApproval
}

// NewLeaveApprovalRepository creates a new in-memory leave approval
// repository.
func NewLeaveApprovalRepository() *LeaveApprovalRepository {
	return &LeaveApprovalRepository{
		leaves: make(map[domain.LeaveKey]domain.LeaveApproval),
	}
}

func (r *LeaveApprovalRepository) Create(ctx context.Context, leave *domain.LeaveApproval) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.NewLeaveKey(leave.DoctorID, leave.Date)
	r.leaves[key] = *leave
	return nil
}

func (r *LeaveApprovalRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]domain.LeaveApproval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.LeaveApproval
	for _, l := range r.leaves {
		if !l.Date.Before(start) && !l.Date.After(end) {
			result = append(result, l)
		}
	}

	return result, nil
}

func (r *LeaveApprovalRepository) GetByDoctor(ctx context.Context, doctorID int) ([]domain.LeaveApproval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.LeaveApproval
	for _, l := range r.leaves {
		if l.DoctorID == doctorID {
			result = append(result, l)
		}
	}

	return result, nil
}

func (r *LeaveApprovalRepository) Delete(ctx context.Context, doctorID int, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := domain.NewLeaveKey(doctorID, date)
	if _, ok := r.leaves[key]; !ok {
		return &repository.NotFoundError{ResourceType: "LeaveApproval", ResourceID: fmt.Sprintf("%d/%s", doctorID, date)}
	}

	delete(r.leaves, key)
	return nil
}

func (r *LeaveApprovalRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.leaves)), nil
}
