package memory

import (
	"context"
	"sync"

	"github.com/schedcu/optimizer/internal/domain"
)

// assignmentRecord is the stored form of a domain.Assignment, keyed by
// ID.
type assignmentRecord = domain.Assignment

// AssignmentRepository is an in-memory implementation for testing.
type AssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[int]assignmentRecord
	nextID      int
}

// NewAssignmentRepository creates a new in-memory assignment
// repository.
func NewAssignmentRepository() *AssignmentRepository {
	return &AssignmentRepository{
		assignments: make(map[int]assignmentRecord),
		nextID:      1,
	}
}

func (r *AssignmentRepository) CreateBatch(ctx context.Context, assignments []domain.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range assignments {
		a.ID = r.nextID
		r.nextID++
		r.assignments[a.ID] = a
	}

	return nil
}

func (r *AssignmentRepository) GetByJobID(ctx context.Context, jobID int) ([]domain.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Assignment
	for _, a := range r.assignments {
		if a.JobID == jobID {
			result = append(result, a)
		}
	}

	return result, nil
}

func (r *AssignmentRepository) DeleteByJobID(ctx context.Context, jobID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, a := range r.assignments {
		if a.JobID == jobID {
			delete(r.assignments, id)
			removed++
		}
	}

	return removed, nil
}

func (r *AssignmentRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.assignments)), nil
}

// snapshot returns a shallow copy of the current assignment map, used
// by Transaction to support Rollback.
func (r *AssignmentRepository) snapshot() map[int]assignmentRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[int]assignmentRecord, len(r.assignments))
	for k, v := range r.assignments {
		snap[k] = v
	}
	return snap
}

// restore replaces the assignment map with a previously captured
// snapshot.
func (r *AssignmentRepository) restore(snap map[int]assignmentRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assignments = snap
}
