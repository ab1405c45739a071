package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
)

// jobRecord is the stored form of a domain.SchedulingJob, keyed by ID.
type jobRecord = domain.SchedulingJob

// SchedulingJobRepository is an in-memory implementation for testing.
type SchedulingJobRepository struct {
	mu     sync.RWMutex
	jobs   map[int]jobRecord
	nextID int
}

// NewSchedulingJobRepository creates a new in-memory scheduling job
// repository.
func NewSchedulingJobRepository() *SchedulingJobRepository {
	return &SchedulingJobRepository{
		jobs:   make(map[int]jobRecord),
		nextID: 1,
	}
}

func (r *SchedulingJobRepository) Create(ctx context.Context, job *domain.SchedulingJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = r.nextID
	r.nextID++
	job.CreatedAt = time.Unix(0, 0).UTC().Add(time.Duration(job.ID) * time.Second)
	r.jobs[job.ID] = *job

	return nil
}

func (r *SchedulingJobRepository) GetByID(ctx context.Context, id int) (*domain.SchedulingJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, &repository.NotFoundError{ResourceType: "SchedulingJob", ResourceID: fmt.Sprintf("%d", id)}
	}

	return &job, nil
}

func (r *SchedulingJobRepository) GetAll(ctx context.Context) ([]domain.SchedulingJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.SchedulingJob, 0, len(r.jobs))
	for _, j := range r.jobs {
		result = append(result, j)
	}

	return result, nil
}

func (r *SchedulingJobRepository) Update(ctx context.Context, job *domain.SchedulingJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.jobs[job.ID]
	if !ok {
		return &repository.NotFoundError{ResourceType: "SchedulingJob", ResourceID: fmt.Sprintf("%d", job.ID)}
	}

	job.CreatedAt = existing.CreatedAt
	r.jobs[job.ID] = *job
	return nil
}

func (r *SchedulingJobRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.jobs[id]; !ok {
		return &repository.NotFoundError{ResourceType: "SchedulingJob", ResourceID: fmt.Sprintf("%d", id)}
	}

	delete(r.jobs, id)
	return nil
}

func (r *SchedulingJobRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.jobs)), nil
}

// snapshot returns a shallow copy of the current job map, used by
// Transaction to support Rollback.
func (r *SchedulingJobRepository) snapshot() map[int]jobRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[int]jobRecord, len(r.jobs))
	for k, v := range r.jobs {
		snap[k] = v
	}
	return snap
}

// restore replaces the job map with a previously captured snapshot.
func (r *SchedulingJobRepository) restore(snap map[int]jobRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs = snap
}
