package memory

import "github.com/schedcu/optimizer/internal/repository"

// Transaction implements repository.Transaction over the in-memory
// job/assignment repositories. Commit is a no-op since writes already
// landed directly in the shared maps; Rollback restores the snapshot
// captured at BeginTx time, approximating PostgreSQL rollback semantics
// for tests that exercise the failure path.
type Transaction struct {
	jobRepo        *SchedulingJobRepository
	assignmentRepo *AssignmentRepository

	jobSnapshot    map[int]jobRecord
	assignmentSnap map[int]assignmentRecord
}

func (t *Transaction) Commit() error {
	return nil
}

func (t *Transaction) Rollback() error {
	t.jobRepo.restore(t.jobSnapshot)
	t.assignmentRepo.restore(t.assignmentSnap)
	return nil
}

func (t *Transaction) SchedulingJobRepository() repository.SchedulingJobRepository {
	return t.jobRepo
}

func (t *Transaction) AssignmentRepository() repository.AssignmentRepository {
	return t.assignmentRepo
}
