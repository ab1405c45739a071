package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"

	"github.com/schedcu/optimizer/internal/domain"
	"github.com/schedcu/optimizer/internal/repository"
	"github.com/schedcu/optimizer/internal/validation"
)

// Scheduler is the subset of jobqueue.JobScheduler the API needs. The
// interface exists so handlers can be tested against a stub without a
// live Redis connection.
type Scheduler interface {
	EnqueueScheduleOptimize(ctx context.Context, schedulingJobID int, seed *int64) (*asynq.TaskInfo, error)
}

// Handlers holds all HTTP request handlers. It is thin by design: every
// handler validates its input, then either reads a repository directly
// or enqueues a job — none of them touch the solver.
type Handlers struct {
	db        repository.Database
	scheduler Scheduler
}

// NewHandlers creates a Handlers bound to db and scheduler.
func NewHandlers(db repository.Database, scheduler Scheduler) *Handlers {
	return &Handlers{db: db, scheduler: scheduler}
}

// CreateSchedulingJobRequest is the request body for POST /api/scheduling-jobs.
type CreateSchedulingJobRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

const dateLayout = "2006-01-02"

// CreateSchedulingJob persists a new PENDING job and enqueues it for
// annealing. The job row exists before the enqueue call returns, so a
// client can poll GetSchedulingJob immediately even if the worker hasn't
// picked up the task yet.
func (h *Handlers) CreateSchedulingJob(c echo.Context) error {
	var req CreateSchedulingJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode(CodeInvalidRequest, err.Error()))
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode(CodeInvalidRequest, "start_date must be YYYY-MM-DD"))
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode(CodeInvalidRequest, "end_date must be YYYY-MM-DD"))
	}

	rangeCheck := validation.PreflightDateRange(!end.Before(start), int(end.Sub(start).Hours()/24)+1)
	if rangeCheck.HasErrors() {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode(CodeInvalidRequest, rangeCheck.Summary()))
	}

	preflight := validation.PreflightJob(context.Background(), h.db)
	if preflight.HasErrors() {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponseWithCode(CodeValidationFailed, preflight.Summary()))
	}

	job := &domain.SchedulingJob{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    domain.JobStatusPending,
	}
	if err := h.db.SchedulingJobRepository().Create(context.Background(), job); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode(CodeInternal, err.Error()))
	}

	if _, err := h.scheduler.EnqueueScheduleOptimize(context.Background(), job.ID, nil); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode(CodeQueueError, err.Error()))
	}

	return c.JSON(http.StatusAccepted, SuccessResponse(job))
}

// GetSchedulingJob returns the current status/message of one job, the
// only thing a polling client needs to track progress.
func (h *Handlers) GetSchedulingJob(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode(CodeInvalidRequest, err.Error()))
	}

	job, err := h.db.SchedulingJobRepository().GetByID(context.Background(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, ErrorResponseWithCode(CodeNotFound, err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode(CodeInternal, err.Error()))
	}

	return c.JSON(http.StatusOK, SuccessResponse(job))
}

// ListSchedulingJobAssignments returns the persisted assignment rows for
// one job — empty until the job reaches COMPLETED.
func (h *Handlers) ListSchedulingJobAssignments(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode(CodeInvalidRequest, err.Error()))
	}

	if _, err := h.db.SchedulingJobRepository().GetByID(context.Background(), id); err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, ErrorResponseWithCode(CodeNotFound, err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode(CodeInternal, err.Error()))
	}

	assignments, err := h.db.AssignmentRepository().GetByJobID(context.Background(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode(CodeInternal, err.Error()))
	}

	return c.JSON(http.StatusOK, SuccessResponse(assignments))
}

// Health reports process liveness only.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse(map[string]string{"status": "UP"}))
}

// HealthDB reports database connectivity.
func (h *Handlers) HealthDB(c echo.Context) error {
	if err := h.db.Health(context.Background()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponseWithCode(CodeInternal, err.Error()))
	}
	return c.JSON(http.StatusOK, SuccessResponse(map[string]string{"database": "UP"}))
}

func parseIDParam(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
