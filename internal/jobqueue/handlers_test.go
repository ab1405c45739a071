package jobqueue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRunner struct {
	calledWith     int
	calledWithSeed *int64
	err            error
}

func (s *stubRunner) Run(ctx context.Context, jobID int, seed *int64) error {
	s.calledWith = jobID
	s.calledWithSeed = seed
	return s.err
}

func taskFor(t *testing.T, payload SchedulePayload) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(TypeScheduleOptimize, b)
}

func TestHandleScheduleOptimize_CallsRunnerWithJobID(t *testing.T) {
	runner := &stubRunner{}
	h := NewJobHandlers(runner, zap.NewNop().Sugar())

	task := taskFor(t, SchedulePayload{SchedulingJobID: 42})
	err := h.HandleScheduleOptimize(context.Background(), task)

	require.NoError(t, err)
	assert.Equal(t, 42, runner.calledWith)
}

func TestHandleScheduleOptimize_ForwardsSeed(t *testing.T) {
	runner := &stubRunner{}
	h := NewJobHandlers(runner, zap.NewNop().Sugar())

	seed := int64(9001)
	task := taskFor(t, SchedulePayload{SchedulingJobID: 42, Seed: &seed})
	err := h.HandleScheduleOptimize(context.Background(), task)

	require.NoError(t, err)
	require.NotNil(t, runner.calledWithSeed)
	assert.Equal(t, seed, *runner.calledWithSeed)
}

func TestHandleScheduleOptimize_WrapsRunnerError(t *testing.T) {
	runner := &stubRunner{err: assert.AnError}
	h := NewJobHandlers(runner, zap.NewNop().Sugar())

	task := taskFor(t, SchedulePayload{SchedulingJobID: 7})
	err := h.HandleScheduleOptimize(context.Background(), task)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestHandleScheduleOptimize_MalformedPayloadSkipsRetry(t *testing.T) {
	runner := &stubRunner{}
	h := NewJobHandlers(runner, zap.NewNop().Sugar())

	task := asynq.NewTask(TypeScheduleOptimize, []byte("not json"))
	err := h.HandleScheduleOptimize(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Equal(t, 0, runner.calledWith)
}

func TestRegisterHandlers_BindsScheduleOptimizeType(t *testing.T) {
	runner := &stubRunner{}
	h := NewJobHandlers(runner, zap.NewNop().Sugar())
	mux := asynq.NewServeMux()

	h.RegisterHandlers(mux)

	task := taskFor(t, SchedulePayload{SchedulingJobID: 1})
	_, err := mux.ProcessTask(context.Background(), task)
	require.NoError(t, err)
	assert.Equal(t, 1, runner.calledWith)
}
