package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistryWithRegisterer(prometheus.NewRegistry())
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestRecordJobStarted_IncrementsCounter(t *testing.T) {
	r := newTestRegistry(t)
	r.RecordJobStarted()
	r.RecordJobStarted()
	assert.Equal(t, 2.0, counterValue(t, r.jobsStarted))
}

func TestRecordJobCompleted_IncrementsCompletedAndObserves(t *testing.T) {
	r := newTestRegistry(t)
	r.RecordJobCompleted(12.5, 42.0)
	assert.Equal(t, 1.0, counterValue(t, r.jobsCompleted))
}

func TestRecordJobFailed_IncrementsCounter(t *testing.T) {
	r := newTestRegistry(t)
	r.RecordJobFailed()
	assert.Equal(t, 1.0, counterValue(t, r.jobsFailed))
}

func TestSetQueueDepth_UpdatesGauge(t *testing.T) {
	r := newTestRegistry(t)
	r.SetQueueDepth(7)

	var m dto.Metric
	require.NoError(t, r.queueDepth.Write(&m))
	assert.Equal(t, 7.0, m.GetGauge().GetValue())
}

func TestHandler_ServesPrometheusFormat(t *testing.T) {
	r := newTestRegistry(t)
	r.RecordJobStarted()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "scheduling_jobs_started_total")
}
