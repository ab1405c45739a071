package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsProductionLoggerByDefault(t *testing.T) {
	t.Setenv("APP_ENV", "")
	logger, err := New("")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNew_BuildsDevelopmentLogger(t *testing.T) {
	logger, err := New("development")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestWithRequestID_RoundTrips(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ExtractRequestID(ctx))
}

func TestExtractRequestID_EmptyWhenUnset(t *testing.T) {
	assert.Equal(t, "", ExtractRequestID(context.Background()))
}
