package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "REDIS_ADDR", "SERVER_ADDR", "ANNEAL_TMAX", "ANNEAL_STEPS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 25_000.0, cfg.AnnealTmax)
	assert.Equal(t, 50_000, cfg.AnnealSteps)
	assert.Equal(t, 10_000.0, cfg.AnnealWHard)
	assert.Equal(t, 10.0, cfg.AnnealWSoft)
}

func TestLoad_ReadsOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("ANNEAL_STEPS", "1000")
	t.Setenv("ANNEAL_TMAX", "500.5")
	t.Setenv("ANNEAL_W_HARD", "5000")
	t.Setenv("ANNEAL_W_SOFT", "1.5")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, 1000, cfg.AnnealSteps)
	assert.Equal(t, 500.5, cfg.AnnealTmax)
	assert.Equal(t, 5000.0, cfg.AnnealWHard)
	assert.Equal(t, 1.5, cfg.AnnealWSoft)
}

func TestLoad_IgnoresUnparsableOverrides(t *testing.T) {
	t.Setenv("ANNEAL_STEPS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 50_000, cfg.AnnealSteps)
}

func TestAnnealConfig_ProjectsFields(t *testing.T) {
	cfg := Config{AnnealTmax: 1, AnnealTmin: 2, AnnealSteps: 3, AnnealUpdates: 4, AnnealWHard: 5, AnnealWSoft: 6}
	sc := cfg.AnnealConfig()

	assert.Equal(t, 1.0, sc.Tmax)
	assert.Equal(t, 2.0, sc.Tmin)
	assert.Equal(t, 3, sc.Steps)
	assert.Equal(t, 4, sc.Updates)
	assert.Equal(t, 5.0, sc.WHard)
	assert.Equal(t, 6.0, sc.WSoft)
}
