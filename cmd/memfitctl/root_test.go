package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memfit/internal/logger"
	"github.com/joshuapare/memfit/pool"
)

func TestSetup_FromEnvironment(t *testing.T) {
	resetGlobals(t)
	t.Cleanup(func() { _ = logger.Init(logger.Options{}) })

	t.Setenv("MEMFIT_POOL_FILE", writePoolFile(t, "pool.yaml", "sizes: [10, 20, 30]\n"))
	t.Setenv("MEMFIT_LOG_DIR", t.TempDir())

	require.NoError(t, setup())
	require.NotNil(t, memPool)
	assert.Equal(t, []int{10, 20, 30}, memPool.Sizes())
}

func TestSetup_FlagsOverrideEnvironment(t *testing.T) {
	resetGlobals(t)
	t.Cleanup(func() { _ = logger.Init(logger.Options{}) })

	t.Setenv("MEMFIT_POOL_FILE", "does-not-exist.yaml")
	poolFile = writePoolFile(t, "pool.yaml", "sizes: [64]\n")
	logLevel = "warn"

	require.NoError(t, setup())
	assert.Equal(t, []int{64}, memPool.Sizes())
	assert.Equal(t, "WARN", cfg.LogLevel)
}

func TestSetup_Errors(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		level string
		want  string
	}{
		{"bad strategy", map[string]string{"MEMFIT_STRATEGY": "buddy"}, "", "MEMFIT_STRATEGY"},
		{"bad env level", map[string]string{"MEMFIT_LOG_LEVEL": "loud"}, "", "MEMFIT_LOG_LEVEL"},
		{"bad flag level", nil, "loud", "--log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			logLevel = tt.level

			err := setup()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSetup_MissingPoolFile(t *testing.T) {
	resetGlobals(t)
	poolFile = "does-not-exist.yaml"

	err := setup()
	require.Error(t, err)
	assert.NotErrorIs(t, err, pool.ErrBadDefinition)
	assert.Contains(t, err.Error(), "open pool definition")
}
