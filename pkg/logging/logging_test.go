package logging

import (
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	// xdg caches StateHome at init, so reload after redirecting it.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.expected, zerolog.GlobalLevel())
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("test-component")
	// A contextualized logger must be usable without further setup.
	require.NotPanics(t, func() {
		logger.Debug().Msg("ping")
	})
}

func TestGetLogFilePath(t *testing.T) {
	path := getLogFilePath()
	assert.Contains(t, path, "rpmvars")
	assert.Contains(t, path, "rpmvars.log")
}
