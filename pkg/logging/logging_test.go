// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (temp state dir)
// PURPOSE: Test verbosity mapping and log file placement

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "fontinstall", "fontinstall.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "fontinstall", "fontinstall.log"), LogFilePath())
}

func TestLevelFor_NegativeIsWarn(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelFor(-1))
}

func TestSetupLogger_UnwritableStateDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	t.Setenv("XDG_STATE_HOME", blocker)

	assert.NotPanics(t, func() { SetupLogger(0) })
	assert.NoFileExists(t, LogFilePath())
}

func TestGetLoggerAddsComponent(t *testing.T) {
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("scanner")
	done := LogOperationStart(logger, "scan")
	done()

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"component":"scanner"`)
	assert.Contains(t, out, `"operation":"scan"`)
	assert.Contains(t, out, `"duration"`)
}
