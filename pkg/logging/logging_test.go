package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
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
			xdg.Reload()

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "yazap", LogFileName)
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)
	xdg.Reload()

	got := getLogFilePath()
	want := filepath.Join(tempDir, "yazap", LogFileName)
	if got != want {
		t.Errorf("getLogFilePath() = %q, want %q", got, want)
	}
}

func TestGetLogger(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := GetLogger("parser")

	var buf strings.Builder
	child := logger.Output(&buf).Level(zerolog.DebugLevel)
	child.Debug().Msg("probe")

	if !strings.Contains(buf.String(), `"component":"parser"`) {
		t.Errorf("logger output missing component field: %s", buf.String())
	}
}

func TestSetupLogFileCreatesParents(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "dir", "yazap.log")

	f, err := setupLogFile(logPath)
	if err != nil {
		t.Fatalf("setupLogFile() error = %v", err)
	}
	defer f.Close()

	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("expected log file at %s: %v", logPath, err)
	}
}
