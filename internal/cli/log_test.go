package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/observability"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	// Test that it can log
	logger.Info("test message")

	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	// Small delay to ensure measurable duration
	time.Sleep(10 * time.Millisecond)

	prog.done("test completed")

	output := buf.String()
	if output == "" {
		t.Error("progress.done() should produce output")
	}

	// Should contain the message
	if !bytes.Contains(buf.Bytes(), []byte("test completed")) {
		t.Error("progress.done() output should contain message")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}

	h.OnInteract("0123456789abcdef", "navigate", "Up", 0, errors.New(errors.ErrCodeWordBad, "bad"))
	h.OnInteract("0123456789abcdef", "navigate", "up", 1, nil)
	h.OnSave("notes", time.Millisecond, nil)
	h.OnSave("notes", time.Millisecond, errors.New(errors.ErrCodeFile, "disk full"))

	out := buf.String()
	for _, want := range []string{"word rejected", "WORD_BAD", "session=01234567", "saved", "file=notes"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "saved") != 1 {
		t.Errorf("failed save was logged as saved:\n%s", out)
	}
}

func TestInstallHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	installHooks(log.New(io.Discard))
	if _, ok := observability.Session().(logHooks); !ok {
		t.Errorf("Session() = %T, want logHooks", observability.Session())
	}
	if _, ok := observability.Persistence().(logHooks); !ok {
		t.Errorf("Persistence() = %T, want logHooks", observability.Persistence())
	}
}
