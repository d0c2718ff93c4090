package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Loaded notes (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports engine events through the CLI logger. Open and load are
// already logged by the engine itself.
type logHooks struct {
	observability.NoopSessionHooks
	observability.NoopPersistenceHooks
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetSessionHooks(h)
	observability.SetPersistenceHooks(h)
}

func (h logHooks) OnInteract(session, state, word string, replies int, err error) {
	if err != nil {
		h.logger.Debug("word rejected", "session", shortID(session), "state", state, "word", word, "code", errors.GetCode(err))
		return
	}
	h.logger.Debug("word", "session", shortID(session), "state", state, "word", word, "replies", replies)
}

func (h logHooks) OnSave(path string, took time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Info("saved", "file", path, "took", took.Round(time.Microsecond))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
