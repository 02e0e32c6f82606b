package logger

import (
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// Value used in a captured entry when the log site did not record a caller.
const noCallerValue = "<unknown>"

// Entry contains the data collected for a single captured log line.
type Entry struct {
	// Level of the log message.
	Level zapcore.Level

	// Timestamp when the log was emitted.
	Timestamp time.Time

	// Caller is the file:line of the log site, or "<unknown>" when the
	// caller could not be determined.
	Caller string

	// Message is the log message text.
	Message string
}

// Capture buffers the most recent log entries in memory so the UI can
// display them. The buffer is bounded: once full, the oldest entry is
// dropped for each new one appended.
type Capture struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

// NewCapture creates a capture buffer holding at most max entries.
func NewCapture(max int) *Capture {
	return &Capture{max: max}
}

// Entries returns a copy of the buffered entries, oldest first.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Capture) append(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == c.max {
		copy(c.entries, c.entries[1:])
		c.entries = c.entries[:len(c.entries)-1]
	}
	c.entries = append(c.entries, e)
}

// captureCore is a zapcore.Core that mirrors every enabled log entry into a
// Capture buffer. It performs no encoding of fields; only the entry metadata
// and message are retained, which is all the UI log view renders.
type captureCore struct {
	zapcore.LevelEnabler
	capture *Capture
}

func newCaptureCore(capture *Capture, enab zapcore.LevelEnabler) zapcore.Core {
	return &captureCore{LevelEnabler: enab, capture: capture}
}

// With implements zapcore.Core. Structured context fields are not rendered
// in the UI log view, so the core is returned unchanged.
func (c *captureCore) With(_ []zapcore.Field) zapcore.Core {
	return c
}

// Check implements zapcore.Core.
func (c *captureCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core.
func (c *captureCore) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	caller := noCallerValue
	if ent.Caller.Defined {
		caller = ent.Caller.TrimmedPath()
	}

	c.capture.append(Entry{
		Level:     ent.Level,
		Timestamp: ent.Time,
		Caller:    caller,
		Message:   ent.Message,
	})
	return nil
}

// Sync implements zapcore.Core. The buffer is in memory only.
func (c *captureCore) Sync() error {
	return nil
}
