package eventlog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gasproni/eventlog/internal/metrics"
)

// EventLogger renders one Event per invocation and writes it to a sink.
// TextStreamEventLogger is the only implementation in this module; the
// interface is the seam for alternative sinks.
type EventLogger interface {
	Log(event Event) error
}

// flusher is the optional sink capability drained after every record so a
// successful Log call is durably visible before it returns.
type flusher interface {
	Flush() error
}

// TextStreamEventLogger writes newline-delimited JSON records to a text
// stream, os.Stdout unless configured otherwise. One logger instance may be
// shared across goroutines: records are encoded off-lock and written with a
// single Write call under a mutex, so lines never interleave.
type TextStreamEventLogger struct {
	mu          sync.Mutex
	out         io.Writer
	clock       Clock
	correlation *CorrelationID
}

// Option configures a TextStreamEventLogger at construction.
type Option func(*TextStreamEventLogger)

// WithOutput directs records to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *TextStreamEventLogger) { l.out = w }
}

// WithClock substitutes the clock used for metadata timestamps.
func WithClock(c Clock) Option {
	return func(l *TextStreamEventLogger) { l.clock = c }
}

// WithCorrelationID attaches a correlation identifier holder. Every record
// then carries metadata.correlation_id, null while the holder is unset.
func WithCorrelationID(c *CorrelationID) Option {
	return func(l *TextStreamEventLogger) { l.correlation = c }
}

// NewTextStreamEventLogger builds a logger writing to os.Stdout with the
// system clock, then applies opts.
func NewTextStreamEventLogger(opts ...Option) *TextStreamEventLogger {
	l := &TextStreamEventLogger{
		out:   os.Stdout,
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetOutput swaps the sink. Safe to call while other goroutines log; the
// swap never lands mid-line.
func (l *TextStreamEventLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Log renders event and writes it as one JSON line. It either writes the
// complete line and returns nil, or writes nothing and returns
// *UnsupportedFieldTypeError (a field with no rendering rule) or
// *SinkWriteError (the sink rejected the write).
func (l *TextStreamEventLogger) Log(event Event) error {
	start := time.Now()

	line, err := l.encode(event)
	if err != nil {
		metrics.EventsFailed.WithLabelValues(metrics.ReasonUnsupportedField).Inc()
		return err
	}

	l.mu.Lock()
	err = l.write(line)
	l.mu.Unlock()
	if err != nil {
		metrics.EventsFailed.WithLabelValues(metrics.ReasonSinkWrite).Inc()
		return err
	}

	metrics.EventsLogged.WithLabelValues(event.EventType()).Inc()
	metrics.LogDuration.Observe(float64(time.Since(start).Microseconds()) / 1000.0)
	return nil
}

// encode builds the full record before any byte reaches the sink, keeping
// failed calls all-or-nothing. The event object is assembled by hand because
// encoding/json maps would reorder keys, and field order must match
// declaration order.
func (l *TextStreamEventLogger) encode(event Event) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"metadata":{"timestamp":`)
	writeJSONString(&buf, l.clock.Now().UTC().Format(TimestampLayout))
	buf.WriteString(`,"type":`)
	writeJSONString(&buf, event.EventType())
	if l.correlation != nil {
		buf.WriteString(`,"correlation_id":`)
		if id, ok := l.correlation.Get(); ok {
			writeJSONString(&buf, id)
		} else {
			buf.WriteString("null")
		}
	}
	buf.WriteString(`},"event":{`)

	for i, f := range event.EventFields() {
		value, err := render(f)
		if err != nil {
			return nil, err
		}
		encoded, merr := json.Marshal(value)
		if merr != nil {
			return nil, &UnsupportedFieldTypeError{Field: f.Name, Type: f.kind.String()}
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, f.Name)
		buf.WriteByte(':')
		buf.Write(encoded)
	}

	buf.WriteString("}}\n")
	return buf.Bytes(), nil
}

// write issues a single Write for the whole line and flushes flushable
// sinks. Callers hold l.mu.
func (l *TextStreamEventLogger) write(line []byte) error {
	n, err := l.out.Write(line)
	if err != nil {
		return &SinkWriteError{Err: err}
	}
	if n < len(line) {
		return &SinkWriteError{Err: io.ErrShortWrite}
	}
	if f, ok := l.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return &SinkWriteError{Err: err}
		}
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	encoded, _ := json.Marshal(s)
	buf.Write(encoded)
}
