package eventlog

import "time"

// Clock supplies the metadata timestamp. Inject a fixed clock in tests to
// make emitted records deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
