package eventlog

import (
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces a fresh correlation identifier.
type IDGenerator func() string

// CorrelationID holds the identifier attached to the metadata envelope of
// every record a logger emits. It starts unset (rendered as JSON null) and
// is safe for use from multiple goroutines sharing one logger.
type CorrelationID struct {
	mu       sync.Mutex
	value    string
	set      bool
	generate IDGenerator
}

// NewCorrelationID creates a holder using gen for generated values. A nil
// gen defaults to time-based UUIDs (version 1), which sort roughly by
// creation time across services.
func NewCorrelationID(gen IDGenerator) *CorrelationID {
	if gen == nil {
		gen = func() string { return uuid.Must(uuid.NewUUID()).String() }
	}
	return &CorrelationID{generate: gen}
}

// Set stores value as the current identifier. An empty value asks the
// generator for a fresh one, for use at the entry point of a request chain.
func (c *CorrelationID) Set(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		value = c.generate()
	}
	c.value = value
	c.set = true
}

// Get returns the current identifier and whether one has been set.
func (c *CorrelationID) Get() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.set
}

// Reset clears the identifier back to unset.
func (c *CorrelationID) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = ""
	c.set = false
}
