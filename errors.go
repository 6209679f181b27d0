package eventlog

import "fmt"

// UnsupportedFieldTypeError reports a field whose runtime value has no
// rendering rule. The logging call that hit it wrote nothing.
type UnsupportedFieldTypeError struct {
	Field string // field name as declared on the event
	Type  string // offending runtime type, e.g. "[]string"
}

func (e *UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("eventlog: field %q has unsupported type %s", e.Field, e.Type)
}

// SinkWriteError reports a failed write to the logger's sink. The record may
// be partially written only if the sink itself tore the write; the logger
// issues a single Write per record.
type SinkWriteError struct {
	Err error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("eventlog: sink write failed: %v", e.Err)
}

func (e *SinkWriteError) Unwrap() error { return e.Err }
