// Package eventlog emits typed, structured log events as newline-delimited
// JSON. Application code declares event types as plain structs with an
// ordered field list; a TextStreamEventLogger wraps each instance in a
// metadata envelope (UTC timestamp, type name, optional correlation id) and
// writes it to a text stream in one atomic line.
package eventlog

import "time"

// Event is an immutable record of a domain occurrence. A concrete event type
// declares its loggable fields once, in its constructor or in EventFields,
// and MUST NOT be mutated after it is handed to a logger.
type Event interface {
	// EventType returns the concrete type's name, used verbatim as the
	// "type" value in the metadata envelope (e.g. "PaymentMade").
	EventType() string

	// EventFields returns the event's fields in declaration order. The
	// returned order is the order the keys appear in the emitted JSON.
	EventFields() []Field
}

type fieldKind uint8

const (
	kindInt fieldKind = iota
	kindUint
	kindFloat
	kindString
	kindBool
	kindTime
	kindError
	kindNull
	kindAny
)

func (k fieldKind) String() string {
	switch k {
	case kindInt:
		return "int"
	case kindUint:
		return "uint"
	case kindFloat:
		return "float"
	case kindString:
		return "string"
	case kindBool:
		return "bool"
	case kindTime:
		return "time"
	case kindError:
		return "error"
	case kindNull:
		return "null"
	default:
		return "any"
	}
}

// Field is one named value of an event. The set of representable kinds is
// closed: numbers, strings, booleans, timestamps, errors, and null. Values
// outside that set can only enter through Any, and fail at render time.
type Field struct {
	Name  string
	kind  fieldKind
	value interface{}
}

// Int declares a signed integer field.
func Int(name string, v int64) Field {
	return Field{Name: name, kind: kindInt, value: v}
}

// Uint declares an unsigned integer field.
func Uint(name string, v uint64) Field {
	return Field{Name: name, kind: kindUint, value: v}
}

// Float declares a floating-point field.
func Float(name string, v float64) Field {
	return Field{Name: name, kind: kindFloat, value: v}
}

// String declares a text field. Correlation identifiers and similar opaque
// IDs are ordinary string fields.
func String(name string, v string) Field {
	return Field{Name: name, kind: kindString, value: v}
}

// Bool declares a boolean field.
func Bool(name string, v bool) Field {
	return Field{Name: name, kind: kindBool, value: v}
}

// Time declares a timestamp field. Values are rendered in UTC as RFC 3339;
// a value constructed without an explicit zone is treated as already UTC.
func Time(name string, v time.Time) Field {
	return Field{Name: name, kind: kindTime, value: v}
}

// Err declares an error field. The rendered value is the full error chain
// text (every wrapped error with its concrete type), not just the message.
func Err(name string, err error) Field {
	return Field{Name: name, kind: kindError, value: err}
}

// Null declares a field with no value, rendered as JSON null.
func Null(name string) Field {
	return Field{Name: name, kind: kindNull}
}

// Any declares a field whose kind is resolved from v's runtime type at
// render time. Supported: Go's integer, unsigned and float types, string,
// bool, time.Time, error, and nil (rendered as null). Anything else makes
// the logging call fail with UnsupportedFieldTypeError.
func Any(name string, v interface{}) Field {
	return Field{Name: name, kind: kindAny, value: v}
}

// record is the ad-hoc Event returned by NewEvent.
type record struct {
	name   string
	fields []Field
}

// NewEvent builds an ad-hoc event with an explicit type name and field list.
// Useful where declaring a dedicated struct is not worth it.
func NewEvent(name string, fields ...Field) Event {
	return &record{name: name, fields: fields}
}

func (r *record) EventType() string    { return r.name }
func (r *record) EventFields() []Field { return r.fields }
