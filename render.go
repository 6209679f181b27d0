package eventlog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the format used for metadata.timestamp and for
// timestamp-valued fields: RFC 3339 in UTC with a Z designator and
// sub-second precision when present.
const TimestampLayout = time.RFC3339Nano

// render converts a field's value into something encoding/json can emit
// natively. It never mutates the input and is deterministic for a given
// value.
func render(f Field) (interface{}, error) {
	switch f.kind {
	case kindInt, kindUint, kindFloat, kindString, kindBool:
		return f.value, nil
	case kindTime:
		return renderTime(f.value.(time.Time)), nil
	case kindError:
		err, _ := f.value.(error)
		if err == nil {
			return nil, nil
		}
		return ErrorTrace(err), nil
	case kindNull:
		return nil, nil
	case kindAny:
		return renderAny(f)
	default:
		return nil, &UnsupportedFieldTypeError{Field: f.Name, Type: f.kind.String()}
	}
}

// renderAny resolves an Any field from its runtime type. The dispatch set is
// closed; the default arm is the UnsupportedFieldTypeError contract.
func renderAny(f Field) (interface{}, error) {
	switch v := f.value.(type) {
	case nil:
		return nil, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case uint64:
		return v, nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return v, nil
	case bool:
		return v, nil
	case time.Time:
		return renderTime(v), nil
	case error:
		return ErrorTrace(v), nil
	default:
		return nil, &UnsupportedFieldTypeError{Field: f.Name, Type: fmt.Sprintf("%T", f.value)}
	}
}

// renderTime normalizes to UTC before formatting, so a value constructed
// without an explicit zone reads back identically to one built in UTC.
func renderTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ErrorTrace renders err's full chain: the concrete type and message of err
// and of every error it wraps, outermost first. This stands in for a stack
// trace, which plain Go errors do not carry.
func ErrorTrace(err error) string {
	var b strings.Builder
	for depth := 0; err != nil; depth++ {
		if depth > 0 {
			b.WriteString("\ncaused by: ")
		}
		fmt.Fprintf(&b, "%T: %s", err, err.Error())
		err = errors.Unwrap(err)
	}
	return b.String()
}
