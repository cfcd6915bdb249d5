package field

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/bluebubbles/helpers"
)

// Mapping is a decoded payload: string keys to loosely typed values.
type Mapping = map[string]any

// nullText is the stringified form treated the same as a missing value.
const nullText = "null"

// ParseError reports text that could not be parsed into the requested kind.
type ParseError struct {
	// Field is the payload key that was looked up.
	Field string

	// Kind is the requested coercion.
	Kind Kind

	// Text is the stringified raw value.
	Text string

	// Err is the underlying strconv error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("field %q: cannot parse %q as %s: %v", e.Field, e.Text, e.Kind, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match helpers.ErrMalformedField and any
// *helpers.Error of kind helpers.KindParse whose Op is empty or "field.Parse".
func (e *ParseError) Is(target error) bool {
	if target == helpers.ErrMalformedField {
		return true
	}
	if t, ok := target.(*helpers.Error); ok {
		return t.Kind == helpers.KindParse && (t.Op == "" || t.Op == "field.Parse")
	}
	return false
}

// Parse looks up key in m and converts it to kind.
//
// Missing, nil (including typed nil pointers, maps and slices) and "null"
// values are absent: a Boolean lookup returns false,
// every other kind returns Null(kind). Integer, Long and Timestamp text that
// does not parse returns a *ParseError.
func Parse(m Mapping, key string, kind Kind) (Value, error) {
	raw, ok := m[key]
	if !ok || isNil(raw) {
		return absent(kind), nil
	}

	text := stringify(raw)
	if text == nullText {
		return absent(kind), nil
	}

	switch kind {
	case KindInteger:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Value{}, &ParseError{Field: key, Kind: kind, Text: text, Err: err}
		}
		return NewInt(int32(n)), nil
	case KindLong:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Field: key, Kind: kind, Text: text, Err: err}
		}
		return NewLong(n), nil
	case KindBoolean:
		return NewBool(strings.EqualFold(text, "true")), nil
	case KindTimestamp:
		ms, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, &ParseError{Field: key, Kind: kind, Text: text, Err: err}
		}
		return NewTimestamp(time.UnixMilli(ms)), nil
	default:
		return NewString(text), nil
	}
}

// Int extracts a 32-bit integer. ok is false when the value is absent.
func Int(m Mapping, key string) (v int32, ok bool, err error) {
	val, err := Parse(m, key, KindInteger)
	if err != nil || val.IsNull() {
		return 0, false, err
	}
	return val.Int(), true, nil
}

// Long extracts a 64-bit integer. ok is false when the value is absent.
func Long(m Mapping, key string) (v int64, ok bool, err error) {
	val, err := Parse(m, key, KindLong)
	if err != nil || val.IsNull() {
		return 0, false, err
	}
	return val.Long(), true, nil
}

// Bool extracts a boolean. Absent values are false.
func Bool(m Mapping, key string) (bool, error) {
	val, err := Parse(m, key, KindBoolean)
	if err != nil {
		return false, err
	}
	return val.Bool(), nil
}

// Timestamp extracts an epoch-millisecond timestamp. ok is false when the
// value is absent.
func Timestamp(m Mapping, key string) (t time.Time, ok bool, err error) {
	val, err := Parse(m, key, KindTimestamp)
	if err != nil || val.IsNull() {
		return time.Time{}, false, err
	}
	return val.Time(), true, nil
}

// String extracts the stringified value. ok is false when the value is absent.
func String(m Mapping, key string) (s string, ok bool) {
	val, _ := Parse(m, key, KindString)
	if val.IsNull() {
		return "", false
	}
	return val.String(), true
}

func absent(kind Kind) Value {
	if kind == KindBoolean {
		return NewBool(false)
	}
	return Null(kind)
}

// isNil reports whether raw is nil or a nil pointer, map, slice, interface,
// channel or func.
func isNil(raw any) bool {
	if raw == nil {
		return true
	}
	switch v := reflect.ValueOf(raw); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

// stringify renders raw the way it would appear in the JSON payload, so that
// float64 numbers from encoding/json keep their integer spelling.
func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
