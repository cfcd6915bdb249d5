package field

import (
	"strconv"
	"time"
)

// Value is the result of a lookup: one Kind plus the payload for that kind.
// The zero Value is a null string.
type Value struct {
	kind  Kind
	valid bool
	num   int64
	flag  bool
	at    time.Time
	text  string
}

// Null returns an absent Value of kind k.
func Null(k Kind) Value { return Value{kind: k} }

// NewInt returns an Integer Value.
func NewInt(v int32) Value { return Value{kind: KindInteger, valid: true, num: int64(v)} }

// NewLong returns a Long Value.
func NewLong(v int64) Value { return Value{kind: KindLong, valid: true, num: v} }

// NewBool returns a Boolean Value.
func NewBool(v bool) Value { return Value{kind: KindBoolean, valid: true, flag: v} }

// NewTimestamp returns a Timestamp Value.
func NewTimestamp(t time.Time) Value { return Value{kind: KindTimestamp, valid: true, at: t} }

// NewString returns a String Value.
func NewString(s string) Value { return Value{kind: KindString, valid: true, text: s} }

// Kind reports which payload v carries.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is absent.
func (v Value) IsNull() bool { return !v.valid }

// Int returns the Integer payload, or 0.
func (v Value) Int() int32 {
	if v.kind != KindInteger {
		return 0
	}
	return int32(v.num)
}

// Long returns the Long payload, or 0.
func (v Value) Long() int64 {
	if v.kind != KindLong {
		return 0
	}
	return v.num
}

// Bool returns the Boolean payload, or false.
func (v Value) Bool() bool { return v.kind == KindBoolean && v.flag }

// Time returns the Timestamp payload, or the zero time.
func (v Value) Time() time.Time {
	if v.kind != KindTimestamp {
		return time.Time{}
	}
	return v.at
}

// Any returns the payload as int32, int64, bool, time.Time or string.
// A null Value returns nil.
func (v Value) Any() any {
	if !v.valid {
		return nil
	}
	switch v.kind {
	case KindInteger:
		return int32(v.num)
	case KindLong:
		return v.num
	case KindBoolean:
		return v.flag
	case KindTimestamp:
		return v.at
	default:
		return v.text
	}
}

// String returns the text form of v. For KindString that is the payload
// itself. A null Value renders as "null".
func (v Value) String() string {
	if !v.valid {
		return "null"
	}
	switch v.kind {
	case KindInteger, KindLong:
		return strconv.FormatInt(v.num, 10)
	case KindBoolean:
		return strconv.FormatBool(v.flag)
	case KindTimestamp:
		return v.at.UTC().Format(time.RFC3339Nano)
	default:
		return v.text
	}
}
