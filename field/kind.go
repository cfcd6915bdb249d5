package field

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the coercion a lookup requests.
type Kind uint8

const (
	// KindString returns the stringified value unchanged. It is the zero Kind.
	KindString Kind = iota
	// KindInteger parses a base-10 signed 32-bit integer.
	KindInteger
	// KindLong parses a base-10 signed 64-bit integer.
	KindLong
	// KindBoolean reports whether the text equals "true", ignoring case.
	KindBoolean
	// KindTimestamp parses epoch milliseconds into a time.Time.
	KindTimestamp
)

var kindNames = [...]string{
	KindString:    "string",
	KindInteger:   "integer",
	KindLong:      "long",
	KindBoolean:   "boolean",
	KindTimestamp: "timestamp",
}

// String returns the tag name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindString]
}

// ParseKind maps a tag name to its Kind. Matching ignores case and
// surrounding space. Unrecognized names map to KindString.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integer":
		return KindInteger
	case "long":
		return KindLong
	case "boolean":
		return KindBoolean
	case "timestamp":
		return KindTimestamp
	default:
		return KindString
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*k = ParseKind(s)
	return nil
}
