// Package field provides typed extraction of values from decoded message payloads.
//
// Payloads arrive as map[string]any, usually from JSON. Each lookup names the
// kind it expects, and the raw value is normalized to text and then parsed
// into that kind:
//
//	payload, _ := field.DecodePayload(body)
//
//	guid, _ := field.String(payload, "guid")
//	created, ok, err := field.Timestamp(payload, "dateCreated")
//	fromMe, err := field.Bool(payload, "isFromMe")
//
// # Absent values
//
// A value is absent when its key is missing, when it is nil, or when its text
// is exactly "null". An absent value parses to a null Value of the requested
// kind, with one exception: a Boolean lookup yields false. Callers that need
// to tell "missing" from "false" should look at the map directly.
//
// # Failures
//
// Text that does not parse as the requested number or timestamp returns a
// *ParseError. Nothing is defaulted. The error matches helpers.ErrMalformedField
// with errors.Is and unwraps to the underlying strconv error.
//
// # Kinds
//
// Kind is a closed set: Integer, Long, Boolean, Timestamp and String. Unknown
// tag names given to ParseKind, or found in a YAML schema, become String.
package field
