package field

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodePayload decodes a JSON object into a Mapping.
//
// Numbers are kept as json.Number so 64-bit ids and epoch milliseconds are
// not rounded through float64. A JSON null decodes to a nil Mapping, which
// Parse treats as having no keys.
func DecodePayload(data []byte) (Mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m Mapping
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode payload: trailing data after object")
	}

	return m, nil
}
