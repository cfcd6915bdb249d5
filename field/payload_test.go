package field

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	m, err := DecodePayload([]byte(`{
		"guid": "p:0/abc",
		"originalROWID": 9007199254740993,
		"dateCreated": 1700000000000,
		"isFromMe": false,
		"subject": null,
		"handle": {"address": "+15550100"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, json.Number("9007199254740993"), m["originalROWID"])

	rowID, ok, err := Long(m, "originalROWID")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(9007199254740993), rowID)

	ts, ok, err := Timestamp(m, "dateCreated")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000000), ts.UnixMilli())

	_, ok = String(m, "subject")
	assert.False(t, ok)

	handle, ok := m["handle"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "+15550100", handle["address"])
}

func TestDecodePayload_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `guid=abc`},
		{name: "array", data: `[1, 2]`},
		{name: "trailing object", data: `{"a": 1} {"b": 2}`},
		{name: "truncated", data: `{"a": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to decode payload")
		})
	}
}

func TestDecodePayload_Null(t *testing.T) {
	m, err := DecodePayload([]byte(" null \n"))
	require.NoError(t, err)
	assert.Nil(t, m)

	b, err := Bool(m, "isFromMe")
	require.NoError(t, err)
	assert.False(t, b)
}
