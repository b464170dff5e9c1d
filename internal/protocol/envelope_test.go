package protocol

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_AbsentVsNull(t *testing.T) {
	var withNull Request
	require.NoError(t, json.Unmarshal([]byte(`{"protocolVersion":"1.0","method":"ping","id":null}`), &withNull))
	assert.True(t, withNull.ID.Present(), "explicit null id should count as present")

	var without Request
	require.NoError(t, json.Unmarshal([]byte(`{"protocolVersion":"1.0","method":"ping"}`), &without))
	assert.False(t, without.ID.Present(), "absent id marks a notification")
}

func TestRequestID_MirroredVerbatim(t *testing.T) {
	cases := []struct {
		name string
		id   string
	}{
		{"number", `42`},
		{"string", `"req-7"`},
		{"null", `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(`{"method":"ping","id":`+tc.id+`}`), &req))

			resp := NewResult(req.ID, map[string]any{})
			out, err := json.Marshal(resp)
			require.NoError(t, err)

			var decoded map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.JSONEq(t, tc.id, string(decoded["id"]))
		})
	}
}

func TestResponse_ExactlyOneOfResultError(t *testing.T) {
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"method":"ping","id":1}`), &req))

	ok, err := json.Marshal(NewResult(req.ID, "fine"))
	require.NoError(t, err)
	assert.Contains(t, string(ok), `"result"`)
	assert.NotContains(t, string(ok), `"error"`)

	bad, err := json.Marshal(NewError(req.ID, NewMethodNotFound("nope")))
	require.NoError(t, err)
	assert.Contains(t, string(bad), `"error"`)
	assert.NotContains(t, string(bad), `"result"`)
}

func TestAsError(t *testing.T) {
	typed := NewInvalidParams("missing thing")
	assert.Same(t, typed, AsError(typed))

	wrapped := AsError(errors.New("boom"))
	assert.Equal(t, CodeInternal, wrapped.Code)
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, -32700, NewParseError(errors.New("x")).Code)
	assert.Equal(t, -32601, NewMethodNotFound("x").Code)
	assert.Equal(t, -32602, NewInvalidParams("x").Code)
	assert.Equal(t, -32001, NewToolNotFound("x").Code)
}
