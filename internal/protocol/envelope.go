// Package protocol defines the wire envelopes for the newline-delimited
// JSON request/response protocol spoken by the server.
package protocol

import "encoding/json"

// Version is the protocol version stamped on every envelope.
const Version = "1.0"

// RequestID carries a request id while preserving the distinction between
// an absent id (a notification) and an explicit null. The raw bytes are
// mirrored verbatim into the response.
type RequestID struct {
	raw     json.RawMessage
	present bool
}

// UnmarshalJSON records the raw id bytes. It is invoked for any id value
// present in the request, including an explicit null.
func (id *RequestID) UnmarshalJSON(b []byte) error {
	id.raw = append(json.RawMessage(nil), b...)
	id.present = true
	return nil
}

// MarshalJSON emits the id exactly as it arrived, or null when unset.
func (id RequestID) MarshalJSON() ([]byte, error) {
	if !id.present || len(id.raw) == 0 {
		return []byte("null"), nil
	}
	return id.raw, nil
}

// Present reports whether the request carried an id at all. Requests
// without one are notifications and never receive a response.
func (id RequestID) Present() bool { return id.present }

// Raw returns the verbatim id bytes, or nil when the id was absent.
func (id RequestID) Raw() json.RawMessage { return id.raw }

// Request is one decoded inbound message.
type Request struct {
	ProtocolVersion string          `json:"protocolVersion"`
	Method          string          `json:"method"`
	Params          json.RawMessage `json:"params,omitempty"`
	ID              RequestID       `json:"id,omitempty"`
}

// Response is one outbound message. Exactly one of Result and Error is set.
type Response struct {
	ProtocolVersion string          `json:"protocolVersion"`
	Result          any             `json:"result,omitempty"`
	Error           *Error          `json:"error,omitempty"`
	ID              json.RawMessage `json:"id"`
}

// NewResult builds a success response mirroring the request id.
func NewResult(id RequestID, result any) *Response {
	return &Response{
		ProtocolVersion: Version,
		Result:          result,
		ID:              responseID(id),
	}
}

// NewError builds an error response mirroring the request id.
func NewError(id RequestID, err *Error) *Response {
	return &Response{
		ProtocolVersion: Version,
		Error:           err,
		ID:              responseID(id),
	}
}

func responseID(id RequestID) json.RawMessage {
	if !id.Present() || len(id.Raw()) == 0 {
		return json.RawMessage("null")
	}
	return id.Raw()
}
