package protocol

import (
	"errors"
	"fmt"
)

// Numeric error codes carried in error envelopes.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603
	CodeToolNotFound   = -32001
)

// Error is the error object embedded in a response envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// NewParseError reports an inbound message that is not well-formed JSON.
func NewParseError(cause error) *Error {
	return &Error{Code: CodeParseError, Message: "parse error", Data: cause.Error()}
}

// NewMethodNotFound reports an unsupported top-level method.
func NewMethodNotFound(method string) *Error {
	return &Error{Code: CodeMethodNotFound, Message: fmt.Sprintf("method not found: %s", method)}
}

// NewInvalidParams reports a missing or malformed tool argument.
func NewInvalidParams(msg string) *Error {
	return &Error{Code: CodeInvalidParams, Message: msg}
}

// NewToolNotFound reports an unknown tool name in an invoke call.
func NewToolNotFound(name string) *Error {
	return &Error{Code: CodeToolNotFound, Message: fmt.Sprintf("tool not found: %s", name)}
}

// NewInternal wraps an unexpected handler failure.
func NewInternal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "internal error", Data: cause.Error()}
}

// AsError coerces any handler error into a protocol *Error so that every
// failure crossing the dispatch boundary carries a numeric code.
func AsError(err error) *Error {
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}
	return NewInternal(err)
}
