package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/daisydays/daisy-docs-server/internal/protocol"
)

// maxLineBytes bounds a single inbound message.
const maxLineBytes = 4 * 1024 * 1024

// Loop reads newline-delimited JSON requests from r and writes one
// response per non-notification request to w. Processing is strictly
// sequential: each message is fully decoded, dispatched, and answered
// before the next is read.
type Loop struct {
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewLoop creates a serve loop around a dispatcher.
func NewLoop(dispatcher *Dispatcher, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{dispatcher: dispatcher, logger: logger}
}

// Run blocks until end of input, a write failure, or context cancellation.
// A malformed line yields a ParseError envelope and the loop continues;
// per-message failures never terminate it.
func (l *Loop) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal(line, &req); err != nil {
			l.logger.Warn("malformed request line", zap.Error(err))
			resp := protocol.NewError(protocol.RequestID{}, protocol.NewParseError(err))
			if werr := enc.Encode(resp); werr != nil {
				return fmt.Errorf("write response: %w", werr)
			}
			continue
		}

		resp := l.dispatcher.Dispatch(ctx, req)
		if resp == nil {
			continue // notification
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}
