package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daisydays/daisy-docs-server/internal/complete"
	"github.com/daisydays/daisy-docs-server/internal/metrics"
	"github.com/daisydays/daisy-docs-server/internal/protocol"
)

const (
	serverName    = "daisy-docs-server"
	serverVersion = "v0.1.0"
)

// Supported top-level methods.
const (
	MethodInitialize = "initialize"
	MethodPing       = "ping"
	MethodListTools  = "tools/list"
	MethodCallTool   = "tools/call"
)

// callParams is the params shape of a tools/call request.
type callParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Dispatcher turns decoded requests into response envelopes. It is
// stateless apart from its immutable collaborators and safe for concurrent
// use.
type Dispatcher struct {
	registry    *Registry
	completions complete.Completions
	logger      *zap.Logger
}

// NewDispatcher wires a dispatcher to a tool registry.
func NewDispatcher(registry *Registry, completions complete.Completions, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{registry: registry, completions: completions, logger: logger}
}

// Registry exposes the tool table, for transports that surface the catalog.
func (d *Dispatcher) Registry() *Registry { return d.registry }

// Dispatch handles one request and returns its response envelope. Requests
// without an id are notifications: they are processed but the returned
// envelope is nil, for success and failure alike. Every error is recovered
// here and reported through the envelope; nothing is fatal to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, req protocol.Request) *protocol.Response {
	start := time.Now()
	requestID := uuid.NewString()

	result, toolName, perr := d.handle(ctx, req)

	status := "ok"
	if perr != nil {
		status = "error"
		d.logger.Warn("request failed",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("tool", toolName),
			zap.Int("code", perr.Code),
			zap.String("error", perr.Message))
	} else {
		d.logger.Debug("request completed",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("tool", toolName),
			zap.Duration("duration", time.Since(start)))
	}
	metrics.ObserveDispatch(req.Method, toolName, status, time.Since(start))

	if !req.ID.Present() {
		return nil // notification: fire and forget
	}
	if perr != nil {
		return protocol.NewError(req.ID, perr)
	}
	return protocol.NewResult(req.ID, result)
}

func (d *Dispatcher) handle(ctx context.Context, req protocol.Request) (any, string, *protocol.Error) {
	switch req.Method {
	case MethodInitialize:
		return InitializeResult{
			ProtocolVersion: protocol.Version,
			ServerInfo:      ServerInfo{Name: serverName, Version: serverVersion},
		}, "", nil

	case MethodPing:
		return struct{}{}, "", nil

	case MethodListTools:
		return ListToolsResult{
			Tools:       d.registry.Catalog(),
			Completions: d.completions,
		}, "", nil

	case MethodCallTool:
		return d.callTool(ctx, req.Params)

	default:
		return nil, "", protocol.NewMethodNotFound(req.Method)
	}
}

func (d *Dispatcher) callTool(ctx context.Context, raw json.RawMessage) (any, string, *protocol.Error) {
	var params callParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, "", protocol.NewInvalidParams(fmt.Sprintf("malformed params: %v", err))
		}
	}
	if params.Name == "" {
		return nil, "", protocol.NewInvalidParams("missing tool name")
	}

	tool, ok := d.registry.Get(params.Name)
	if !ok {
		return nil, params.Name, protocol.NewToolNotFound(params.Name)
	}

	args := params.Arguments
	if args == nil {
		args = map[string]any{}
	}
	if perr := validateArgs(tool, args); perr != nil {
		return nil, params.Name, perr
	}

	result, err := tool.Handler(ctx, args)
	if err != nil {
		return nil, params.Name, protocol.AsError(err)
	}
	return result, params.Name, nil
}

// validateArgs checks the argument object against the tool's declared
// parameters. A missing or empty required argument is InvalidParams,
// converted to an error envelope at the dispatch boundary.
func validateArgs(tool Tool, args map[string]any) *protocol.Error {
	for _, p := range tool.Params {
		v, present := args[p.Name]
		if !present {
			if p.Required {
				return protocol.NewInvalidParams(fmt.Sprintf("missing required argument %q", p.Name))
			}
			continue
		}
		if p.Type == "string" {
			s, ok := v.(string)
			if !ok {
				return protocol.NewInvalidParams(fmt.Sprintf("argument %q must be a string", p.Name))
			}
			if p.Required && strings.TrimSpace(s) == "" {
				return protocol.NewInvalidParams(fmt.Sprintf("argument %q is empty", p.Name))
			}
		}
	}
	return nil
}
