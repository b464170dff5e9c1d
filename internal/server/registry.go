package server

import (
	"context"
	"fmt"
	"sort"
)

// Handler executes one tool call with already-validated arguments.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Param describes one tool parameter for the discovery catalog.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Tool is one registry entry: schema plus handler.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`
	Handler     Handler `json:"-"`
}

// Registry is the static table of invokable tools. The discovery catalog
// and the dispatcher both resolve through this one map, so the advertised
// and invokable sets cannot drift.
type Registry struct {
	tools map[string]Tool
	names []string
}

// NewRegistry builds a registry from the given tools. Duplicate names and
// nil handlers are registration errors.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if t.Handler == nil {
			return nil, fmt.Errorf("tool %q has no handler", t.Name)
		}
		if _, dup := r.tools[t.Name]; dup {
			return nil, fmt.Errorf("tool %q registered twice", t.Name)
		}
		r.tools[t.Name] = t
		r.names = append(r.names, t.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Get resolves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the tool names in ascending order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Catalog returns the full tool table for client discovery, handlers
// excluded, in name order.
func (r *Registry) Catalog() []Tool {
	catalog := make([]Tool, 0, len(r.names))
	for _, name := range r.names {
		t := r.tools[name]
		t.Handler = nil
		catalog = append(catalog, t)
	}
	return catalog
}
