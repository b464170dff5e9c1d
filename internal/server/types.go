// Package server dispatches protocol requests onto the query engine and
// companion tools.
package server

import (
	"github.com/daisydays/daisy-docs-server/internal/complete"
	"github.com/daisydays/daisy-docs-server/internal/docs"
	"github.com/daisydays/daisy-docs-server/internal/render"
)

// InitializeResult answers the lifecycle handshake.
type InitializeResult struct {
	ProtocolVersion string     `json:"protocolVersion"`
	ServerInfo      ServerInfo `json:"serverInfo"`
}

// ServerInfo identifies this server to clients.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ListToolsResult is the discovery payload: the full tool catalog plus
// argument-completion candidates for editor clients.
type ListToolsResult struct {
	Tools       []Tool               `json:"tools"`
	Completions complete.Completions `json:"completions,omitempty"`
}

// SearchOutput contains scored search results.
type SearchOutput struct {
	Results []docs.Result `json:"results"`
	Message string        `json:"message,omitempty"`
}

// GetDocOutput contains one looked-up document. Found is false on a clean
// miss; a miss is never an error envelope.
type GetDocOutput struct {
	Name   string `json:"name"`
	Doc    string `json:"doc,omitempty"`
	Format string `json:"format,omitempty"`
	Found  bool   `json:"found"`
}

// ListComponentsOutput contains all entry keys in ascending order.
type ListComponentsOutput struct {
	Components []string `json:"components"`
	Count      int      `json:"count"`
}

// ConceptOutput contains one design concept.
type ConceptOutput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Classes     []string `json:"classes,omitempty"`
	Suggestion  string   `json:"suggestion,omitempty"`
	Snippet     string   `json:"snippet,omitempty"`
	Markdown    string   `json:"markdown,omitempty"`
	Found       bool     `json:"found"`
}

// ListConceptsOutput contains all concept names.
type ListConceptsOutput struct {
	Concepts []string `json:"concepts"`
	Count    int      `json:"count"`
}

// LayoutOutput contains one generated page scaffold.
type LayoutOutput struct {
	Layout string `json:"layout"`
	Title  string `json:"title"`
	HTML   string `json:"html"`
}

// IdeaOutput contains the scaffold picked for a free-text prompt.
type IdeaOutput struct {
	Prompt string `json:"prompt"`
	Layout string `json:"layout"`
	HTML   string `json:"html"`
}

// ListLayoutsOutput contains the supported layout names.
type ListLayoutsOutput struct {
	Layouts []string `json:"layouts"`
}

// OutlineOutput contains the heading outline of one document.
type OutlineOutput struct {
	Name  string               `json:"name"`
	Items []render.OutlineItem `json:"items"`
	Found bool                 `json:"found"`
}
