package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daisydays/daisy-docs-server/internal/complete"
	"github.com/daisydays/daisy-docs-server/internal/concepts"
	"github.com/daisydays/daisy-docs-server/internal/docs"
	"github.com/daisydays/daisy-docs-server/internal/protocol"
	"github.com/daisydays/daisy-docs-server/internal/render"
)

const testCorpus = "### Btn\nUse the btn class.\n### Card\nUse the card class for containers.\n"

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	engine := docs.NewEngine(docs.Parse(testCorpus, docs.ParseOptions{}), docs.SearchParams{})
	catalog, err := concepts.Load()
	require.NoError(t, err)
	registry, err := NewRegistry(BuildTools(engine, catalog, render.New())...)
	require.NoError(t, err)
	return registry
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	engine := docs.NewEngine(docs.Parse(testCorpus, docs.ParseOptions{}), docs.SearchParams{})
	catalog, err := concepts.Load()
	require.NoError(t, err)
	registry, err := NewRegistry(BuildTools(engine, catalog, render.New())...)
	require.NoError(t, err)
	return NewDispatcher(registry, complete.Build(engine, catalog), nil)
}

func makeRequest(t *testing.T, raw string) protocol.Request {
	t.Helper()
	var req protocol.Request
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return req
}

func TestDispatch_Initialize(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"initialize","id":1}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(InitializeResult)
	require.True(t, ok)
	assert.Equal(t, protocol.Version, result.ProtocolVersion)
	assert.Equal(t, serverName, result.ServerInfo.Name)
}

func TestDispatch_MethodNotFound(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"no/such","id":2}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.CodeMethodNotFound, resp.Error.Code)
	assert.Nil(t, resp.Result)
}

func TestDispatch_ToolNotFound(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"bogus_tool"},"id":3}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, protocol.CodeToolNotFound, resp.Error.Code)
}

func TestDispatch_InvalidParams(t *testing.T) {
	d := newTestDispatcher(t)

	cases := []struct {
		name   string
		params string
	}{
		{"missing required argument", `{"name":"get_doc"}`},
		{"empty required argument", `{"name":"get_doc","arguments":{"name":"  "}}`},
		{"wrong argument type", `{"name":"get_doc","arguments":{"name":7}}`},
		{"missing tool name", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := d.Dispatch(context.Background(), makeRequest(t,
				`{"protocolVersion":"1.0","method":"tools/call","params":`+tc.params+`,"id":4}`))
			require.NotNil(t, resp)
			require.NotNil(t, resp.Error)
			assert.Equal(t, protocol.CodeInvalidParams, resp.Error.Code)
		})
	}
}

func TestDispatch_SearchDocs(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"search_docs","arguments":{"query":"class"}},"id":5}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	out, ok := resp.Result.(SearchOutput)
	require.True(t, ok)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "btn", out.Results[0].Name)
	assert.Equal(t, "card", out.Results[1].Name)
	assert.Equal(t, 15, out.Results[0].Score)
}

// TestDispatch_SearchDocsEmptyQuery: an empty (or omitted) query is a
// success with an empty result set, never an error envelope.
func TestDispatch_SearchDocsEmptyQuery(t *testing.T) {
	d := newTestDispatcher(t)

	for _, params := range []string{
		`{"name":"search_docs","arguments":{"query":""}}`,
		`{"name":"search_docs","arguments":{}}`,
	} {
		resp := d.Dispatch(context.Background(), makeRequest(t,
			`{"protocolVersion":"1.0","method":"tools/call","params":`+params+`,"id":12}`))
		require.NotNil(t, resp)
		require.Nil(t, resp.Error)

		out, ok := resp.Result.(SearchOutput)
		require.True(t, ok)
		assert.Empty(t, out.Results)
		assert.NotEmpty(t, out.Message)
	}
}

// TestDispatch_GetDocMiss: a well-formed lookup that matches nothing is a
// clean result, never an error envelope.
func TestDispatch_GetDocMiss(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"get_doc","arguments":{"name":"nonexistent"}},"id":6}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	out, ok := resp.Result.(GetDocOutput)
	require.True(t, ok)
	assert.False(t, out.Found)
}

func TestDispatch_GetDocHTML(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"get_doc","arguments":{"name":" Btn ","format":"html"}},"id":7}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	out, ok := resp.Result.(GetDocOutput)
	require.True(t, ok)
	assert.True(t, out.Found)
	assert.Contains(t, out.Doc, "<h3")
}

func TestDispatch_Notification(t *testing.T) {
	d := newTestDispatcher(t)

	// No id: no envelope, for success and failure alike.
	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"list_components"}}`))
	assert.Nil(t, resp)

	resp = d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"bogus_tool"}}`))
	assert.Nil(t, resp)
}

// TestDispatch_DiscoveryMatchesInvocation: every advertised tool is
// invokable and every invokable tool is advertised.
func TestDispatch_DiscoveryMatchesInvocation(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/list","id":8}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	listed, ok := resp.Result.(ListToolsResult)
	require.True(t, ok)

	advertised := make([]string, 0, len(listed.Tools))
	for _, tool := range listed.Tools {
		advertised = append(advertised, tool.Name)
	}
	assert.Equal(t, d.Registry().Names(), advertised)

	// Each advertised tool answers an invocation without ToolNotFound.
	for _, tool := range listed.Tools {
		args := "{}"
		for _, p := range tool.Params {
			if p.Required {
				args = `{"` + p.Name + `":"probe"}`
			}
		}
		resp := d.Dispatch(context.Background(), makeRequest(t,
			`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"`+tool.Name+`","arguments":`+args+`},"id":9}`))
		require.NotNil(t, resp)
		if resp.Error != nil {
			assert.NotEqual(t, protocol.CodeToolNotFound, resp.Error.Code,
				"advertised tool %q not invokable", tool.Name)
		}
	}
}

func TestDispatch_GenerateLayoutDefaults(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"generate_layout","arguments":{}},"id":10}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	out, ok := resp.Result.(LayoutOutput)
	require.True(t, ok)
	assert.Equal(t, "saas", out.Layout)
	assert.Contains(t, out.HTML, "My App")
}

func TestDispatch_IdeaToUI(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"idea_to_ui","arguments":{"prompt":"a kanban board for my tasks"}},"id":13}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	out, ok := resp.Result.(IdeaOutput)
	require.True(t, ok)
	assert.Equal(t, "kanban", out.Layout)
	assert.Contains(t, out.HTML, "Generated UI")
}

func TestDispatch_GetConcept(t *testing.T) {
	d := newTestDispatcher(t)

	resp := d.Dispatch(context.Background(), makeRequest(t,
		`{"protocolVersion":"1.0","method":"tools/call","params":{"name":"get_concept","arguments":{"name":"Glassmorphism"}},"id":11}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	out, ok := resp.Result.(ConceptOutput)
	require.True(t, ok)
	assert.True(t, out.Found)
	assert.Contains(t, out.Classes, "glass")
}
