package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daisydays/daisy-docs-server/internal/concepts"
	"github.com/daisydays/daisy-docs-server/internal/docs"
	"github.com/daisydays/daisy-docs-server/internal/layout"
	"github.com/daisydays/daisy-docs-server/internal/protocol"
	"github.com/daisydays/daisy-docs-server/internal/render"
)

// BuildTools assembles the static tool table binding the query engine,
// concept catalog, layout generator, and markdown renderer.
func BuildTools(engine *docs.Engine, catalog *concepts.Catalog, renderer *render.Renderer) []Tool {
	return []Tool{
		{
			Name:        "search_docs",
			Description: "Search daisyUI component documentation by keyword. Returns up to the top 20 scored matches.",
			Params: []Param{
				{Name: "query", Type: "string", Required: false, Description: "Search keywords; an empty query matches nothing"},
			},
			Handler: makeSearchHandler(engine),
		},
		{
			Name:        "get_doc",
			Description: "Retrieve the documentation for one component by name. Lookup is case-insensitive.",
			Params: []Param{
				{Name: "name", Type: "string", Required: true, Description: "Component name"},
				{Name: "format", Type: "string", Required: false, Description: "Output format: markdown (default) or html"},
			},
			Handler: makeGetDocHandler(engine, renderer),
		},
		{
			Name:        "list_components",
			Description: "List all documented component names in ascending order.",
			Handler:     makeListComponentsHandler(engine),
		},
		{
			Name:        "get_concept",
			Description: "Retrieve a design concept card: description, classes, suggestion, and snippet.",
			Params: []Param{
				{Name: "name", Type: "string", Required: true, Description: "Concept name"},
			},
			Handler: makeGetConceptHandler(catalog),
		},
		{
			Name:        "list_concepts",
			Description: "List all design concept names.",
			Handler:     makeListConceptsHandler(catalog),
		},
		{
			Name:        "generate_layout",
			Description: "Generate a full daisyUI page scaffold for a layout name.",
			Params: []Param{
				{Name: "layout", Type: "string", Required: false, Description: "Layout name, defaults to saas"},
				{Name: "title", Type: "string", Required: false, Description: "Page title, defaults to My App"},
			},
			Handler: makeGenerateLayoutHandler(),
		},
		{
			Name:        "list_layouts",
			Description: "List the supported layout names.",
			Handler:     makeListLayoutsHandler(),
		},
		{
			Name:        "idea_to_ui",
			Description: "Turn a free-text idea into a daisyUI page scaffold. Keywords in the prompt pick the layout.",
			Params: []Param{
				{Name: "prompt", Type: "string", Required: true, Description: "Describe the page you want"},
			},
			Handler: makeIdeaToUIHandler(),
		},
		{
			Name:        "doc_outline",
			Description: "Extract the heading outline of one component's documentation.",
			Params: []Param{
				{Name: "name", Type: "string", Required: true, Description: "Component name"},
			},
			Handler: makeOutlineHandler(engine, renderer),
		},
	}
}

func makeSearchHandler(engine *docs.Engine) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		query, _ := stringArg(args, "query")
		results := engine.Search(query)
		out := SearchOutput{Results: results}
		if len(results) == 0 {
			out.Message = fmt.Sprintf("No results found for %q. Try broader search terms.", query)
		}
		return out, nil
	}
}

func makeGetDocHandler(engine *docs.Engine, renderer *render.Renderer) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		name, _ := stringArg(args, "name")
		format, _ := stringArg(args, "format")
		if format == "" {
			format = "markdown"
		}
		if format != "markdown" && format != "html" {
			return nil, protocol.NewInvalidParams(fmt.Sprintf("unknown format %q: want markdown or html", format))
		}

		entry, err := engine.Get(name)
		if errors.Is(err, docs.ErrNotFound) {
			return GetDocOutput{Name: strings.ToLower(strings.TrimSpace(name)), Found: false}, nil
		}
		if err != nil {
			return nil, protocol.NewInvalidParams(err.Error())
		}

		doc := entry.Body
		if format == "html" {
			doc, err = renderer.HTML([]byte(entry.Body))
			if err != nil {
				return nil, err
			}
		}
		return GetDocOutput{Name: entry.Key, Doc: doc, Format: format, Found: true}, nil
	}
}

func makeListComponentsHandler(engine *docs.Engine) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		components := engine.List()
		return ListComponentsOutput{Components: components, Count: len(components)}, nil
	}
}

func makeGetConceptHandler(catalog *concepts.Catalog) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		name, _ := stringArg(args, "name")
		concept, ok := catalog.Get(name)
		if !ok {
			return ConceptOutput{Name: strings.ToLower(strings.TrimSpace(name)), Found: false}, nil
		}
		return ConceptOutput{
			Name:        concept.Name,
			Description: concept.Description,
			Classes:     concept.Classes,
			Suggestion:  concept.Suggestion,
			Snippet:     concept.Snippet,
			Markdown:    concept.Markdown(),
			Found:       true,
		}, nil
	}
}

func makeListConceptsHandler(catalog *concepts.Catalog) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		names := catalog.Names()
		return ListConceptsOutput{Concepts: names, Count: len(names)}, nil
	}
}

func makeGenerateLayoutHandler() Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		name, _ := stringArg(args, "layout")
		if name == "" {
			name = layout.DefaultName
		}
		title, _ := stringArg(args, "title")
		if title == "" {
			title = "My App"
		}
		if !layout.Known(name) {
			name = layout.DefaultName
		}
		title = layout.Sanitize(title)
		return LayoutOutput{
			Layout: name,
			Title:  title,
			HTML:   layout.Generate(name, title),
		}, nil
	}
}

func makeIdeaToUIHandler() Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		prompt, _ := stringArg(args, "prompt")
		name := layout.Suggest(prompt)
		return IdeaOutput{
			Prompt: prompt,
			Layout: name,
			HTML:   layout.Generate(name, "Generated UI"),
		}, nil
	}
}

func makeListLayoutsHandler() Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		return ListLayoutsOutput{Layouts: layout.Names}, nil
	}
}

func makeOutlineHandler(engine *docs.Engine, renderer *render.Renderer) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		name, _ := stringArg(args, "name")
		entry, err := engine.Get(name)
		if errors.Is(err, docs.ErrNotFound) {
			return OutlineOutput{Name: strings.ToLower(strings.TrimSpace(name)), Found: false}, nil
		}
		if err != nil {
			return nil, protocol.NewInvalidParams(err.Error())
		}
		items, err := renderer.Outline([]byte(entry.Body))
		if err != nil {
			return nil, err
		}
		return OutlineOutput{Name: entry.Key, Items: items, Found: true}, nil
	}
}

// stringArg reads a string argument, reporting whether it was present and
// of the right type.
func stringArg(args map[string]any, name string) (string, bool) {
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
