// Package render converts corpus entry bodies from markdown to HTML and
// extracts heading outlines.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
)

// OutlineItem is one heading in an entry body.
type OutlineItem struct {
	Title string `json:"title"`
	Level int    `json:"level"`
}

// Renderer wraps a configured goldmark instance. Safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a renderer with auto heading IDs enabled so outline
// extraction can address headings.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// HTML renders a markdown body to HTML.
func (r *Renderer) HTML(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Outline returns the heading hierarchy of a markdown body, flattened in
// document order. Bodies without headings yield an empty outline.
func (r *Renderer) Outline(source []byte) ([]OutlineItem, error) {
	doc := r.md.Parser().Parse(text.NewReader(source))
	tree, err := toc.Inspect(doc, source,
		toc.MinDepth(1),
		toc.MaxDepth(6),
		toc.Compact(true),
	)
	if err != nil {
		return nil, fmt.Errorf("inspect outline: %w", err)
	}
	items := make([]OutlineItem, 0)
	flattenItems(tree.Items, 1, &items)
	return items, nil
}

func flattenItems(items toc.Items, level int, out *[]OutlineItem) {
	for _, item := range items {
		if len(item.Title) > 0 {
			*out = append(*out, OutlineItem{Title: string(item.Title), Level: level})
		}
		if len(item.Items) > 0 {
			flattenItems(item.Items, level+1, out)
		}
	}
}
