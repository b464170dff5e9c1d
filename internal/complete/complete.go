// Package complete builds argument-completion candidates that editor
// clients can offer for tool arguments. The candidates ride along with the
// discovery response.
package complete

import (
	"github.com/daisydays/daisy-docs-server/internal/concepts"
	"github.com/daisydays/daisy-docs-server/internal/docs"
	"github.com/daisydays/daisy-docs-server/internal/layout"
)

// maxDocCandidates caps component-name completion lists.
const maxDocCandidates = 20

// Completions maps tool name to argument name to candidate values.
type Completions map[string]map[string][]string

// Build assembles the completion catalog from the loaded corpus and
// concept catalog.
func Build(engine *docs.Engine, catalog *concepts.Catalog) Completions {
	components := engine.List()
	if len(components) > maxDocCandidates {
		components = components[:maxDocCandidates]
	}
	return Completions{
		"get_doc":         {"name": components},
		"doc_outline":     {"name": components},
		"get_concept":     {"name": catalog.Names()},
		"generate_layout": {"layout": layout.Names},
	}
}
