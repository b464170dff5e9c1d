// Package concepts serves the static catalog of design concepts shipped
// with the server. The catalog is embedded as YAML and loaded once at
// startup.
package concepts

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed concepts.yaml
var rawCatalog []byte

// Concept is one design concept with the classes and snippet that apply it.
type Concept struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Classes     []string `yaml:"classes" json:"classes"`
	Suggestion  string   `yaml:"suggestion" json:"suggestion"`
	Snippet     string   `yaml:"snippet" json:"snippet"`
}

// Markdown renders the concept as a display card.
func (c Concept) Markdown() string {
	return fmt.Sprintf(
		"## %s\n\n**Description:** %s\n\n**Classes:** %s\n\n**Suggestion:** %s\n\n```html\n%s\n```",
		c.Name, c.Description, strings.Join(c.Classes, ", "), c.Suggestion, c.Snippet)
}

// Catalog is the immutable concept table keyed by lowercased concept id.
type Catalog struct {
	concepts map[string]Concept
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	concepts := make(map[string]Concept)
	if err := yaml.Unmarshal(rawCatalog, &concepts); err != nil {
		return nil, fmt.Errorf("parse concept catalog: %w", err)
	}
	return &Catalog{concepts: concepts}, nil
}

// Get looks up a concept case-insensitively.
func (c *Catalog) Get(name string) (Concept, bool) {
	concept, ok := c.concepts[strings.ToLower(strings.TrimSpace(name))]
	return concept, ok
}

// Names returns all concept ids in ascending order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.concepts))
	for name := range c.concepts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of concepts.
func (c *Catalog) Len() int { return len(c.concepts) }
