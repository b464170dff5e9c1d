package docs

import (
	"errors"
	"sort"
	"strings"
)

// ErrEmptyName is returned by Get for an empty component name. Callers
// treat it as a missing required argument, distinct from ErrNotFound.
var ErrEmptyName = errors.New("component name is empty")

// ErrNotFound is returned by Get when a well-formed name matches nothing.
// It is a clean miss, never promoted to a protocol error.
var ErrNotFound = errors.New("component not found")

// SearchParams holds the scoring constants. They are named and overridable
// rather than baked into the algorithm.
type SearchParams struct {
	// KeyMatchWeight is added when the key contains the query as a substring.
	KeyMatchWeight int
	// BodyMatchWeight is added when the lowercased body contains the query.
	BodyMatchWeight int
	// TermMatchWeight is added per distinct query term whose index posting
	// lists the entry.
	TermMatchWeight int
	// MinTokenLength is the minimum word length admitted to the term index.
	MinTokenLength int
	// MaxResults caps the ranked result list.
	MaxResults int
}

// DefaultSearchParams returns the stock weights: 100/10/5, tokens of at
// least 5 runes, top 20 results.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		KeyMatchWeight:  100,
		BodyMatchWeight: 10,
		TermMatchWeight: 5,
		MinTokenLength:  5,
		MaxResults:      20,
	}
}

// Result is one scored search hit.
type Result struct {
	Name  string `json:"name"`
	Doc   string `json:"doc"`
	Score int    `json:"score"`
}

// Engine answers queries against an immutable Store.
type Engine struct {
	store  *Store
	params SearchParams
}

// NewEngine wraps a store with the given scoring parameters. Zero-valued
// fields fall back to the defaults; a negative weight disables that scoring
// component outright.
func NewEngine(store *Store, params SearchParams) *Engine {
	def := DefaultSearchParams()
	if params.KeyMatchWeight == 0 {
		params.KeyMatchWeight = def.KeyMatchWeight
	}
	if params.BodyMatchWeight == 0 {
		params.BodyMatchWeight = def.BodyMatchWeight
	}
	if params.TermMatchWeight == 0 {
		params.TermMatchWeight = def.TermMatchWeight
	}
	if params.KeyMatchWeight < 0 {
		params.KeyMatchWeight = 0
	}
	if params.BodyMatchWeight < 0 {
		params.BodyMatchWeight = 0
	}
	if params.TermMatchWeight < 0 {
		params.TermMatchWeight = 0
	}
	if params.MinTokenLength <= 0 {
		params.MinTokenLength = def.MinTokenLength
	}
	if params.MaxResults <= 0 {
		params.MaxResults = def.MaxResults
	}
	return &Engine{store: store, params: params}
}

// Params returns the effective scoring parameters.
func (e *Engine) Params() SearchParams { return e.params }

// List returns all entry keys in ascending lexicographic order.
func (e *Engine) List() []string {
	keys := e.store.Keys()
	sort.Strings(keys)
	return keys
}

// Get looks up an entry by name, case-insensitively and ignoring
// surrounding whitespace.
func (e *Engine) Get(name string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Entry{}, ErrEmptyName
	}
	entry, ok := e.store.Get(key)
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// Search scores every entry against the query and returns the ranked
// matches. An empty query yields an empty result set. The score is
// KeyMatchWeight for a substring hit on the key, BodyMatchWeight for a
// substring hit on the lowercased body, and TermMatchWeight per distinct
// query term indexed for the entry. Zero-score entries are excluded;
// results sort by score descending, key ascending, capped at MaxResults.
func (e *Engine) Search(query string) []Result {
	if query == "" {
		return []Result{}
	}
	q := strings.ToLower(query)
	terms := distinctTerms(q)

	results := make([]Result, 0)
	for _, key := range e.store.Keys() {
		entry, _ := e.store.Get(key)
		score := 0
		if strings.Contains(key, q) {
			score += e.params.KeyMatchWeight
		}
		if strings.Contains(strings.ToLower(entry.Body), q) {
			score += e.params.BodyMatchWeight
		}
		for _, term := range terms {
			if e.store.indexed(term, key) {
				score += e.params.TermMatchWeight
			}
		}
		if score > 0 {
			results = append(results, Result{Name: key, Doc: entry.Body, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Name < results[j].Name
	})
	if len(results) > e.params.MaxResults {
		results = results[:e.params.MaxResults]
	}
	return results
}

// distinctTerms splits a lowercased query on whitespace and drops repeats,
// preserving first-seen order.
func distinctTerms(q string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, t := range strings.Fields(q) {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}
	return terms
}
