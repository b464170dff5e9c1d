// Package docs parses the embedded DaisyUI documentation corpus into an
// immutable store and answers lookup, listing, and scored search queries
// against it.
package docs

import (
	_ "embed"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

//go:embed corpus.txt
var rawCorpus string

// headingMarker introduces a new entry in the corpus text.
const headingMarker = "### "

// Entry is one named documentation unit. Key is the trimmed, lowercased
// heading remainder; Body is the trimmed text including the heading line.
type Entry struct {
	Key  string
	Body string
}

// DuplicatePolicy controls what happens when a heading normalizes to a key
// that was already finalized earlier in the corpus.
type DuplicatePolicy int

const (
	// KeepLast overwrites the earlier entry. This mirrors the historical
	// behavior of the corpus loader and is the default.
	KeepLast DuplicatePolicy = iota
	// KeepFirst ignores the later entry.
	KeepFirst
)

// ParseOptions configures corpus parsing.
type ParseOptions struct {
	// Duplicates selects the duplicate-heading policy. Default KeepLast.
	Duplicates DuplicatePolicy
	// MinTokenLength is the minimum length of a word to enter the term
	// index. Zero means DefaultSearchParams().MinTokenLength.
	MinTokenLength int
	// Logger, when set, receives a warning for every duplicate heading.
	Logger *zap.Logger
}

// Store is the immutable result of parsing: entries keyed by normalized
// name plus a term index mapping token to the keys of entries whose bodies
// contain it. It is built once and never mutated, so it is safe to share
// across concurrent readers without locking.
type Store struct {
	entries map[string]Entry
	index   map[string][]string
}

// Load parses the embedded corpus.
func Load(opts ParseOptions) *Store {
	return Parse(rawCorpus, opts)
}

// Parse scans the corpus line by line. A heading line starts a new entry
// and becomes the first line of its body; lines before the first heading
// are discarded. The term index is built from the surviving entries, so a
// body displaced by the duplicate policy leaves no postings behind.
func Parse(raw string, opts ParseOptions) *Store {
	minLen := opts.MinTokenLength
	if minLen <= 0 {
		minLen = DefaultSearchParams().MinTokenLength
	}

	entries := make(map[string]Entry)

	var currentKey string
	var body strings.Builder

	finalize := func() {
		if currentKey == "" {
			return
		}
		if _, exists := entries[currentKey]; exists {
			if opts.Logger != nil {
				opts.Logger.Warn("duplicate heading in corpus",
					zap.String("key", currentKey),
					zap.String("policy", policyName(opts.Duplicates)))
			}
			if opts.Duplicates == KeepFirst {
				return
			}
		}
		entries[currentKey] = Entry{Key: currentKey, Body: strings.TrimSpace(body.String())}
	}

	for _, line := range strings.Split(raw, "\n") {
		if rest, ok := strings.CutPrefix(line, headingMarker); ok {
			finalize()
			currentKey = strings.ToLower(strings.TrimSpace(rest))
			body.Reset()
			body.WriteString(line)
			body.WriteString("\n")
			continue
		}
		if currentKey == "" {
			continue // no entry to attach to yet
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	finalize()

	s := &Store{
		entries: entries,
		index:   make(map[string][]string),
	}
	for key, entry := range entries {
		for _, token := range Tokenize(entry.Body, minLen) {
			s.index[token] = append(s.index[token], key)
		}
	}
	return s
}

// Tokenize splits text on whitespace, lowercases each word, strips
// surrounding punctuation, and keeps words of at least minLen runes.
// Repeated tokens are kept; the index is used for membership only.
func Tokenize(text string, minLen int) []string {
	var tokens []string
	for _, word := range strings.Fields(text) {
		token := strings.TrimFunc(strings.ToLower(word), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if len([]rune(token)) >= minLen {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Get returns the entry for an exact normalized key.
func (s *Store) Get(key string) (Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// Keys returns all entry keys in unspecified order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.entries) }

// indexed reports whether the index lists key under token.
func (s *Store) indexed(token, key string) bool {
	for _, k := range s.index[token] {
		if k == key {
			return true
		}
	}
	return false
}

func policyName(p DuplicatePolicy) string {
	if p == KeepFirst {
		return "keep-first"
	}
	return "keep-last"
}
