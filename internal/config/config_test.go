package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daisydays/daisy-docs-server/internal/docs"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("SERVER_MODE", "")
	t.Setenv("DOCS_SEARCH_KEY_WEIGHT", "")
	t.Setenv("DOCS_DUPLICATE_POLICY", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.ServerMode)
	assert.Equal(t, docs.DefaultSearchParams(), cfg.Search)
	assert.Equal(t, docs.KeepLast, cfg.DuplicatePolicy)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("SERVER_MODE", "true")
	t.Setenv("DOCS_SEARCH_KEY_WEIGHT", "200")
	t.Setenv("DOCS_SEARCH_MAX_RESULTS", "5")
	t.Setenv("DOCS_DUPLICATE_POLICY", "first")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.True(t, cfg.ServerMode)
	assert.Equal(t, 200, cfg.Search.KeyMatchWeight)
	assert.Equal(t, 5, cfg.Search.MaxResults)
	assert.Equal(t, docs.KeepFirst, cfg.DuplicatePolicy)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("DOCS_SEARCH_TERM_WEIGHT", "not-a-number")

	cfg := Load()

	assert.Equal(t, docs.DefaultSearchParams().TermMatchWeight, cfg.Search.TermMatchWeight)
}
