// Package config reads server configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/daisydays/daisy-docs-server/internal/docs"
)

// Config holds the server configuration.
type Config struct {
	// Env selects the logger profile: "prod" or anything else for dev.
	Env string
	// Port for the HTTP listener (health/metrics, and /rpc in server mode).
	Port string
	// ServerMode serves the protocol over HTTP instead of stdio.
	ServerMode bool
	// LogLevel overrides the default log level when non-empty.
	LogLevel string
	// Search holds the scoring parameters, overridable per deployment.
	Search docs.SearchParams
	// DuplicatePolicy is "last" (default) or "first".
	DuplicatePolicy docs.DuplicatePolicy
}

// Load reads configuration from environment variables, applying defaults.
// Call godotenv.Load beforehand to pick up a local .env file.
func Load() Config {
	def := docs.DefaultSearchParams()
	return Config{
		Env:        getEnv("APP_ENV", "dev"),
		Port:       getEnv("PORT", "8080"),
		ServerMode: getEnv("SERVER_MODE", "false") == "true",
		LogLevel:   getEnv("LOG_LEVEL", ""),
		Search: docs.SearchParams{
			KeyMatchWeight:  getEnvInt("DOCS_SEARCH_KEY_WEIGHT", def.KeyMatchWeight),
			BodyMatchWeight: getEnvInt("DOCS_SEARCH_BODY_WEIGHT", def.BodyMatchWeight),
			TermMatchWeight: getEnvInt("DOCS_SEARCH_TERM_WEIGHT", def.TermMatchWeight),
			MinTokenLength:  getEnvInt("DOCS_SEARCH_MIN_TOKEN_LEN", def.MinTokenLength),
			MaxResults:      getEnvInt("DOCS_SEARCH_MAX_RESULTS", def.MaxResults),
		},
		DuplicatePolicy: duplicatePolicy(getEnv("DOCS_DUPLICATE_POLICY", "last")),
	}
}

func duplicatePolicy(v string) docs.DuplicatePolicy {
	if v == "first" {
		return docs.KeepFirst
	}
	return docs.KeepLast
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}
