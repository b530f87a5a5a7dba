// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// OpenAIAPIKey enables the narrative rewrite collaborator when set.
	// With no key the feature is disabled and local explanations are used.
	OpenAIAPIKey string

	// OpenAIModel is the chat model name. Defaults to "gpt-4o-mini".
	OpenAIModel string

	// OpenAIBaseURL overrides the API endpoint, e.g. for a compatible proxy.
	OpenAIBaseURL string

	// NarrativeTimeout bounds each rewrite call. Defaults to 8s.
	// Set NARRATIVE_TIMEOUT_MS to override.
	NarrativeTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Nothing is strictly required: the server runs fully without an OpenAI key.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		NarrativeTimeout: 8 * time.Second,
	}

	if raw := os.Getenv("NARRATIVE_TIMEOUT_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			cfg.NarrativeTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
