package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the MSA2ST_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := envInt("MSA2ST_JOBS"); v > 0 {
		cfg.Jobs = v
	}
	if envBool("MSA2ST_STRICT") {
		cfg.Strict = true
	}
	if envBool("MSA2ST_DRY_RUN") {
		cfg.DryRun = true
	}
	if envBool("MSA2ST_KEEP_EMPTY") {
		cfg.KeepEmpty = true
	}
	if v := envInt("MSA2ST_MAX_SIZE"); v > 0 {
		cfg.MaxImageSize = v
	}
	if v := os.Getenv("MSA2ST_MANIFEST"); v != "" {
		cfg.Manifest = v
	}

	// Output
	if v := envInt("MSA2ST_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("MSA2ST_QUIET") {
		cfg.Quiet = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
