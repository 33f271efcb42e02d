// Package config defines the runtime configuration for msa2st.
package config

import (
	"fmt"
	"path/filepath"

	"msa2st/internal/errors"
)

// Config holds every tuneable for a single conversion run.
type Config struct {
	// ── Paths ────────────────────────────────────────────────────────
	Source   string // directory tree or single .msa file
	Dest     string // destination root, or .st file for a single source
	Manifest string // optional digest manifest path

	// ── Conversion ───────────────────────────────────────────────────
	Jobs      int  // concurrent conversions
	Strict    bool // reject tracks whose size does not match the geometry
	DryRun    bool // decode only, write nothing
	KeepEmpty bool // keep destination directories that end up empty

	MaxImageSize int // largest decoded image accepted, in bytes (0 = default)

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Quiet   bool
	Stats   bool // print a JSON metrics snapshot when done
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		Jobs:         DefaultJobs(),
		MaxImageSize: DefaultMaxImageSize,
	}
}

// Verbosity folds Quiet and Verbose into a single logger level.
func (c *Config) Verbosity() int {
	if c.Quiet {
		return 0
	}
	return 1 + c.Verbose
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Source == "" {
		return &errors.ConfigError{
			Field:   "source",
			Message: "required",
			Hint:    "usage: msa2st [options] <source> <dest>",
		}
	}
	if c.Dest == "" {
		return &errors.ConfigError{
			Field:   "dest",
			Message: "required",
			Hint:    "usage: msa2st [options] <source> <dest>",
		}
	}

	if c.Jobs < 1 || c.Jobs > MaxJobs {
		return &errors.ConfigError{
			Field:   "jobs",
			Value:   c.Jobs,
			Message: fmt.Sprintf("must be between 1 and %d", MaxJobs),
			Hint:    "omit --jobs to use one worker per CPU",
		}
	}

	if c.MaxImageSize < 0 || (c.MaxImageSize > 0 && c.MaxImageSize < MinMaxImageSize) {
		return &errors.ConfigError{
			Field:   "max-size",
			Value:   c.MaxImageSize,
			Message: fmt.Sprintf("must be at least %d bytes", MinMaxImageSize),
			Hint:    fmt.Sprintf("the default is %d", DefaultMaxImageSize),
		}
	}

	if c.Quiet && c.Verbose > 0 {
		return fmt.Errorf("-q and -v are mutually exclusive")
	}

	if c.Manifest != "" && c.DryRun {
		return &errors.ConfigError{
			Field:   "manifest",
			Value:   c.Manifest,
			Message: "nothing is written with --dry-run",
			Hint:    "drop --dry-run to record digests",
		}
	}

	if c.Manifest != "" && filepath.Ext(c.Manifest) == ".st" {
		return &errors.ConfigError{
			Field:   "manifest",
			Value:   c.Manifest,
			Message: "manifest would be mistaken for a disk image",
		}
	}

	return nil
}
