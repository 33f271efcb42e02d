package core

import (
	"os"
	"path/filepath"

	"msa2st/config"
	"msa2st/convert"
	"msa2st/internal/errors"
	"msa2st/internal/metrics"
	"msa2st/util"
)

// Build constructs the appropriate Mode from the given configuration.
// A directory source converts a tree; a regular file converts alone.
func Build(cfg *config.Config, logger *util.Logger, m *metrics.Collector) (Mode, error) {
	fi, err := os.Stat(cfg.Source)
	if err != nil {
		return nil, errors.WrapFS("stat", cfg.Source, err)
	}

	if fi.IsDir() {
		return buildTree(cfg, logger, m), nil
	}
	return buildFile(cfg, logger, m), nil
}

// ── mode builders ────────────────────────────────────────────────────

func buildTree(cfg *config.Config, logger *util.Logger, m *metrics.Collector) Mode {
	return &TreeMode{
		Source:   cfg.Source,
		Dest:     cfg.Dest,
		Workers:  cfg.Jobs,
		Options:  buildOptions(cfg),
		Prune:    !cfg.KeepEmpty && !cfg.DryRun && !samePath(cfg.Source, cfg.Dest),
		Manifest: cfg.Manifest,
		Logger:   logger,
		Metrics:  m,
	}
}

func buildFile(cfg *config.Config, logger *util.Logger, m *metrics.Collector) Mode {
	dest := cfg.Dest
	rel := filepath.Base(dest)
	if !util.HasExtFold(dest, config.DestExt) {
		rel = util.ReplaceExt(filepath.Base(cfg.Source), config.DestExt)
		dest = filepath.Join(cfg.Dest, rel)
	}

	return &FileMode{
		Job:      convert.Job{Source: cfg.Source, Dest: dest, Rel: rel},
		Options:  buildOptions(cfg),
		Manifest: cfg.Manifest,
		Logger:   logger,
		Metrics:  m,
	}
}

// ── shared helpers ───────────────────────────────────────────────────

func buildOptions(cfg *config.Config) convert.Options {
	return convert.Options{
		Strict:       cfg.Strict,
		DryRun:       cfg.DryRun,
		Digest:       cfg.Manifest != "",
		MaxImageSize: cfg.MaxImageSize,
	}
}

// samePath reports whether a and b name the same directory.  Pruning is
// disabled for in-place conversion so empty source directories survive.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
