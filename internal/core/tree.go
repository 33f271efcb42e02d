package core

import (
	"context"
	"fmt"
	"time"

	"msa2st/config"
	"msa2st/convert"
	"msa2st/internal/metrics"
	"msa2st/util"
)

// TreeMode converts every .msa file below Source into a mirrored tree
// of .st files below Dest.
type TreeMode struct {
	Source   string
	Dest     string
	Workers  int
	Options  convert.Options
	Prune    bool   // remove destination directories left empty
	Manifest string // digest manifest path, empty for none
	Logger   *util.Logger
	Metrics  *metrics.Collector
}

// Run discovers, converts and reports.  Individual files that cannot
// be converted never fail the run; only an unreadable source, a failed
// manifest write or cancellation does.
func (m *TreeMode) Run(ctx context.Context) error {
	m.Logger.Verbose("scanning %s", m.Source)

	tree, err := convert.Discover(ctx, m.Source, m.Dest)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}

	rp := &reporter{logger: m.Logger, metrics: m.Metrics}
	for _, p := range tree.Problems {
		rp.problem(p)
	}

	total := len(tree.Jobs)
	for range tree.Jobs {
		m.Metrics.FileFound()
	}
	if total == 0 {
		m.Logger.Info("no %s files found under %s", config.SourceExt, m.Source)
	} else {
		m.Logger.Verbose("found %d image(s), converting with %d worker(s)", total, m.Workers)
	}

	done := 0
	for r := range convert.Run(ctx, tree.Jobs, m.Workers, m.Options) {
		done++
		rp.handle(r)
		m.Logger.Progress(done, total)
	}
	m.Logger.EndProgress()

	if m.Prune {
		removed, problems := convert.PruneEmpty(m.Dest, tree.Dirs)
		for _, dir := range removed {
			m.Metrics.DirPruned()
			m.Logger.Info("directory %s is empty and was removed", dir)
		}
		for _, p := range problems {
			rp.problem(p)
		}
	}

	if m.Manifest != "" {
		if err := rp.manifest.WriteFile(m.Manifest); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
		m.Logger.Verbose("wrote %d digest(s) to %s", rp.manifest.Len(), m.Manifest)
	}

	m.Logger.Info("%d converted, %d skipped, %d failed in %s",
		m.Metrics.Converted(), m.Metrics.Skipped(), m.Metrics.Failed(),
		m.Metrics.Elapsed().Round(time.Millisecond))

	return ctx.Err()
}
