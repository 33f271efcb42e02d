package core

import (
	"context"
	"fmt"

	"msa2st/convert"
	"msa2st/internal/metrics"
	"msa2st/util"
)

// FileMode converts a single image.
type FileMode struct {
	Job      convert.Job
	Options  convert.Options
	Manifest string
	Logger   *util.Logger
	Metrics  *metrics.Collector
}

// Run converts the image and reports the result.  Unlike TreeMode, a
// file that cannot be converted is an error.
func (m *FileMode) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.Metrics.FileFound()
	rp := &reporter{logger: m.Logger, metrics: m.Metrics}

	r := convert.ConvertFile(m.Job, m.Options)
	rp.handle(r)
	if r.Status != convert.Converted {
		return r.Err
	}

	if m.Manifest != "" {
		if err := rp.manifest.WriteFile(m.Manifest); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}
	return nil
}
