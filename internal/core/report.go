package core

import (
	"msa2st/convert"
	"msa2st/internal/errors"
	"msa2st/internal/metrics"
	"msa2st/util"
)

// reporter is the single consumer of conversion results.  It owns the
// success count and manifest, so workers never share mutable state.
type reporter struct {
	logger    *util.Logger
	metrics   *metrics.Collector
	manifest  convert.Manifest
	converted int
}

func (rp *reporter) handle(r convert.Result) {
	switch r.Status {
	case convert.Converted:
		rp.converted++
		rp.metrics.FileConverted(r.BytesIn, r.BytesOut)
		rp.metrics.TrackAnomalies(len(r.Anomalies))
		rp.manifest.Add(r)

		rp.logger.Info("%s (%d)", r.Message(), rp.converted)
		rp.logger.Verbose("%s: %v -> %s", r.Source, r.Geometry, r.Dest)
		if n := len(r.Anomalies); n > 0 {
			rp.logger.Warn("%s: %d track(s) off nominal size, first: %v", r.Source, n, r.Anomalies[0])
		}

	case convert.Skipped:
		rp.metrics.FileSkipped()
		rp.logger.Info("%s", r.Message())
		if errors.IsDecode(r.Err) {
			rp.logger.Debug("%s: %v", r.Source, errors.KindOf(r.Err))
		}

	default:
		rp.metrics.FileFailed(r.Err.Error())
		if errors.IsTolerable(r.Err) {
			rp.logger.Verbose("%s", r.Message())
		} else {
			rp.logger.Error("%s", r.Message())
		}
	}
}

// problem logs a housekeeping failure, demoting tolerable ones.
func (rp *reporter) problem(err *errors.FSError) {
	if errors.IsTolerable(err) {
		rp.logger.Verbose("ignoring %v", err)
		return
	}
	rp.metrics.RecordError(err.Error())
	rp.logger.Error("%v", err)
}
