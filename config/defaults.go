package config

import (
	"runtime"

	"msa2st/msa"
)

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// SourceExt is matched case-insensitively against candidate files.
	SourceExt = ".msa"

	// DestExt replaces SourceExt on converted images.
	DestExt = ".st"

	// MaxJobs caps the worker pool.
	MaxJobs = 256

	// DefaultMaxImageSize bounds decoded output per image.
	DefaultMaxImageSize = msa.DefaultMaxImageSize

	// MinMaxImageSize is one sector.
	MinMaxImageSize = msa.SectorSize

	// DefaultDirPerm and DefaultFilePerm apply to created output.
	DefaultDirPerm  = 0o755
	DefaultFilePerm = 0o644
)

// DefaultJobs is one worker per logical CPU.
func DefaultJobs() int {
	return runtime.NumCPU()
}
