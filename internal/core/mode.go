// Package core is the orchestration layer.  It composes discovery,
// conversion and reporting into complete operational modes and provides
// a builder that selects the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	msa  →  convert  →  core  →  cmd (CLI)
package core

import "context"

// Mode represents a complete operational mode of msa2st (a directory
// tree or a single file).  Each mode owns its run from discovery to the
// final summary.
type Mode interface {
	Run(ctx context.Context) error
}
