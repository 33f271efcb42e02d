package convert

import (
	"fmt"

	"msa2st/msa"
)

// Status is the outcome of converting one file.
type Status int

const (
	// Converted means the ST image was decoded and written.
	Converted Status = iota
	// Skipped means the source is not a decodable MSA image.
	Skipped
	// Failed means a filesystem operation failed.
	Failed
)

func (s Status) String() string {
	switch s {
	case Converted:
		return "converted"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result reports what happened to a single job.  Results are plain
// values handed back to the caller, which owns all aggregation.
type Result struct {
	Job
	Status    Status
	Err       error
	BytesIn   int64
	BytesOut  int64
	Geometry  msa.Geometry
	Anomalies []msa.Anomaly
	Digest    string // hex BLAKE2b-256 of the ST image, if requested
}

// Message is the human-readable line reported for the result.
func (r Result) Message() string {
	switch r.Status {
	case Converted:
		return fmt.Sprintf("converted %s", r.Source)
	case Skipped:
		return fmt.Sprintf("could not convert %s, skipping: %v", r.Source, r.Err)
	default:
		return fmt.Sprintf("error processing %s: %v", r.Source, r.Err)
	}
}
