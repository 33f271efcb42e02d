// Package metrics provides lightweight, lock-free counters for tracking
// the progress and outcome of a conversion run.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a conversion run.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	filesFound     atomic.Int64
	filesConverted atomic.Int64
	filesSkipped   atomic.Int64
	filesFailed    atomic.Int64
	bytesIn        atomic.Int64
	bytesOut       atomic.Int64
	anomalies      atomic.Int64
	dirsPruned     atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── File metrics ─────────────────────────────────────────────────────

// FileFound records a discovered source image.
func (c *Collector) FileFound() {
	if c == nil {
		return
	}
	c.filesFound.Add(1)
}

// FileConverted records a successful conversion and its sizes.
func (c *Collector) FileConverted(in, out int64) {
	if c == nil {
		return
	}
	c.filesConverted.Add(1)
	c.bytesIn.Add(in)
	c.bytesOut.Add(out)
}

// FileSkipped records a source that was not a decodable MSA image.
func (c *Collector) FileSkipped() {
	if c == nil {
		return
	}
	c.filesSkipped.Add(1)
}

// FileFailed records an I/O failure and stores the message.
func (c *Collector) FileFailed(msg string) {
	if c == nil {
		return
	}
	c.filesFailed.Add(1)
	c.RecordError(msg)
}

// Converted returns the number of images written.
func (c *Collector) Converted() int64 {
	if c == nil {
		return 0
	}
	return c.filesConverted.Load()
}

// Skipped returns the number of sources that could not be decoded.
func (c *Collector) Skipped() int64 {
	if c == nil {
		return 0
	}
	return c.filesSkipped.Load()
}

// Failed returns the number of I/O failures.
func (c *Collector) Failed() int64 {
	if c == nil {
		return 0
	}
	return c.filesFailed.Load()
}

// ── Decoder metrics ──────────────────────────────────────────────────

// TrackAnomalies records n tracks whose decoded size was off-nominal.
func (c *Collector) TrackAnomalies(n int) {
	if c == nil || n == 0 {
		return
	}
	c.anomalies.Add(int64(n))
}

// ── Housekeeping ─────────────────────────────────────────────────────

// DirPruned records the removal of an empty destination directory.
func (c *Collector) DirPruned() {
	if c == nil {
		return
	}
	c.dirsPruned.Add(1)
}

// RecordError stores the most recent error message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// Elapsed returns the time since the collector was created.
func (c *Collector) Elapsed() time.Duration {
	if c == nil {
		return 0
	}
	return time.Since(c.startTime)
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Elapsed          string `json:"elapsed"`
	FilesFound       int64  `json:"files_found"`
	FilesConverted   int64  `json:"files_converted"`
	FilesSkipped     int64  `json:"files_skipped"`
	FilesFailed      int64  `json:"files_failed"`
	BytesIn          int64  `json:"bytes_in"`
	BytesOut         int64  `json:"bytes_out"`
	TrackAnomalies   int64  `json:"track_anomalies"`
	DirsPruned       int64  `json:"dirs_pruned"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Elapsed:        time.Since(c.startTime).Truncate(time.Millisecond).String(),
		FilesFound:     c.filesFound.Load(),
		FilesConverted: c.filesConverted.Load(),
		FilesSkipped:   c.filesSkipped.Load(),
		FilesFailed:    c.filesFailed.Load(),
		BytesIn:        c.bytesIn.Load(),
		BytesOut:       c.bytesOut.Load(),
		TrackAnomalies: c.anomalies.Load(),
		DirsPruned:     c.dirsPruned.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
