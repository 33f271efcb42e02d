// Package errors provides domain-specific error types for msa2st.
//
// These types carry structured context (kind, track, side, offset, path)
// that lets callers decide how to handle a failure without matching on
// message text.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrTooShort       = errors.New("truncated header")
	ErrBadMagic       = errors.New("invalid format: not an MSA image")
	ErrTruncated      = errors.New("unexpected end of input")
	ErrMalformedTrack = errors.New("malformed track")
)

// ── Decode errors ────────────────────────────────────────────────────

// Kind classifies a decode failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindTooShort
	KindBadMagic
	KindTruncated
	KindMalformedTrack
)

func (k Kind) String() string {
	switch k {
	case KindTooShort:
		return "TooShort"
	case KindBadMagic:
		return "BadMagic"
	case KindTruncated:
		return "Truncated"
	case KindMalformedTrack:
		return "MalformedTrack"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindTooShort:
		return ErrTooShort
	case KindBadMagic:
		return ErrBadMagic
	case KindTruncated:
		return ErrTruncated
	case KindMalformedTrack:
		return ErrMalformedTrack
	default:
		return nil
	}
}

// DecodeError describes why an MSA buffer could not be decoded.
type DecodeError struct {
	Kind   Kind
	Op     string // "header", "length", "literal", "escape", "raw", "verify"
	Offset int    // byte offset into the input where the failure was detected
	Track  int    // -1 when not inside a track
	Side   int    // -1 when not inside a track
	Detail string // optional free-form explanation
}

func (e *DecodeError) Error() string {
	s := fmt.Sprintf("msa %s", e.Op)
	if e.Track >= 0 {
		s += fmt.Sprintf(" track %d side %d", e.Track, e.Side)
	}
	s += fmt.Sprintf(" at offset %d: %v", e.Offset, e.Kind.sentinel())
	if e.Detail != "" {
		s += " (" + e.Detail + ")"
	}
	return s
}

// Unwrap exposes the kind sentinel so errors.Is(err, ErrTruncated) works.
func (e *DecodeError) Unwrap() error { return e.Kind.sentinel() }

// ── Filesystem errors ────────────────────────────────────────────────

// FSKind classifies a filesystem failure independently of the platform's
// numeric error codes.
type FSKind int

const (
	FSOther FSKind = iota
	FSNotFound
	FSPermissionDenied
)

func (k FSKind) String() string {
	switch k {
	case FSNotFound:
		return "NotFound"
	case FSPermissionDenied:
		return "PermissionDenied"
	default:
		return "Other"
	}
}

// FSError represents a failed filesystem operation on a path.
type FSError struct {
	Op   string // "read", "write", "mkdir", "walk", "remove"
	Path string
	Kind FSKind
	Err  error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error { return e.Err }

// ── Config errors ────────────────────────────────────────────────────

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Header creates a DecodeError for a failure outside any track.
func Header(kind Kind, offset int, detail string) *DecodeError {
	return &DecodeError{Kind: kind, Op: "header", Offset: offset, Track: -1, Side: -1, Detail: detail}
}

// Track creates a DecodeError located inside a track.
func Track(kind Kind, op string, track, side, offset int, detail string) *DecodeError {
	return &DecodeError{Kind: kind, Op: op, Offset: offset, Track: track, Side: side, Detail: detail}
}

// WrapFS creates an FSError, classifying the underlying error.
func WrapFS(op, path string, err error) *FSError {
	return &FSError{Op: op, Path: path, Kind: ClassifyFS(err), Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// KindOf returns the decode kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// IsDecode reports whether err is a decode failure (as opposed to I/O).
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// ClassifyFS maps err onto NotFound / PermissionDenied / Other.
// ENOTDIR counts as NotFound: a path component vanished or was replaced.
func ClassifyFS(err error) FSKind {
	if err == nil {
		return FSOther
	}
	var fe *FSError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return FSNotFound
	case errors.Is(err, fs.ErrPermission):
		return FSPermissionDenied
	}
	return FSOther
}

// IsTolerable reports whether a housekeeping failure may be ignored.
func IsTolerable(err error) bool {
	if err == nil {
		return true
	}
	k := ClassifyFS(err)
	return k == FSNotFound || k == FSPermissionDenied
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use msa2st/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }
