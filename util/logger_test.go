package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(3) // debug level
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Verbose("v")
	l.Debug("d")

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), output)
	}

	wantPrefixes := []string{"[ERR]", "[WRN]", "[INF]", "[VRB]", "[DBG]"}
	for i, prefix := range wantPrefixes {
		if !strings.Contains(lines[i], prefix) {
			t.Errorf("line %d %q missing prefix %q", i, lines[i], prefix)
		}
	}
}

func TestLogger_QuietMode(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(0) // quiet
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.Info("should not appear")
	l.Verbose("should not appear")
	l.Debug("should not appear")
	l.Error("always appears")

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 1 {
		t.Errorf("expected 1 line in quiet mode, got %d:\n%s", len(lines), output)
	}
}

func TestLogger_Timestamps(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)
	l.SetTimestamps(true)

	l.Info("test")

	output := buf.String()
	// Timestamp format is "HH:MM:SS.mmm"
	if !strings.Contains(output, ":") || len(output) < 15 {
		t.Errorf("expected timestamp prefix, got %q", output)
	}
}

func TestLogger_WarnLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1) // normal
	l.SetOutput(&buf)
	l.SetTimestamps(false)

	l.Warn("warning message")

	if !strings.Contains(buf.String(), "[WRN]") {
		t.Errorf("expected [WRN] prefix, got %q", buf.String())
	}
}

func TestLogger_Progress(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(1)
	l.SetOutput(&buf)
	l.SetTimestamps(false)
	l.SetProgress(true)

	l.Progress(1, 4)
	if !strings.Contains(buf.String(), "[1/4]") {
		t.Fatalf("expected progress line, got %q", buf.String())
	}

	buf.Reset()
	l.Info("converted a.msa")
	out := buf.String()
	if !strings.HasPrefix(out, "\r\033[K[INF]") {
		t.Errorf("progress line should be cleared before a message, got %q", out)
	}

	buf.Reset()
	l.EndProgress()
	if buf.Len() != 0 {
		t.Errorf("nothing drawn, EndProgress should write nothing, got %q", buf.String())
	}
}

func TestLogger_ProgressDisabled(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		enabled   bool
	}{
		{"not a terminal", 1, false},
		{"verbose", 2, true},
		{"quiet", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(tt.verbosity)
			l.SetOutput(&buf)
			l.SetProgress(tt.enabled)

			l.Progress(3, 9)
			if buf.Len() != 0 {
				t.Errorf("expected no progress output, got %q", buf.String())
			}
		})
	}
}

func TestBufPool_RoundTrip(t *testing.T) {
	buf := GetBuf()
	if buf == nil {
		t.Fatal("GetBuf returned nil")
	}
	if buf.Len() != 0 {
		t.Errorf("fresh buffer length = %d, want 0", buf.Len())
	}

	buf.WriteString("leftover")
	PutBuf(buf)

	buf2 := GetBuf()
	if buf2 == nil {
		t.Fatal("second GetBuf returned nil")
	}
	if buf2.Len() != 0 {
		t.Errorf("pooled buffer was not reset: %q", buf2.String())
	}
	PutBuf(buf2)
}

func TestPutBuf_Nil(t *testing.T) {
	// Should not panic.
	PutBuf(nil)
}

func TestPutBuf_Oversized(t *testing.T) {
	// Should not panic; the buffer is simply dropped.
	PutBuf(bytes.NewBuffer(make([]byte, 0, maxPooledBuf+1)))
}
