package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var tinyMSA = []byte{
	0x0E, 0x0F, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x04, 0xE5, 0x00, 0x02, 0x00,
}

// TestExecute_Version verifies --version prints a version string.
func TestExecute_Version(t *testing.T) {
	err := Execute(context.Background(), []string{"--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_Help verifies --help (and no args) returns without error.
func TestExecute_Help(t *testing.T) {
	for _, args := range [][]string{{"--help"}, {}} {
		name := "no-args"
		if len(args) > 0 {
			name = args[0]
		}
		t.Run(name, func(t *testing.T) {
			err := Execute(context.Background(), args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestExecute_InvalidFlags verifies unknown flags produce an error.
func TestExecute_InvalidFlags(t *testing.T) {
	err := Execute(context.Background(), []string{"--nonexistent-flag"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

// TestExecute_Positional verifies argument count checking.
func TestExecute_Positional(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantSub string
	}{
		{"source only", []string{"-q", "in"}, "destination required"},
		{"too many", []string{"a", "b", "c"}, "too many arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Execute(context.Background(), tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err, tt.wantSub)
			}
		})
	}
}

// TestExecute_InvalidJobs verifies configuration errors surface.
func TestExecute_InvalidJobs(t *testing.T) {
	err := Execute(context.Background(), []string{"-j", "0", t.TempDir(), t.TempDir()})
	if err == nil {
		t.Fatal("expected error for zero jobs")
	}
	if !strings.Contains(err.Error(), "--jobs") {
		t.Errorf("error should name the flag: %v", err)
	}
}

// TestExecute_MaxSize verifies --max-size reaches the decoder: an image
// larger than the cap is skipped and nothing is written.
func TestExecute_MaxSize(t *testing.T) {
	twoTracks := []byte{
		0x0E, 0x0F, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x00, 0x04, 0xE5, 0x00, 0x02, 0x00,
		0x00, 0x04, 0xE5, 0x00, 0x02, 0x00,
	}
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "disk.msa"), twoTracks, 0o644); err != nil {
		t.Fatal(err)
	}

	capped := filepath.Join(t.TempDir(), "out")
	if err := Execute(context.Background(), []string{"-q", "--keep-empty", "--max-size", "512", src, capped}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(capped, "disk.st")); !os.IsNotExist(err) {
		t.Error("image over the cap must not be written")
	}

	roomy := filepath.Join(t.TempDir(), "out")
	if err := Execute(context.Background(), []string{"-q", "--max-size", "1024", src, roomy}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(roomy, "disk.st")); err != nil {
		t.Errorf("image at the cap should convert: %v", err)
	}
}

// TestExecute_InvalidMaxSize verifies a cap below one sector is rejected.
func TestExecute_InvalidMaxSize(t *testing.T) {
	err := Execute(context.Background(), []string{"--max-size", "511", t.TempDir(), t.TempDir()})
	if err == nil {
		t.Fatal("expected error for max size below one sector")
	}
	if !strings.Contains(err.Error(), "--max-size") {
		t.Errorf("error should name the flag: %v", err)
	}
}

// TestExecute_ConflictingFlags verifies -q and -v conflict is caught.
func TestExecute_ConflictingFlags(t *testing.T) {
	err := Execute(context.Background(), []string{"-q", "-v", t.TempDir(), t.TempDir()})
	if err == nil {
		t.Fatal("expected error for -q and -v conflict")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("error should mention mutually exclusive: %v", err)
	}
}

// TestExecute_ConvertTree runs a full tree conversion.
func TestExecute_ConvertTree(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	if err := os.MkdirAll(filepath.Join(src, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "sub", "disk.msa"), tinyMSA, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Execute(context.Background(), []string{"-q", "-j", "2", "--strict", src, dest}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "sub", "disk.st"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 512 {
		t.Errorf("output size = %d, want 512", len(got))
	}
}

// TestExecute_DryRun verifies --dry-run converts nothing to disk.
func TestExecute_DryRun(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")
	if err := os.WriteFile(filepath.Join(src, "disk.msa"), tinyMSA, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Execute(context.Background(), []string{"-q", "--dry-run", src, dest}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("dry run must not create the destination")
	}
}

// TestExecute_SingleFileFailure verifies a bad single file fails the run.
func TestExecute_SingleFileFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.msa")
	if err := os.WriteFile(src, make([]byte, 20), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Execute(context.Background(), []string{"-q", src, filepath.Join(dir, "bad.st")}); err == nil {
		t.Fatal("expected error for non-MSA input")
	}
}

// TestExecute_MissingSource verifies a missing source is reported.
func TestExecute_MissingSource(t *testing.T) {
	err := Execute(context.Background(), []string{"-q", filepath.Join(t.TempDir(), "nope"), t.TempDir()})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}
