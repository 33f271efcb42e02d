// Package cmd wires up the CLI flags and dispatches to the conversion core.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"msa2st/config"
	"msa2st/internal/core"
	"msa2st/internal/metrics"
	"msa2st/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X msa2st/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs a conversion.
func Execute(ctx context.Context, args []string) error {
	cfg := config.Default()
	config.LoadFromEnv(cfg)
	envVerbose := cfg.Verbose

	fs := flag.NewFlagSet("msa2st", flag.ContinueOnError)

	// ── conversion ───────────────────────────────────────────────
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Number of images converted in parallel")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Reject tracks whose size does not match the header geometry")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", cfg.DryRun, "Decode and report, but write nothing")
	fs.BoolVar(&cfg.KeepEmpty, "keep-empty", cfg.KeepEmpty, "Keep destination directories that end up empty")
	fs.IntVar(&cfg.MaxImageSize, "max-size", cfg.MaxImageSize, "Largest decoded image accepted, in bytes")

	// ── output ───────────────────────────────────────────────────
	fs.StringVarP(&cfg.Manifest, "manifest", "m", cfg.Manifest, "Write BLAKE2b-256 digests of converted images to this file")
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Only print errors")
	fs.BoolVar(&cfg.Stats, "stats", false, "Print run statistics as JSON on stdout")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("msa2st %s\n", version)
		return nil
	}

	if !fs.Changed("verbose") {
		cfg.Verbose = envVerbose
	}

	// ── positional arguments ─────────────────────────────────────
	if err := parsePositional(cfg, fs.Args()); err != nil {
		return err
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbosity())
	logger.SetProgress(term.IsTerminal(int(os.Stderr.Fd())))
	collector := metrics.New()

	mode, err := core.Build(cfg, logger, collector)
	if err != nil {
		return err
	}

	runErr := mode.Run(ctx)
	if cfg.Stats {
		fmt.Println(collector.JSON())
	}
	return runErr
}

// ── helpers ──────────────────────────────────────────────────────────

func parsePositional(cfg *config.Config, remaining []string) error {
	switch len(remaining) {
	case 0:
		return fmt.Errorf("source and destination required (use --help for usage)")
	case 1:
		cfg.Source = remaining[0]
		return fmt.Errorf("destination required (use --help for usage)")
	case 2:
		cfg.Source = remaining[0]
		cfg.Dest = remaining[1]
		return nil
	default:
		return fmt.Errorf("too many arguments: expected <source> <dest>")
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `msa2st – MSA to ST disk image converter v%s

Converts Atari ST .msa disk images into raw .st sector images.

Usage:
  msa2st [options] <source-dir> <dest-dir>     Convert a directory tree
  msa2st [options] <file.msa> <dest>           Convert a single image

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  msa2st ~/atari/msa ~/atari/st               Mirror a tree as .st files
  msa2st -j 1 --strict disks out              Serial, reject odd tracks
  msa2st -n -v disks out                      Check images, write nothing
  msa2st game.msa game.st                     Convert one image
  msa2st -m out/BLAKE2SUMS disks out          Record digests of outputs
`)
}
