// Package main provides the entropy command.  It reads a text file, builds a
// Huffman code for its characters and prints the character counts, the code
// table and the encoded bit pattern.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	huffman "github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/color"
	"github.com/chronos-tachyon/huffmantext/internal/config"
	"github.com/chronos-tachyon/huffmantext/internal/logging"
	"github.com/chronos-tachyon/huffmantext/internal/report"
	"github.com/chronos-tachyon/huffmantext/internal/terminal"
	"github.com/chronos-tachyon/huffmantext/internal/textsource"
)

const emptyInputMessage = "The file is empty, please add something to it."

var errTooManyArgs = errors.New("at most one input path may be given")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printUsage(fs, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level, _ := cfg.Log.Level.ToSlogLevel()
	logger := logging.NewLogger(stderr, level, logging.GenerateRunID())

	text, err := textsource.Read(cfg.Input.Path, cfg.Input.MaxBytes, stdin)
	if err != nil {
		logger.Error("Text source unavailable", "path", cfg.Input.Path, "error", err)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("Text read", "path", cfg.Input.Path, "bytes", len(text))

	if len(text) == 0 {
		_, _ = fmt.Fprintln(stderr, emptyInputMessage)
		return 1
	}

	palette := color.None
	if terminal.ShouldColor(cfg.Report.Color, fdOf(stdout), terminal.OS) {
		palette = color.ANSI
	}

	if err := encodeAndReport(text, cfg, logger, report.New(stdout, palette)); err != nil {
		logger.Error("Encoding failed", "error", err)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func encodeAndReport(text string, cfg *config.Config, logger *slog.Logger, r *report.Reporter) error {
	freq, err := huffman.CountFrequenciesParallel(text, cfg.Count.Workers)
	if err != nil {
		return err
	}
	logger.Debug("Frequencies counted",
		"characters", freq.Total(),
		"distinct", freq.Len(),
		"workers", cfg.Count.Workers)
	r.Frequencies(freq)

	var e huffman.Encoder
	e.Init(freq)
	logger.Debug("Codes generated",
		"merges", e.Tree().Merges(),
		"min_bits", e.MinSize(),
		"max_bits", e.MaxSize())
	r.Codes(e.Codes())

	bits := e.Encode(text)
	logger.Debug("Text encoded", "bits", len(bits))
	r.Bits(bits)

	if cfg.Report.Stats {
		r.Stats(huffman.ComputeStats(freq, e.Codes()))
	}
	if cfg.Report.Tree {
		r.Tree(e.Tree())
	}
	return r.Flush()
}

func parseArgs(args []string, stderr io.Writer) (*config.Config, *flag.FlagSet, error) {
	options := struct {
		configPath string
		workers    int
		maxBytes   int64
		color      string
		logLevel   string
		stats      bool
		tree       bool
	}{}

	fs := flag.NewFlagSet("entropy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&options.configPath, "config", "", "Path to a TOML configuration file")
	fs.IntVar(&options.workers, "workers", config.DefaultWorkers, "Number of concurrent frequency counting workers")
	fs.Int64Var(&options.maxBytes, "max-bytes", 0, "Refuse input larger than this many bytes (0 = unlimited)")
	fs.StringVar(&options.color, "color", string(config.ColorAuto), "Color the report: auto, always or never")
	fs.StringVar(&options.logLevel, "log-level", string(config.LogLevelInfo), "Log level: debug, info, warn or error")
	fs.BoolVar(&options.stats, "stats", false, "Print compression statistics")
	fs.BoolVar(&options.tree, "tree", false, "Print the Huffman tree")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 1 {
		return nil, fs, errTooManyArgs
	}

	cfg := config.Default()
	if options.configPath != "" {
		loaded, err := config.Load(options.configPath)
		if err != nil {
			return nil, fs, err
		}
		cfg = loaded
	}

	// Explicitly set flags override the file.
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Count.Workers = options.workers
		case "max-bytes":
			cfg.Input.MaxBytes = options.maxBytes
		case "color":
			mode, err := config.ParseColorMode(options.color)
			if err != nil {
				visitErr = err
			}
			cfg.Report.Color = mode
		case "log-level":
			var level config.LogLevel
			if err := level.UnmarshalText([]byte(options.logLevel)); err != nil {
				visitErr = err
			}
			cfg.Log.Level = level
		case "stats":
			cfg.Report.Stats = options.stats
		case "tree":
			cfg.Report.Tree = options.tree
		}
	})
	if visitErr != nil {
		return nil, fs, visitErr
	}
	if fs.NArg() == 1 {
		cfg.Input.Path = fs.Arg(0)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fs, err
	}
	return cfg, fs, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [<file>|-]\n", filepath.Base(os.Args[0]))
	fs.PrintDefaults()
}

// fdOf returns the file descriptor behind w, or ^uintptr(0) if w is not a
// file.
func fdOf(w io.Writer) uintptr {
	if f, ok := w.(*os.File); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}
