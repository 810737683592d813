// pipeigen renders the per-arity files of the pipei package.
// Run: go run ./cmd/pipeigen -config pipei.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"

	"github.com/syssam/pipei/compiler/gen"
	"github.com/syssam/pipei/compiler/load"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
	exitStale = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// flags holds the parsed command line.
type flags struct {
	config  string
	target  string
	arities string
	check   bool
	watch   bool
	report  string
	workers int
	verbose bool
	// configSet records whether -config was given explicitly.
	configSet bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	set := flag.NewFlagSet("pipeigen", flag.ContinueOnError)
	set.SetOutput(stderr)
	fl := &flags{}
	set.StringVar(&fl.config, "config", load.DefaultFile, "arity table to load")
	set.StringVar(&fl.target, "target", "", "output directory (overrides the table)")
	set.StringVar(&fl.arities, "arities", "", `arities to generate, e.g. "0-16, 20" (overrides the table)`)
	set.BoolVar(&fl.check, "check", false, "report stale files without writing")
	set.BoolVar(&fl.watch, "watch", false, "regenerate whenever the arity table changes")
	set.StringVar(&fl.report, "report", "", `write a JSON run report to this file ("-" for stdout)`)
	set.IntVar(&fl.workers, "workers", 0, "number of files rendered concurrently")
	set.BoolVar(&fl.verbose, "v", false, "log every file")
	if err := set.Parse(args); err != nil {
		return nil, err
	}
	if set.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", set.Args())
	}
	set.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			fl.configSet = true
		}
	})
	if fl.check && fl.watch {
		return nil, errors.New("-check and -watch are mutually exclusive")
	}
	return fl, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fl, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "pipeigen:", err)
		}
		return exitUsage
	}
	logger := newLogger(stderr, fl.verbose)
	if fl.watch {
		if err := watch(ctx, fl, logger, stdout); err != nil {
			logger.Error("watch failed", "error", err)
			return exitError
		}
		return exitOK
	}
	if err := once(ctx, fl, logger, stdout); err != nil {
		if gen.IsStaleError(err) {
			fmt.Fprintln(stderr, err)
			return exitStale
		}
		logger.Error("generation failed", "error", err)
		return exitError
	}
	return exitOK
}

// newLogger writes human readable logs to a terminal and JSON otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// once performs a single generation or check run.
func once(ctx context.Context, fl *flags, logger *slog.Logger, stdout io.Writer) error {
	g, err := newGenerator(fl, logger)
	if err != nil {
		return err
	}
	if fl.check {
		return g.Check(ctx)
	}
	report, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	return writeReport(fl.report, report, stdout)
}

// newGenerator builds a generator from the arity table and the flags that
// override it.
func newGenerator(fl *flags, logger *slog.Logger) (*gen.Generator, error) {
	opts := []gen.Option{gen.WithLogger(logger)}
	tbl, err := load.File(fl.config)
	switch {
	case err == nil:
		opts = append(opts, gen.WithTable(tbl))
		if tbl.Target == "" {
			opts = append(opts, gen.WithTarget(filepath.Dir(fl.config)))
		}
	case errors.Is(err, fs.ErrNotExist) && !fl.configSet:
		logger.Debug("no arity table, using defaults", "config", fl.config)
		opts = append(opts, gen.WithTarget("."))
	default:
		return nil, err
	}
	if fl.target != "" {
		opts = append(opts, gen.WithTarget(fl.target))
	}
	if fl.arities != "" {
		rs, err := load.ParseRanges(fl.arities)
		if err != nil {
			return nil, &load.Error{Field: "-arities", Err: err}
		}
		opts = append(opts, resetArities, gen.WithArities(rs...))
	}
	if fl.workers > 0 {
		opts = append(opts, gen.WithWorkers(fl.workers))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return gen.NewGenerator(cfg)
}

// resetArities drops arities set by the table so the flag replaces them.
func resetArities(c *gen.Config) error {
	c.Arities = nil
	return nil
}

// writeReport encodes the run report to path, or to stdout for "-".
func writeReport(path string, report *gen.Report, stdout io.Writer) error {
	if path == "" {
		return nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// watch regenerates once, then again every time the arity table is
// written, until ctx is done. Failed runs are logged and do not stop the
// watch.
func watch(ctx context.Context, fl *flags, logger *slog.Logger, stdout io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	config, err := filepath.Abs(fl.config)
	if err != nil {
		return err
	}
	// Editors replace files on save, so the directory is watched.
	if err := w.Add(filepath.Dir(config)); err != nil {
		return err
	}
	regenerate := func() {
		if err := once(ctx, fl, logger, stdout); err != nil {
			logger.Error("generation failed", "error", err)
		}
	}
	regenerate()
	logger.Info("watching arity table", "config", config)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != config || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("arity table changed", "op", ev.Op.String())
			regenerate()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
