package gen

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
)

// Generator renders one source file per configured arity.
// Rendering is pure: the same configuration and arity always produce the
// same bytes, and no state is shared between arities, so files are rendered
// in parallel.
type Generator struct {
	cfg      *Config
	features []Feature
	scope    Scope
	workers  int
	log      *slog.Logger
}

// NewGenerator creates a generator for a validated configuration.
//
// Example:
//
//	cfg, err := gen.NewConfig(gen.WithTarget("."), gen.WithArities(0, 1, 2))
//	if err != nil {
//		return err
//	}
//	g, err := gen.NewGenerator(cfg)
//	if err != nil {
//		return err
//	}
//	report, err := g.Generate(ctx)
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	features, err := resolveFeatures(cfg.Features)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:      cfg,
		features: features,
		scope:    newScope(features, cfg.Names),
		workers:  cfg.Workers,
		log:      cfg.Logger,
	}
	if g.workers <= 0 {
		g.workers = 1
	}
	if g.log == nil {
		g.log = DefaultConfig().Logger
	}
	return g, nil
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// Config returns the configuration of the generator.
func (g *Generator) Config() *Config {
	return g.cfg
}

// Features returns the enabled features in emission order.
func (g *Generator) Features() []Feature {
	return slices.Clone(g.features)
}

// NewFile creates a jen file for arity a with the generated-code header and
// the build constraint that gates it.
func (g *Generator) NewFile(a Arity) *jen.File {
	f := jen.NewFile(g.cfg.Package)
	f.HeaderComment(headerLine(g.cfg.Header) + "\n\n//go:build " + a.Constraint(g.cfg.SelectTag, g.cfg.TagPrefix))
	return f
}

// Render returns the formatted source of the file for arity a.
func (g *Generator) Render(a Arity) ([]byte, error) {
	if a.N < 0 || a.N > ArityLimit {
		return nil, NewArityError(a.N, ArityLimit, "out of range")
	}
	f := g.NewFile(a)
	for _, feature := range g.features {
		feature.Emitter().Emit(f, a, g.scope)
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, NewGenerationError("render", a.FileName(), "", err)
	}
	return format(filepath.Join(g.cfg.Target, a.FileName()), buf.Bytes())
}

// Report summarises a generation run.
type Report struct {
	Target    string        `json:"target"`
	Package   string        `json:"package"`
	Arities   int           `json:"arities"`
	Features  []string      `json:"features"`
	Written   []string      `json:"written"`
	Unchanged []string      `json:"unchanged"`
	Removed   []string      `json:"removed"`
	Bytes     int64         `json:"bytes"`
	Duration  time.Duration `json:"duration"`
}

// Changed reports whether the run modified the target directory.
func (r *Report) Changed() bool {
	return len(r.Written) > 0 || len(r.Removed) > 0
}

// rendered is the result of rendering one arity.
type rendered struct {
	arity Arity
	path  string
	src   []byte
}

// renderAll renders every configured arity in parallel. Results are returned
// in ascending arity order.
func (g *Generator) renderAll(ctx context.Context) ([]rendered, error) {
	arities, err := g.cfg.ArityList()
	if err != nil {
		return nil, err
	}
	out := make([]rendered, len(arities))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, a := range arities {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := g.Render(a)
			if err != nil {
				return err
			}
			out[i] = rendered{arity: a, path: filepath.Join(g.cfg.Target, a.FileName()), src: src}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Generate renders every configured arity, writes the files whose content
// changed and removes generated files of arities that are no longer
// configured.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	start := time.Now()
	if err := os.MkdirAll(g.cfg.Target, 0o755); err != nil {
		return nil, NewGenerationError("write", "", "create target directory", err)
	}
	files, err := g.renderAll(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{
		Target:   g.cfg.Target,
		Package:  g.cfg.Package,
		Arities:  len(files),
		Features: g.featureNames(),
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := writeIfChanged(f.path, f.src)
		if err != nil {
			return nil, err
		}
		name := f.arity.FileName()
		if res == written {
			report.Written = append(report.Written, name)
		} else {
			report.Unchanged = append(report.Unchanged, name)
		}
		report.Bytes += int64(len(f.src))
		g.log.Debug("generate file", "file", name, "arity", f.arity.N, "outcome", res, "bytes", len(f.src))
	}
	orphans, err := g.orphans()
	if err != nil {
		return nil, err
	}
	for _, o := range orphans {
		if err := os.Remove(filepath.Join(g.cfg.Target, o.name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, NewGenerationError("cleanup", o.name, "remove stale file", err)
		}
		report.Removed = append(report.Removed, o.name)
		g.log.Debug("remove file", "file", o.name, "arity", o.arity)
	}
	report.Duration = time.Since(start)
	g.log.Info("generation finished",
		"target", report.Target,
		"arities", report.Arities,
		"written", len(report.Written),
		"unchanged", len(report.Unchanged),
		"removed", len(report.Removed),
		"duration", report.Duration,
	)
	return report, nil
}

// Check renders every configured arity without writing and compares the
// result with the target directory. It returns a *StaleError when a file is
// missing, differs, or belongs to an arity that is no longer configured.
func (g *Generator) Check(ctx context.Context) error {
	files, err := g.renderAll(ctx)
	if err != nil {
		return err
	}
	stale := &StaleError{}
	for _, f := range files {
		current, err := os.ReadFile(f.path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale.Missing = append(stale.Missing, f.arity.FileName())
		case err != nil:
			return NewGenerationError("check", f.arity.FileName(), "read existing file", err)
		case !bytes.Equal(current, f.src):
			stale.Outdated = append(stale.Outdated, f.arity.FileName())
		}
	}
	orphans, err := g.orphans()
	if err != nil {
		return err
	}
	for _, o := range orphans {
		stale.Orphaned = append(stale.Orphaned, o.name)
	}
	if stale.Len() > 0 {
		g.log.Info("generated files are stale", "missing", len(stale.Missing), "outdated", len(stale.Outdated), "orphaned", len(stale.Orphaned))
		return stale
	}
	g.log.Info("generated files are up to date", "arities", len(files))
	return nil
}

// orphans returns the generated files in the target directory whose arity
// is not configured.
func (g *Generator) orphans() ([]generatedFile, error) {
	arities, err := g.cfg.ArityList()
	if err != nil {
		return nil, err
	}
	existing, err := scanGenerated(g.cfg.Target, g.cfg.Header)
	if err != nil {
		return nil, err
	}
	var orphans []generatedFile
	for _, f := range existing {
		if !slices.ContainsFunc(arities, func(a Arity) bool { return a.N == f.arity }) {
			orphans = append(orphans, f)
		}
	}
	return orphans, nil
}

func (g *Generator) featureNames() []string {
	names := make([]string, len(g.features))
	for i, f := range g.features {
		names[i] = f.Name
	}
	return names
}

// Generate is the convenience function that builds a configuration from
// opts and runs a generator over it.
func Generate(ctx context.Context, opts ...Option) (*Report, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	g, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}
