package gen

import (
	"go/token"
	"io"
	"log/slog"
	"regexp"
	"runtime"
	"slices"

	"github.com/syssam/pipei/compiler/load"
)

const (
	// ArityLimit is the largest arity the generator supports.
	ArityLimit = load.MaxArity
	// DefaultMaxArity is the largest arity generated when no explicit list
	// of arities is configured.
	DefaultMaxArity = ArityLimit
	// DefaultPackage is the package name of the generated files.
	DefaultPackage = "pipei"
	// DefaultHeader is the first line of every generated file.
	DefaultHeader = "Code generated by pipeigen. DO NOT EDIT."
	// DefaultTagPrefix prefixes the per-arity build tag.
	DefaultTagPrefix = "pipei_arity"
	// DefaultSelectTag switches from "every arity" to "tagged arities only".
	DefaultSelectTag = "pipei_select"
)

// buildTag matches the characters the go command accepts in a build tag.
var buildTag = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// Config holds the configuration for a generation run.
type Config struct {
	// Target is the directory the arity files are written to.
	Target string
	// Package is the package name of the generated files.
	Package string
	// Header is the first line of every generated file. It is also how
	// stale files are recognised before they are removed.
	Header string
	// Arities lists the arities to generate. When empty, every arity in
	// 0..MaxArity is generated.
	Arities []int
	// MaxArity is the largest arity allowed.
	MaxArity int
	// Features enables the families of declarations to emit. When empty,
	// the default features are emitted.
	Features []Feature
	// Names overrides the exported base identifier of the curried, pipe
	// and tap families, keyed by family. Values are stored camelized.
	Names map[string]string
	// TagPrefix prefixes the per-arity build tag.
	TagPrefix string
	// SelectTag is the build tag that restricts the build to tagged arities.
	SelectTag string
	// Logger receives per-file outcomes and the run summary.
	Logger *slog.Logger
	// Workers bounds the number of files rendered concurrently.
	Workers int
}

// DefaultConfig returns a Config with every field except Target set to its
// default.
func DefaultConfig() *Config {
	return &Config{
		Package:   DefaultPackage,
		Header:    DefaultHeader,
		MaxArity:  DefaultMaxArity,
		TagPrefix: DefaultTagPrefix,
		SelectTag: DefaultSelectTag,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// Validate checks that the configuration can be generated from.
func (c *Config) Validate() error {
	if c.Target == "" {
		return NewConfigError("Target", nil, "missing target directory")
	}
	if !token.IsIdentifier(c.Package) {
		return NewConfigError("Package", c.Package, "not a valid package name")
	}
	if c.MaxArity < 0 || c.MaxArity > ArityLimit {
		return NewArityError(c.MaxArity, ArityLimit, "max arity out of range")
	}
	for _, tag := range []struct{ option, value string }{
		{"TagPrefix", c.TagPrefix},
		{"SelectTag", c.SelectTag},
	} {
		if !buildTag.MatchString(tag.value) {
			return NewConfigError(tag.option, tag.value, "not a valid build tag")
		}
	}
	if c.TagPrefix == c.SelectTag {
		return NewConfigError("SelectTag", c.SelectTag, "must differ from the tag prefix")
	}
	if _, err := c.ArityList(); err != nil {
		return err
	}
	if err := checkNames(c.Names); err != nil {
		return err
	}
	_, err := resolveFeatures(c.Features)
	return err
}

// ArityList returns the configured arities in ascending order without
// duplicates.
func (c *Config) ArityList() ([]Arity, error) {
	ns := c.Arities
	if len(ns) == 0 {
		ns = make([]int, c.MaxArity+1)
		for i := range ns {
			ns[i] = i
		}
	}
	ns = slices.Clone(ns)
	slices.Sort(ns)
	ns = slices.Compact(ns)
	list := make([]Arity, 0, len(ns))
	for _, n := range ns {
		if n < 0 || n > c.MaxArity {
			return nil, NewArityError(n, c.MaxArity, "out of range")
		}
		list = append(list, Arity{N: n})
	}
	return list, nil
}

// FeatureEnabled reports if the given feature name is enabled.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := FeatureByName(name); !ok {
		return false, NewConfigError("Features", name, "unknown feature")
	}
	features, err := resolveFeatures(c.Features)
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(features, func(f Feature) bool {
		return f.Name == name
	}), nil
}
