package gen

import (
	"errors"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/syssam/pipei/compiler/load"
)

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
// The directory where the arity files will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the package name of the generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		if header == "" {
			return NewConfigError("Header", nil, "header cannot be empty")
		}
		c.Header = header
		return nil
	}
}

// WithArities restricts generation to the given arities.
func WithArities(arities ...int) Option {
	return func(c *Config) error {
		for _, n := range arities {
			if n < 0 || n > ArityLimit {
				return NewArityError(n, ArityLimit, "out of range")
			}
		}
		c.Arities = append(c.Arities, arities...)
		return nil
	}
}

// WithMaxArity sets the largest arity allowed.
func WithMaxArity(n int) Option {
	return func(c *Config) error {
		if n < 0 || n > ArityLimit {
			return NewArityError(n, ArityLimit, "max arity out of range")
		}
		c.MaxArity = n
		return nil
	}
}

// WithFeatures enables specific features.
// Features control which families of declarations are emitted.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithFeatureNames enables features by name.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, ok := FeatureByName(name)
			if !ok {
				return NewConfigError("Features", name, "unknown feature")
			}
			c.Features = append(c.Features, f)
		}
		return nil
	}
}

// WithNames renames families. Keys name a family ("curried", "pipe" or
// "tap", in any case) and values its exported base identifier, camelized:
//
//	gen.WithNames(map[string]string{"pipe": "thread_first", "tap": "also"})
//
// emits ThreadFirst{N}, ThreadFirstMut{N}, ThreadFirstOnce{N} and Also{N}.
func WithNames(names map[string]string) Option {
	return func(c *Config) error {
		merged := make(map[string]string, len(c.Names)+len(names))
		for family, base := range c.Names {
			merged[family] = base
		}
		for key, name := range names {
			family := foldName(key)
			if !slices.Contains(renamable, family) {
				return NewConfigError("Names", key, "not a renamable family")
			}
			base := baseName(name)
			if msg := checkBase(base); msg != "" {
				return NewConfigError("Names", name, msg)
			}
			merged[family] = base
		}
		c.Names = merged
		return nil
	}
}

// WithTagPrefix sets the prefix of the per-arity build tag.
func WithTagPrefix(prefix string) Option {
	return func(c *Config) error {
		if !buildTag.MatchString(prefix) {
			return NewConfigError("TagPrefix", prefix, "not a valid build tag")
		}
		c.TagPrefix = prefix
		return nil
	}
}

// WithSelectTag sets the build tag that restricts the build to the tagged
// arities.
func WithSelectTag(tag string) Option {
	return func(c *Config) error {
		if !buildTag.MatchString(tag) {
			return NewConfigError("SelectTag", tag, "not a valid build tag")
		}
		c.SelectTag = tag
		return nil
	}
}

// WithLogger sets the logger used to report generation progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithWorkers sets the number of files rendered concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithTable applies the settings of a loaded arity table. Zero values in
// the table leave the configuration untouched. A relative target is
// resolved against the directory of the table file.
func WithTable(t *load.Table) Option {
	return func(c *Config) error {
		if t == nil {
			return NewConfigError("Table", nil, "table cannot be nil")
		}
		var opts []Option
		if t.Target != "" {
			dir := t.Target
			if !filepath.IsAbs(dir) && t.Path != "" {
				dir = filepath.Join(filepath.Dir(t.Path), dir)
			}
			opts = append(opts, WithTarget(dir))
		}
		if t.Package != "" {
			opts = append(opts, WithPackage(t.Package))
		}
		if t.Header != "" {
			opts = append(opts, WithHeader(t.Header))
		}
		if t.MaxArity != nil {
			opts = append(opts, WithMaxArity(*t.MaxArity))
		}
		if len(t.Arities) > 0 {
			opts = append(opts, WithArities(t.Arities...))
		}
		if len(t.Features) > 0 {
			opts = append(opts, WithFeatureNames(t.Features...))
		}
		if len(t.Names) > 0 {
			opts = append(opts, WithNames(t.Names))
		}
		if t.TagPrefix != "" {
			opts = append(opts, WithTagPrefix(t.TagPrefix))
		}
		if t.SelectTag != "" {
			opts = append(opts, WithSelectTag(t.SelectTag))
		}
		return c.Apply(opts...)
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
