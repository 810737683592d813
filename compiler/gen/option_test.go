package gen

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/pipei/compiler/load"
)

func TestWithTarget(t *testing.T) {
	t.Run("sets target", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithTarget("./out")(c))
		assert.Equal(t, "./out", c.Target)
	})

	t.Run("empty target fails", func(t *testing.T) {
		err := WithTarget("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithPackage(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithPackage("fluent")(c))
	assert.Equal(t, "fluent", c.Package)
	assert.True(t, IsConfigError(WithPackage("")(c)))
}

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithHeader("Code generated by hand.")(c))
		assert.Equal(t, "Code generated by hand.", c.Header)
	})

	t.Run("empty header fails", func(t *testing.T) {
		c := &Config{Header: "existing"}
		require.Error(t, WithHeader("")(c))
		assert.Equal(t, "existing", c.Header)
	})
}

func TestWithArities(t *testing.T) {
	tests := []struct {
		name    string
		arities []int
		wantErr bool
	}{
		{"zero", []int{0}, false},
		{"several", []int{1, 2, 3}, false},
		{"limit", []int{ArityLimit}, false},
		{"negative", []int{-1}, true},
		{"above limit", []int{ArityLimit + 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithArities(tt.arities...)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsArityError(err))
				assert.ErrorIs(t, err, ErrInvalidArity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.arities, c.Arities)
		})
	}
}

func TestWithMaxArity(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithMaxArity(16)(c))
	assert.Equal(t, 16, c.MaxArity)
	assert.True(t, IsArityError(WithMaxArity(ArityLimit+1)(c)))
	assert.True(t, IsArityError(WithMaxArity(-1)(c)))
}

func TestWithFeatures(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithFeatures(FeatureCurried)(c))
	require.NoError(t, WithFeatureNames("pipe")(c))
	require.Len(t, c.Features, 2)
	assert.Equal(t, familyPipe, c.Features[1].Name)

	err := WithFeatureNames("privacy")(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithNames(t *testing.T) {
	t.Run("camelizes and folds", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithNames(map[string]string{"PIPE": "thread_first", "tap": "also"})(c))
		require.NoError(t, WithNames(map[string]string{"Curried": "fn-of"})(c))
		assert.Equal(t, map[string]string{"pipe": "ThreadFirst", "tap": "Also", "curried": "FnOf"}, c.Names)
	})

	tests := []struct {
		name  string
		names map[string]string
	}{
		{"unknown family", map[string]string{"projection": "Lens"}},
		{"empty name", map[string]string{"pipe": ""}},
		{"not an identifier", map[string]string{"pipe": "thread.first"}},
		{"trailing digit", map[string]string{"tap": "tap2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WithNames(tt.names)(&Config{})
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
		})
	}
}

func TestWithTags(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithTagPrefix("fluent_arity")(c))
	require.NoError(t, WithSelectTag("fluent_select")(c))
	assert.Equal(t, "fluent_arity", c.TagPrefix)
	assert.Equal(t, "fluent_select", c.SelectTag)

	assert.True(t, IsConfigError(WithTagPrefix("bad tag")(c)))
	assert.True(t, IsConfigError(WithSelectTag("")(c)))
}

func TestWithLoggerAndWorkers(t *testing.T) {
	c := &Config{}
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.Logger)
	assert.Error(t, WithLogger(nil)(c))

	require.NoError(t, WithWorkers(3)(c))
	assert.Equal(t, 3, c.Workers)
	assert.Error(t, WithWorkers(0)(c))
}

func TestWithTable(t *testing.T) {
	t.Run("applies every field", func(t *testing.T) {
		maxArity := 8
		c := DefaultConfig()
		err := WithTable(&load.Table{
			Path:      filepath.Join("conf", "pipei.yaml"),
			Package:   "fluent",
			Target:    "out",
			Header:    "Code generated by fluentgen. DO NOT EDIT.",
			MaxArity:  &maxArity,
			Arities:   load.Ranges{0, 4},
			Features:  []string{"curried", "pipe"},
			Names:     map[string]string{"pipe": "thread"},
			TagPrefix: "fluent_arity",
			SelectTag: "fluent_select",
		})(c)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("conf", "out"), c.Target)
		assert.Equal(t, "fluent", c.Package)
		assert.Equal(t, "Code generated by fluentgen. DO NOT EDIT.", c.Header)
		assert.Equal(t, 8, c.MaxArity)
		assert.Equal(t, []int{0, 4}, c.Arities)
		require.Len(t, c.Features, 2)
		assert.Equal(t, map[string]string{"pipe": "Thread"}, c.Names)
		assert.Equal(t, "fluent_arity", c.TagPrefix)
		assert.Equal(t, "fluent_select", c.SelectTag)
	})

	t.Run("zero values keep defaults", func(t *testing.T) {
		c := DefaultConfig()
		require.NoError(t, WithTable(&load.Table{})(c))
		assert.Equal(t, DefaultPackage, c.Package)
		assert.Equal(t, DefaultMaxArity, c.MaxArity)
		assert.Empty(t, c.Arities)
	})

	t.Run("absolute target is kept", func(t *testing.T) {
		abs := t.TempDir()
		c := DefaultConfig()
		require.NoError(t, WithTable(&load.Table{Path: "x/pipei.yaml", Target: abs})(c))
		assert.Equal(t, abs, c.Target)
	})

	t.Run("nil table fails", func(t *testing.T) {
		assert.True(t, IsConfigError(WithTable(nil)(DefaultConfig())))
	})
}

func TestApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(
		WithTarget(""),
		WithPackage("ok"),
		WithArities(-5),
	)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.True(t, IsArityError(err))
	assert.Equal(t, "ok", c.Package)
}

func TestNewConfig(t *testing.T) {
	t.Run("starts from defaults", func(t *testing.T) {
		c, err := NewConfig(WithTarget("out"))
		require.NoError(t, err)
		assert.Equal(t, DefaultPackage, c.Package)
		assert.Equal(t, DefaultHeader, c.Header)
		assert.Equal(t, DefaultMaxArity, c.MaxArity)
		assert.Equal(t, DefaultTagPrefix, c.TagPrefix)
		assert.Equal(t, DefaultSelectTag, c.SelectTag)
		assert.NotNil(t, c.Logger)
		assert.Positive(t, c.Workers)
	})

	t.Run("returns first error", func(t *testing.T) {
		_, err := NewConfig(WithTarget(""), WithArities(-1))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("MustNewConfig panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithWorkers(-1)) })
	})
}
