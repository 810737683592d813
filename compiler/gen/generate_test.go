package gen

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewGenerator(nil)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("invalid config", func(t *testing.T) {
		_, err := NewGenerator(DefaultConfig())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingConfig)
	})

	t.Run("resolves features", func(t *testing.T) {
		g := newTestGenerator(t, WithFeatures(FeatureTap, FeatureCurried))
		names := []string{}
		for _, f := range g.Features() {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{familyCurried, familyTap}, names)
	})

	t.Run("WithWorkers ignores non-positive values", func(t *testing.T) {
		g := newTestGenerator(t, WithWorkers(2))
		assert.Equal(t, 2, g.workers)
		g.WithWorkers(0)
		assert.Equal(t, 2, g.workers)
		g.WithWorkers(5)
		assert.Equal(t, 5, g.workers)
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one file per arity", func(t *testing.T) {
		g := newTestGenerator(t, WithArities(0, 1, 2))
		report, err := g.Generate(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, report.Arities)
		assert.Equal(t, []string{"arity_000.go", "arity_001.go", "arity_002.go"}, report.Written)
		assert.Empty(t, report.Unchanged)
		assert.Empty(t, report.Removed)
		assert.Positive(t, report.Bytes)
		assert.True(t, report.Changed())
		assert.Equal(t, []string{familyCurried, familyPipe, familyTap, familyProjection}, report.Features)

		for _, name := range report.Written {
			data, err := os.ReadFile(filepath.Join(g.Config().Target, name))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("// Code generated by pipeigen. DO NOT EDIT.")))
		}
	})

	t.Run("second run leaves files untouched", func(t *testing.T) {
		g := newTestGenerator(t, WithArities(3))
		_, err := g.Generate(ctx)
		require.NoError(t, err)

		path := filepath.Join(g.Config().Target, "arity_003.go")
		old := time.Now().Add(-time.Hour).Truncate(time.Second)
		require.NoError(t, os.Chtimes(path, old, old))

		report, err := g.Generate(ctx)
		require.NoError(t, err)
		assert.Empty(t, report.Written)
		assert.Equal(t, []string{"arity_003.go"}, report.Unchanged)
		assert.False(t, report.Changed())

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(old))
	})

	t.Run("removes generated files of dropped arities", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Generate(ctx, WithTarget(dir), WithArities(0, 1, 2))
		require.NoError(t, err)

		handwritten := filepath.Join(dir, "arity_009.go")
		require.NoError(t, os.WriteFile(handwritten, []byte("package pipei\n"), 0o644))

		report, err := Generate(ctx, WithTarget(dir), WithArities(1))
		require.NoError(t, err)
		assert.Equal(t, []string{"arity_000.go", "arity_002.go"}, report.Removed)
		assert.NoFileExists(t, filepath.Join(dir, "arity_000.go"))
		assert.FileExists(t, filepath.Join(dir, "arity_001.go"))
		assert.FileExists(t, handwritten)
	})

	t.Run("logs a summary", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		g := newTestGenerator(t, WithArities(1), WithLogger(logger))
		_, err := g.Generate(ctx)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "generation finished")
		assert.Contains(t, buf.String(), "file=arity_001.go")
		assert.Contains(t, buf.String(), "outcome=written")
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newTestGenerator(t, WithArities(0, 1)).Generate(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("renders every arity up to the limit", func(t *testing.T) {
		g := newTestGenerator(t)
		report, err := g.Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, ArityLimit+1, report.Arities)
		assert.Len(t, report.Written, ArityLimit+1)
	})
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	g := newTestGenerator(t, WithArities(0, 1))
	dir := g.Config().Target

	err := g.Check(ctx)
	require.Error(t, err)
	var stale *StaleError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, []string{"arity_000.go", "arity_001.go"}, stale.Missing)
	assert.NoFileExists(t, filepath.Join(dir, "arity_000.go"))

	_, err = g.Generate(ctx)
	require.NoError(t, err)
	require.NoError(t, g.Check(ctx))

	path := filepath.Join(dir, "arity_001.go")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes.Replace(data, []byte("Pipe1"), []byte("Pipe9"), 1), 0o644))

	other := newTestGenerator(t, WithTarget(dir), WithArities(1))
	err = other.Check(ctx)
	require.ErrorAs(t, err, &stale)
	assert.Empty(t, stale.Missing)
	assert.Equal(t, []string{"arity_001.go"}, stale.Outdated)
	assert.Equal(t, []string{"arity_000.go"}, stale.Orphaned)
	assert.ErrorIs(t, err, ErrStale)
}
