package gen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/pipei/compiler/gen"
)

func BenchmarkGenerator_Render(b *testing.B) {
	cfg, err := gen.NewConfig(gen.WithTarget(b.TempDir()))
	require.NoError(b, err)
	g, err := gen.NewGenerator(cfg)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := g.Render(gen.Arity{N: 16})
		require.NoError(b, err)
	}
}

func BenchmarkGenerator_Generate(b *testing.B) {
	cfg, err := gen.NewConfig(gen.WithTarget(b.TempDir()))
	require.NoError(b, err)
	g, err := gen.NewGenerator(cfg)
	require.NoError(b, err)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := g.Generate(ctx)
		require.NoError(b, err)
	}
}
