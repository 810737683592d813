package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	cfg, err := NewConfig(append([]Option{WithTarget(t.TempDir())}, opts...)...)
	require.NoError(t, err)
	g, err := NewGenerator(cfg)
	require.NoError(t, err)
	return g
}

func render(t *testing.T, g *Generator, n int) string {
	t.Helper()
	src, err := g.Render(Arity{N: n})
	require.NoError(t, err)
	return string(src)
}

func TestRenderHeader(t *testing.T) {
	src := render(t, newTestGenerator(t), 2)

	assert.True(t, strings.HasPrefix(src, "// Code generated by pipeigen. DO NOT EDIT.\n\n//go:build !pipei_select || pipei_arity2\n\npackage pipei\n"), src)
	assert.NotContains(t, src, "import")
}

func TestRenderCurried(t *testing.T) {
	src := render(t, newTestGenerator(t), 2)

	assert.Contains(t, src, "type Curried2[M Mode, S Semantics, P1, P2, R any] func(P1, P2) R")
	assert.Contains(t, src, "func (Curried2[M, S, P1, P2, R]) Mode() ReceiverMode {")
	assert.Contains(t, src, "return modeOf[M]()")
	assert.Contains(t, src, "func (Curried2[M, S, P1, P2, R]) Semantics() CallSemantics {")
	assert.Contains(t, src, "func (Curried2[M, S, P1, P2, R]) Arity() int {\n\treturn 2\n}")
	assert.Contains(t, src, "return reusable[M, S]()")
}

func TestRenderPipe(t *testing.T) {
	src := render(t, newTestGenerator(t), 2)

	assert.Contains(t, src, "func Pipe2[A0, P1, P2, R any](a0 A0, f func(A0, P1, P2) R) Curried2[Imm, PipeMark, P1, P2, R] {")
	assert.Contains(t, src, "return f(a0, p1, p2)")
	assert.Contains(t, src, "func PipeMut2[A0, P1, P2, R any](a0 A0, f func(*A0, P1, P2) R) Curried2[Mut, PipeMark, P1, P2, R] {")
	assert.Contains(t, src, "return f(&a0, p1, p2)")
	assert.Contains(t, src, "func PipeOnce2[A0, P1, P2, R any](a0 A0, f func(A0, P1, P2) R) Curried2[Own, PipeMark, P1, P2, R] {")
	assert.Contains(t, src, "spend[Own, PipeMark](&spent, 2)")
	assert.Contains(t, src, "return take(&f)(take(&a0), p1, p2)")
}

func TestRenderTap(t *testing.T) {
	src := render(t, newTestGenerator(t), 2)

	assert.Contains(t, src, "type Effect2[M RefMode, A0, P1, P2 any] struct {")
	assert.Contains(t, src, "func Imm2[A0, P1, P2 any](f func(A0, P1, P2)) Effect2[Imm, A0, P1, P2] {")
	assert.Contains(t, src, "f(*a0, p1, p2)")
	assert.Contains(t, src, "func Mut2[A0, P1, P2 any](f func(*A0, P1, P2)) Effect2[Mut, A0, P1, P2] {")
	assert.Contains(t, src, "func ImmFn2[A0, P1, P2, R any](f func(A0, P1, P2) R) Effect2[Imm, A0, P1, P2] {")
	assert.Contains(t, src, "func MutFn2[A0, P1, P2, R any](f func(*A0, P1, P2) R) Effect2[Mut, A0, P1, P2] {")
	assert.Contains(t, src, "f(a0, p1, p2)")
	assert.Contains(t, src, "func Tap2[M RefMode, A0, P1, P2 any](a0 A0, e Effect2[M, A0, P1, P2]) Curried2[M, TapMark, P1, P2, A0] {")
	assert.Contains(t, src, "if call := take(&e.call); call != nil {\n\t\t\tcall(&a0, p1, p2)\n\t\t}")
	assert.Contains(t, src, "return take(&a0)")
	assert.Contains(t, src, "// The zero value has no effect.")
}

func TestRenderProjection(t *testing.T) {
	src := render(t, newTestGenerator(t), 2)

	assert.Contains(t, src, "func Comp2[A0, T, P1, P2 any](proj func(A0) T, f func(T, P1, P2)) Effect2[Imm, A0, P1, P2] {")
	assert.Contains(t, src, "f(proj(*a0), p1, p2)")
	assert.Contains(t, src, "func CompMut2[A0, T, P1, P2 any](proj func(*A0) *T, f func(*T, P1, P2)) Effect2[Mut, A0, P1, P2] {")
	assert.Contains(t, src, "func Cond2[A0, T, P1, P2 any](proj func(A0) Option[T], f func(T, P1, P2)) Effect2[Imm, A0, P1, P2] {")
	assert.Contains(t, src, "if v, ok := proj(*a0).Get(); ok {")
	assert.Contains(t, src, "func CondMut2[A0, T, P1, P2 any](proj func(*A0) Option[*T], f func(*T, P1, P2)) Effect2[Mut, A0, P1, P2] {")
	assert.Contains(t, src, "proj: Conditional,")
}

func TestRenderArityZero(t *testing.T) {
	src := render(t, newTestGenerator(t), 0)

	assert.Contains(t, src, "type Curried0[M Mode, S Semantics, R any] func() R")
	assert.Contains(t, src, "func Pipe0[A0, R any](a0 A0, f func(A0) R) Curried0[Imm, PipeMark, R] {")
	assert.Contains(t, src, "type Effect0[M RefMode, A0 any] struct {")
	assert.Contains(t, src, "func Tap0[M RefMode, A0 any](a0 A0, e Effect0[M, A0]) Curried0[M, TapMark, A0] {")
	assert.Contains(t, src, "// Curried0 is a closure taking no arguments")
}

func TestRenderFeatures(t *testing.T) {
	t.Run("every family", func(t *testing.T) {
		src := render(t, newTestGenerator(t), 1)

		assert.Contains(t, src, "// Curried1 is a closure taking 1 argument, produced by Pipe1, PipeMut1, PipeOnce1 or Tap1.\n")
		assert.Contains(t, src, "// Build one with Imm1, Mut1, ImmFn1, MutFn1, Comp1, CompMut1, Cond1 or CondMut1.\n")
	})

	t.Run("pipe only", func(t *testing.T) {
		src := render(t, newTestGenerator(t, WithFeatures(FeatureCurried, FeaturePipe)), 1)

		assert.Contains(t, src, "func Pipe1[")
		assert.Contains(t, src, "produced by Pipe1, PipeMut1 or PipeOnce1.\n")
		assert.NotContains(t, src, "Tap1")
		assert.NotContains(t, src, "Effect1")
		assert.NotContains(t, src, "Comp1")
	})

	t.Run("tap without projections", func(t *testing.T) {
		src := render(t, newTestGenerator(t, WithFeatures(FeatureCurried, FeatureTap)), 1)

		assert.Contains(t, src, "produced by Tap1.\n")
		assert.Contains(t, src, "// Build one with Imm1, Mut1, ImmFn1 or MutFn1.\n")
		assert.NotContains(t, src, "Pipe1")
		assert.NotContains(t, src, "Comp1")
		assert.NotContains(t, src, "Cond1")
	})

	t.Run("curried only", func(t *testing.T) {
		src := render(t, newTestGenerator(t, WithFeatures(FeatureCurried)), 1)

		assert.Contains(t, src, "// Curried1 is a closure taking 1 argument.\n")
		assert.NotContains(t, src, "produced by")
	})
}

func TestRenderNames(t *testing.T) {
	g := newTestGenerator(t, WithNames(map[string]string{
		"curried": "fn_of",
		"pipe":    "thread_first",
		"tap":     "also",
	}))
	src := render(t, g, 2)

	assert.Contains(t, src, "type FnOf2[M Mode, S Semantics, P1, P2, R any] func(P1, P2) R")
	assert.Contains(t, src, "func ThreadFirst2[A0, P1, P2, R any](a0 A0, f func(A0, P1, P2) R) FnOf2[Imm, PipeMark, P1, P2, R] {")
	assert.Contains(t, src, "func ThreadFirstMut2[")
	assert.Contains(t, src, "func ThreadFirstOnce2[")
	assert.Contains(t, src, "func Also2[M RefMode, A0, P1, P2 any](a0 A0, e Effect2[M, A0, P1, P2]) FnOf2[M, TapMark, P1, P2, A0] {")
	assert.Contains(t, src, "produced by ThreadFirst2, ThreadFirstMut2, ThreadFirstOnce2 or Also2.")
	assert.NotContains(t, src, "Pipe2")
	assert.NotContains(t, src, "Curried2")
	assert.NotContains(t, src, "Tap2")
}

func TestRenderCustomTags(t *testing.T) {
	g := newTestGenerator(t,
		WithPackage("fluent"),
		WithHeader("Code generated by fluentgen. DO NOT EDIT."),
		WithTagPrefix("fluent_arity"),
		WithSelectTag("fluent_select"),
	)
	src := render(t, g, 5)

	assert.True(t, strings.HasPrefix(src, "// Code generated by fluentgen. DO NOT EDIT.\n\n//go:build !fluent_select || fluent_arity5\n\npackage fluent\n"), src)
}

func TestRenderIsDeterministic(t *testing.T) {
	g := newTestGenerator(t)
	for _, n := range []int{0, 1, 7, ArityLimit} {
		assert.Equal(t, render(t, g, n), render(t, g, n), "arity %d", n)
	}
}

func TestRenderRejectsArity(t *testing.T) {
	_, err := newTestGenerator(t).Render(Arity{N: ArityLimit + 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArity)
}
