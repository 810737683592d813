package gen

import (
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
)

func TestArityNames(t *testing.T) {
	a := Arity{N: 3}

	assert.Equal(t, "Pipe3", a.Ident("Pipe"))
	assert.Equal(t, "arity_003.go", a.FileName())
	assert.Equal(t, "pipei_arity3", a.BuildTag(DefaultTagPrefix))
	assert.Equal(t, "!pipei_select || pipei_arity3", a.Constraint(DefaultSelectTag, DefaultTagPrefix))
	assert.Equal(t, []string{"P1", "P2", "P3"}, a.TypeNames())
	assert.Equal(t, []string{"p1", "p2", "p3"}, a.ArgNames())
	assert.Equal(t, "arity_100.go", Arity{N: 100}.FileName())
}

func TestArityZero(t *testing.T) {
	a := Arity{N: 0}

	assert.Empty(t, a.TypeNames())
	assert.Empty(t, a.ArgNames())
	assert.Empty(t, a.Params())
	assert.Equal(t, "Curried0", a.Ident("Curried"))
}

func TestArityPhrase(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "no arguments"},
		{1, "1 argument"},
		{2, "2 arguments"},
		{100, "100 arguments"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Arity{N: tt.n}.Phrase())
	}
}

func TestTypeParams(t *testing.T) {
	render := func(codes []jen.Code) string {
		return jen.Func().Id("F").Types(codes...).Params().GoString()
	}

	assert.Equal(t, "func F[A0, P1, R any]()", render(typeParams(nil, "A0", "P1", "R")))
	assert.Equal(t, "func F[M RefMode, A0 any]()", render(typeParams([]jen.Code{jen.Id("M").Id("RefMode")}, "A0")))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pipe", "Pipe"},
		{"thread_first", "ThreadFirst"},
		{"thread-first", "ThreadFirst"},
		{"threadFirst", "ThreadFirst"},
		{" also ", "Also"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, baseName(tt.in), tt.in)
	}
	assert.Equal(t, "pipe", foldName("PIPE"))
}

func TestCheckBase(t *testing.T) {
	assert.Empty(t, checkBase("Thread"))
	assert.Equal(t, "not a valid identifier", checkBase(""))
	assert.Equal(t, "must start with an upper-case letter", checkBase("_Thread"))
	assert.Equal(t, "must not end with a digit", checkBase("Pipe1"))
}

func TestOrList(t *testing.T) {
	assert.Equal(t, "", orList(nil))
	assert.Equal(t, "Tap1", orList([]string{"Tap1"}))
	assert.Equal(t, "Imm1 or Mut1", orList([]string{"Imm1", "Mut1"}))
	assert.Equal(t, "Pipe1, PipeMut1 or Tap1", orList([]string{"Pipe1", "PipeMut1", "Tap1"}))
}

func TestScope(t *testing.T) {
	s := newScope([]Feature{FeatureCurried, FeatureTap}, map[string]string{"tap": "Also"})

	assert.True(t, s.Has(familyTap))
	assert.False(t, s.Has(familyPipe))
	assert.Equal(t, "Also", s.Name(familyTap))
	assert.Equal(t, "Pipe", s.Name(familyPipe))
	assert.Equal(t, "Curried", s.Name(familyCurried))
}
