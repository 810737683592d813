package gen

import (
	"github.com/dave/jennifer/jen"
)

// Emitter renders one family of declarations into the file of a single
// arity. Emitters are stateless: Emit must produce the same declarations for
// the same arity and scope on every call, and must not depend on other
// arities.
type Emitter interface {
	// Name returns the family name (e.g., "pipe", "tap").
	Name() string
	// Emit appends the family's declarations for arity a to f.
	Emit(f *jen.File, a Arity, s Scope)
}

// Family names used by the built-in emitters and features.
const (
	familyCurried    = "curried"
	familyPipe       = "pipe"
	familyTap        = "tap"
	familyProjection = "projection"
)

// Identifiers of the non-generated library declarations that emitted code
// refers to. They live in the target package next to the generated files.
const (
	identMode       = "Mode"
	identRefMode    = "RefMode"
	identSemantics  = "Semantics"
	identImm        = "Imm"
	identMut        = "Mut"
	identOwn        = "Own"
	identPipeMark   = "PipeMark"
	identTapMark    = "TapMark"
	identOption     = "Option"
	identProjection = "Projection"
	identRecvMode   = "ReceiverMode"
	identCallSem    = "CallSemantics"
)

// curriedType returns Curried{N}[mode, sem, P1..PN, ret].
func curriedType(a Arity, s Scope, mode, sem string, ret jen.Code) jen.Code {
	return jen.Id(a.Ident(s.Name(familyCurried))).Types(with(with([]jen.Code{jen.Id(mode), jen.Id(sem)}, a.Types()...), ret)...)
}

// effectType returns Effect{N}[mode, A0, P1..PN].
func effectType(a Arity, mode string) jen.Code {
	return jen.Id(a.Ident("Effect")).Types(with([]jen.Code{jen.Id(mode), jen.Id("A0")}, a.Types()...)...)
}

// effectCall returns the normalised effect signature func(*A0, P1..PN).
func effectCall(a Arity) jen.Code {
	return jen.Func().Params(with([]jen.Code{jen.Op("*").Id("A0")}, a.Types()...)...)
}

// effectLit returns an Effect{N} composite literal with the given projection
// kind and call body. The body receives a0 *A0 and p1..pN.
func effectLit(a Arity, mode, proj string, body ...jen.Code) jen.Code {
	return jen.Add(effectType(a, mode)).Values(jen.Dict{
		jen.Id("proj"): jen.Id(proj),
		jen.Id("call"): jen.Func().Params(with([]jen.Code{jen.Id("a0").Op("*").Id("A0")}, a.Params()...)...).Block(body...),
	})
}
