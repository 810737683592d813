package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// projectionEmitter renders the projection combinators. Each one composes a
// projection of the receiver with a target function into an Effect{N}, in
// unconditional (Comp) and Option-gated (Cond) forms, for both receiver modes.
type projectionEmitter struct{}

// Name implements Emitter.
func (projectionEmitter) Name() string { return familyProjection }

// Emit implements Emitter.
func (projectionEmitter) Emit(f *jen.File, a Arity, _ Scope) {
	tparams := typeParams(nil, append([]string{"A0", "T"}, a.TypeNames()...)...)
	target := func(view jen.Code) jen.Code {
		return jen.Id("f").Func().Params(with([]jen.Code{view}, a.Types()...)...)
	}
	call := func(view jen.Code) jen.Code {
		return jen.Id("f").Call(with([]jen.Code{view}, a.Args()...)...)
	}
	gated := func(proj jen.Code) jen.Code {
		return jen.If(
			jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Add(proj).Dot("Get").Call(),
			jen.Id("ok"),
		).Block(call(jen.Id("v")))
	}

	name := a.Ident("Comp")
	f.Line()
	f.Comment(fmt.Sprintf("%s composes proj with f into an effect that calls f(proj(a0), ...).", name))
	f.Comment("The receiver is never mutated.")
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("proj").Func().Params(jen.Id("A0")).Id("T"),
		target(jen.Id("T")),
	).Add(effectType(a, identImm)).Block(
		jen.Return(effectLit(a, identImm, "Unconditional",
			call(jen.Id("proj").Call(jen.Op("*").Id("a0"))),
		)),
	)

	name = a.Ident("CompMut")
	f.Line()
	f.Comment(fmt.Sprintf("%s composes a pointer projection with f into an effect that calls", name))
	f.Comment("f(proj(&a0), ...), so f mutates the projected part of the receiver.")
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("proj").Func().Params(jen.Op("*").Id("A0")).Op("*").Id("T"),
		target(jen.Op("*").Id("T")),
	).Add(effectType(a, identMut)).Block(
		jen.Return(effectLit(a, identMut, "Unconditional",
			call(jen.Id("proj").Call(jen.Id("a0"))),
		)),
	)

	name = a.Ident("Cond")
	f.Line()
	f.Comment(fmt.Sprintf("%s composes an optional projection with f. f runs only when proj", name))
	f.Comment("returns Some; proj is evaluated exactly once per call.")
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("proj").Func().Params(jen.Id("A0")).Id(identOption).Types(jen.Id("T")),
		target(jen.Id("T")),
	).Add(effectType(a, identImm)).Block(
		jen.Return(effectLit(a, identImm, "Conditional",
			gated(jen.Id("proj").Call(jen.Op("*").Id("a0"))),
		)),
	)

	name = a.Ident("CondMut")
	f.Line()
	f.Comment(fmt.Sprintf("%s composes an optional pointer projection with f. f runs only when", name))
	f.Comment("proj returns Some and may mutate the projected part of the receiver.")
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("proj").Func().Params(jen.Op("*").Id("A0")).Id(identOption).Types(jen.Op("*").Id("T")),
		target(jen.Op("*").Id("T")),
	).Add(effectType(a, identMut)).Block(
		jen.Return(effectLit(a, identMut, "Conditional",
			gated(jen.Id("proj").Call(jen.Id("a0"))),
		)),
	)
}
