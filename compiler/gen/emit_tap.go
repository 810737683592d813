package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// tapEmitter renders the Effect{N} relation, the Imm{N}, Mut{N}, ImmFn{N}
// and MutFn{N} constructors that resolve a function's receiver shape into it,
// and Tap{N}.
type tapEmitter struct{}

// Name implements Emitter.
func (tapEmitter) Name() string { return familyTap }

// Emit implements Emitter.
func (tapEmitter) Emit(f *jen.File, a Arity, s Scope) {
	effect := a.Ident("Effect")
	recv := jen.Id("e").Id(effect).Types(with([]jen.Code{jen.Id("M"), jen.Id("A0")}, a.Types()...)...)

	builders := []string{a.Ident(identImm), a.Ident(identMut), a.Ident("ImmFn"), a.Ident("MutFn")}
	if s.Has(familyProjection) {
		builders = append(builders, a.Ident("Comp"), a.Ident("CompMut"), a.Ident("Cond"), a.Ident("CondMut"))
	}
	f.Line()
	f.Comment(fmt.Sprintf("%s is a side effect over a receiver of type A0 taking %s.", effect, a.Phrase()))
	f.Comment(fmt.Sprintf("Build one with %s.", orList(builders)))
	f.Comment("The zero value has no effect.")
	f.Type().Id(effect).Types(
		typeParams([]jen.Code{jen.Id("M").Id(identRefMode)}, append([]string{"A0"}, a.TypeNames()...)...)...,
	).Struct(
		jen.Id("proj").Id(identProjection),
		jen.Id("call").Add(effectCall(a)),
	)

	f.Line()
	f.Comment("Mode returns how the effect receives the receiver.")
	f.Func().Params(recv.Clone()).Id("Mode").Params().Id(identRecvMode).Block(
		jen.Return(jen.Id("modeOf").Types(jen.Id("M")).Call()),
	)

	f.Line()
	f.Comment("Projection returns how the effect narrows the receiver.")
	f.Func().Params(recv.Clone()).Id("Projection").Params().Id(identProjection).Block(
		jen.Return(jen.Id("e").Dot("proj")),
	)

	tparams := typeParams(nil, append([]string{"A0"}, a.TypeNames()...)...)

	name := a.Ident(identImm)
	f.Line()
	f.Comment(fmt.Sprintf("%s adapts f, which reads the receiver, into an %s.", name, effect))
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("f").Func().Params(with([]jen.Code{jen.Id("A0")}, a.Types()...)...),
	).Add(effectType(a, identImm)).Block(
		jen.Return(effectLit(a, identImm, "Direct",
			jen.Id("f").Call(with([]jen.Code{jen.Op("*").Id("a0")}, a.Args()...)...),
		)),
	)

	name = a.Ident(identMut)
	f.Line()
	f.Comment(fmt.Sprintf("%s adapts f, which mutates the receiver through a pointer, into an %s.", name, effect))
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("f").Add(effectCall(a)),
	).Add(effectType(a, identMut)).Block(
		jen.Return(jen.Add(effectType(a, identMut)).Values(jen.Dict{
			jen.Id("proj"): jen.Id("Direct"),
			jen.Id("call"): jen.Id("f"),
		})),
	)

	fnParams := typeParams(nil, append(append([]string{"A0"}, a.TypeNames()...), "R")...)

	name = a.Ident("ImmFn")
	f.Line()
	f.Comment(fmt.Sprintf("%s is %s for an f that returns a result. The result is discarded.", name, a.Ident(identImm)))
	f.Func().Id(name).Types(fnParams...).Params(
		jen.Id("f").Func().Params(with([]jen.Code{jen.Id("A0")}, a.Types()...)...).Id("R"),
	).Add(effectType(a, identImm)).Block(
		jen.Return(effectLit(a, identImm, "Direct",
			jen.Id("f").Call(with([]jen.Code{jen.Op("*").Id("a0")}, a.Args()...)...),
		)),
	)

	name = a.Ident("MutFn")
	f.Line()
	f.Comment(fmt.Sprintf("%s is %s for an f that returns a result, such as a pointer", name, a.Ident(identMut)))
	f.Comment("method that reports the new state. The result is discarded.")
	f.Func().Id(name).Types(fnParams...).Params(
		jen.Id("f").Func().Params(with([]jen.Code{jen.Op("*").Id("A0")}, a.Types()...)...).Id("R"),
	).Add(effectType(a, identMut)).Block(
		jen.Return(effectLit(a, identMut, "Direct",
			jen.Id("f").Call(with([]jen.Code{jen.Id("a0")}, a.Args()...)...),
		)),
	)

	name = a.Ident(s.Name(familyTap))
	f.Line()
	f.Comment(fmt.Sprintf("%s runs e against a0 and returns a closure taking %s that yields", name, a.Phrase()))
	f.Comment("a0 afterwards, mutated when e is a Mut effect. The closure hands a0 back, so it")
	f.Comment("panics with a *ConsumedError if it is called again.")
	f.Func().Id(name).Types(
		typeParams([]jen.Code{jen.Id("M").Id(identRefMode)}, append([]string{"A0"}, a.TypeNames()...)...)...,
	).Params(
		jen.Id("a0").Id("A0"),
		jen.Id("e").Add(effectType(a, "M")),
	).Add(curriedType(a, s, "M", identTapMark, jen.Id("A0"))).Block(
		jen.Var().Id("spent").Bool(),
		jen.Return(jen.Func().Params(a.Params()...).Id("A0").Block(
			jen.Id("spend").Types(jen.Id("M"), jen.Id(identTapMark)).Call(jen.Op("&").Id("spent"), jen.Lit(a.N)),
			jen.If(
				jen.Id("call").Op(":=").Id("take").Call(jen.Op("&").Id("e").Dot("call")),
				jen.Id("call").Op("!=").Nil(),
			).Block(
				jen.Id("call").Call(with([]jen.Code{jen.Op("&").Id("a0")}, a.Args()...)...),
			),
			jen.Return(jen.Id("take").Call(jen.Op("&").Id("a0"))),
		)),
	)
}
