package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// pipeEmitter renders the three transform variants: Pipe{N} (shared),
// PipeMut{N} (exclusive) and PipeOnce{N} (by value).
type pipeEmitter struct{}

// Name implements Emitter.
func (pipeEmitter) Name() string { return familyPipe }

// Emit implements Emitter.
func (pipeEmitter) Emit(f *jen.File, a Arity, s Scope) {
	tparams := typeParams(nil, append([]string{"A0"}, append(a.TypeNames(), "R")...)...)
	closure := jen.Func().Params(a.Params()...).Id("R")

	base := s.Name(familyPipe)
	name := a.Ident(base)
	f.Line()
	f.Comment(fmt.Sprintf("%s binds a0 as the first argument of f and returns a closure taking", name))
	f.Comment(fmt.Sprintf("%s. f receives a copy of a0 on every call, so the closure can be", a.Phrase()))
	f.Comment("called any number of times.")
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("a0").Id("A0"),
		jen.Id("f").Func().Params(with([]jen.Code{jen.Id("A0")}, a.Types()...)...).Id("R"),
	).Add(curriedType(a, s, identImm, identPipeMark, jen.Id("R"))).Block(
		jen.Return(closure.Clone().Block(
			jen.Return(jen.Id("f").Call(with([]jen.Code{jen.Id("a0")}, a.Args()...)...)),
		)),
	)

	name = a.Ident(base + "Mut")
	f.Line()
	f.Comment(fmt.Sprintf("%s binds a pointer to a0 as the first argument of f and returns a", name))
	f.Comment(fmt.Sprintf("closure taking %s. The closure owns a0, so every call sees the", a.Phrase()))
	f.Comment("mutations made by the previous ones.")
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("a0").Id("A0"),
		jen.Id("f").Func().Params(with([]jen.Code{jen.Op("*").Id("A0")}, a.Types()...)...).Id("R"),
	).Add(curriedType(a, s, identMut, identPipeMark, jen.Id("R"))).Block(
		jen.Return(closure.Clone().Block(
			jen.Return(jen.Id("f").Call(with([]jen.Code{jen.Op("&").Id("a0")}, a.Args()...)...)),
		)),
	)

	name = a.Ident(base + "Once")
	f.Line()
	f.Comment(fmt.Sprintf("%s moves a0 into a single call of f and returns a closure taking", name))
	f.Comment(fmt.Sprintf("%s. The closure releases a0 and f after the call and panics with a", a.Phrase()))
	f.Comment("*ConsumedError if it is called again.")
	f.Func().Id(name).Types(tparams...).Params(
		jen.Id("a0").Id("A0"),
		jen.Id("f").Func().Params(with([]jen.Code{jen.Id("A0")}, a.Types()...)...).Id("R"),
	).Add(curriedType(a, s, identOwn, identPipeMark, jen.Id("R"))).Block(
		jen.Var().Id("spent").Bool(),
		jen.Return(closure.Clone().Block(
			jen.Id("spend").Types(jen.Id(identOwn), jen.Id(identPipeMark)).Call(jen.Op("&").Id("spent"), jen.Lit(a.N)),
			jen.Return(
				jen.Id("take").Call(jen.Op("&").Id("f")).Call(
					with([]jen.Code{jen.Id("take").Call(jen.Op("&").Id("a0"))}, a.Args()...)...,
				),
			),
		)),
	)
}
