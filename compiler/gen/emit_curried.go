package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// curriedEmitter renders the Curried{N} closure type and its accessors. Every
// other family returns a Curried{N}, so it is part of every file.
type curriedEmitter struct{}

// Name implements Emitter.
func (curriedEmitter) Name() string { return familyCurried }

// Emit implements Emitter.
func (curriedEmitter) Emit(f *jen.File, a Arity, s Scope) {
	name := a.Ident(s.Name(familyCurried))
	recv := jen.Id(name).Types(with(with([]jen.Code{jen.Id("M"), jen.Id("S")}, a.Types()...), jen.Id("R"))...)

	var producers []string
	if s.Has(familyPipe) {
		pipe := s.Name(familyPipe)
		producers = append(producers, a.Ident(pipe), a.Ident(pipe+"Mut"), a.Ident(pipe+"Once"))
	}
	if s.Has(familyTap) {
		producers = append(producers, a.Ident(s.Name(familyTap)))
	}
	f.Line()
	if len(producers) > 0 {
		f.Comment(fmt.Sprintf("%s is a closure taking %s, produced by %s.", name, a.Phrase(), orList(producers)))
	} else {
		f.Comment(fmt.Sprintf("%s is a closure taking %s.", name, a.Phrase()))
	}
	f.Comment("M records the receiver mode and S the call semantics.")
	f.Type().Id(name).Types(
		typeParams([]jen.Code{jen.Id("M").Id(identMode), jen.Id("S").Id(identSemantics)}, append(a.TypeNames(), "R")...)...,
	).Func().Params(a.Types()...).Id("R")

	f.Line()
	f.Comment("Mode returns the receiver mode the closure was built with.")
	f.Func().Params(recv).Id("Mode").Params().Id(identRecvMode).Block(
		jen.Return(jen.Id("modeOf").Types(jen.Id("M")).Call()),
	)

	f.Line()
	f.Comment("Semantics returns the call semantics the closure was built with.")
	f.Func().Params(recv).Id("Semantics").Params().Id(identCallSem).Block(
		jen.Return(jen.Id("semanticsOf").Types(jen.Id("S")).Call()),
	)

	f.Line()
	f.Comment(fmt.Sprintf("Arity returns the number of trailing arguments, %d.", a.N))
	f.Func().Params(recv).Id("Arity").Params().Int().Block(
		jen.Return(jen.Lit(a.N)),
	)

	f.Line()
	f.Comment("Reusable reports whether the closure may be called more than once.")
	f.Func().Params(recv).Id("Reusable").Params().Bool().Block(
		jen.Return(jen.Id("reusable").Types(jen.Id("M"), jen.Id("S")).Call()),
	)
}
