package gen

import (
	"fmt"
	"strconv"

	"github.com/dave/jennifer/jen"
)

// Arity is the number of trailing arguments, beyond the receiver, taken by
// the closures generated for one file.
type Arity struct {
	N int
}

// Ident returns the exported identifier for base at this arity, e.g. "Pipe2".
func (a Arity) Ident(base string) string {
	return base + strconv.Itoa(a.N)
}

// FileName returns the name of the generated file, e.g. "arity_002.go".
func (a Arity) FileName() string {
	return fmt.Sprintf("arity_%03d.go", a.N)
}

// BuildTag returns the tag that enables this arity, e.g. "pipei_arity2".
func (a Arity) BuildTag(prefix string) string {
	return prefix + strconv.Itoa(a.N)
}

// Constraint returns the //go:build expression guarding the file. The file is
// compiled when no selection is made, or when its own tag is set.
func (a Arity) Constraint(selectTag, prefix string) string {
	return "!" + selectTag + " || " + a.BuildTag(prefix)
}

// TypeNames returns the trailing argument type parameter names P1..PN.
func (a Arity) TypeNames() []string {
	names := make([]string, a.N)
	for i := range names {
		names[i] = "P" + strconv.Itoa(i+1)
	}
	return names
}

// ArgNames returns the trailing argument names p1..pN.
func (a Arity) ArgNames() []string {
	names := make([]string, a.N)
	for i := range names {
		names[i] = "p" + strconv.Itoa(i+1)
	}
	return names
}

// Types returns P1..PN as identifiers, for type argument and parameter lists.
func (a Arity) Types() []jen.Code {
	return ids(a.TypeNames())
}

// Args returns p1..pN as identifiers, for call sites.
func (a Arity) Args() []jen.Code {
	return ids(a.ArgNames())
}

// Params returns the named parameter list "p1 P1, ..., pN PN".
func (a Arity) Params() []jen.Code {
	types, args := a.TypeNames(), a.ArgNames()
	params := make([]jen.Code, a.N)
	for i := range params {
		params[i] = jen.Id(args[i]).Id(types[i])
	}
	return params
}

// Phrase describes how many arguments the produced closure takes, as used in
// generated doc comments: "no arguments", "1 argument", "3 arguments".
func (a Arity) Phrase() string {
	switch a.N {
	case 0:
		return "no arguments"
	case 1:
		return "1 argument"
	default:
		return strconv.Itoa(a.N) + " arguments"
	}
}

// ids converts names to identifiers.
func ids(names []string) []jen.Code {
	codes := make([]jen.Code, len(names))
	for i, n := range names {
		codes[i] = jen.Id(n)
	}
	return codes
}

// with returns head followed by tail as a new slice.
func with(head []jen.Code, tail ...jen.Code) []jen.Code {
	out := make([]jen.Code, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

// typeParams builds a type parameter list where every name shares the "any"
// constraint, e.g. [A0, P1, R any]. Constrained leading parameters such as
// "M Mode" are passed in lead.
func typeParams(lead []jen.Code, names ...string) []jen.Code {
	codes := make([]jen.Code, 0, len(lead)+len(names))
	codes = append(codes, lead...)
	for i, n := range names {
		if i == len(names)-1 {
			codes = append(codes, jen.Id(n).Id("any"))
			break
		}
		codes = append(codes, jen.Id(n))
	}
	return codes
}
