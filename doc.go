// Package pipei provides pipe and tap helpers for calling multi-argument
// functions in a two-stage, chain-friendly form.
//
// A pipe binds a receiver as the first argument of a function and returns a
// closure over the remaining arguments:
//
//	add := func(x, y int) int { return x + y }
//	sum := pipei.Pipe1(10, add)(5) // 15
//
// A tap runs a side effect against the receiver and hands the receiver back,
// possibly mutated:
//
//	type State struct{ Count int }
//	incr := func(s *State, n int) { s.Count += n }
//
//	s := pipei.Tap1(State{}, pipei.Mut1(incr))(1)
//	s = pipei.Tap1(s, pipei.Mut1(incr))(2) // s.Count == 3
//
// # Functions
//
// Every function is generated once per arity N, the number of trailing
// arguments taken by the returned closure. Arity 0 produces a nullary closure.
//
//   - PipeN: f receives a copy of the receiver. The closure can be called any
//     number of times.
//   - PipeMutN: f receives a pointer to the receiver held by the closure.
//     Mutations made by one call are seen by the next.
//   - PipeOnceN: the receiver is moved into the single permitted call and
//     released afterwards.
//   - TapN: runs an EffectN and returns the receiver. Tap closures are
//     single-call because the receiver is handed back to the caller.
//
// # Effects
//
// TapN accepts either reference shape through an EffectN value:
//
//   - ImmN(f): f reads the receiver, func(A0, P1..PN).
//   - MutN(f): f mutates the receiver, func(*A0, P1..PN).
//   - ImmFnN(f) / MutFnN(f): the same for an f that returns a result, which
//     is discarded, such as a pointer method reporting the new state.
//   - CompN(proj, f) / CompMutN(proj, f): f runs on a projection of the
//     receiver, such as a field.
//   - CondN(proj, f) / CondMutN(proj, f): the projection returns an Option and
//     f runs only when it is Some.
//
// The receiver type fixes A0, which decides how a func(*S, ...) is read: for a
// receiver of type S it is an exclusive-reference effect (MutN), for a
// receiver of type *S it is a shared-reference effect over the pointer (ImmN).
// The other reading does not compile. The zero EffectN has no effect.
//
// # Selecting arities
//
// Each arity lives in its own generated file guarded by a build tag. Without
// tags every arity from 0 to 100 is compiled. To compile only some arities,
// set pipei_select and one pipei_arityN tag per arity:
//
//	go build -tags pipei_select,pipei_arity0,pipei_arity1,pipei_arity2 ./...
//
// Calling a function of an arity that was not selected is a compile error.
//
// The generated files are produced by cmd/pipeigen from pipei.yaml.
package pipei

//go:generate go run ./cmd/pipeigen -config pipei.yaml
