// Package gen renders the per-arity source files of the pipei package.
//
// Every supported arity N gets its own file, arity_NNN.go, holding the
// closure type, the pipe and tap families and the projection combinators for
// closures taking N trailing arguments. The files are independent of each
// other and gated by build tags, so a build can include any subset of them.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	pipei.yaml (compiler/load)
//	        ↓
//	   Config (functional options)
//	        ↓
//	   Features → Emitters (one family of declarations each)
//	        ↓
//	   Generator (parallel render, goimports, write if changed)
//	        ↓
//	   arity_000.go … arity_100.go
//
// # Key Types
//
//   - Config: target directory, package, header, arities, family names, tags
//     and logger
//   - Feature: a family of declarations that can be switched on or off
//   - Emitter: renders one family for one Arity within a Scope
//   - Scope: the families of a render and their configured names
//   - Arity: identifier, parameter list, file name and build tag helpers
//   - Generator: renders, writes, cleans up and checks the arity files
//
// # Build Tags
//
// Each file carries the constraint
//
//	//go:build !pipei_select || pipei_arityN
//
// A plain build compiles every arity. Building with
// -tags pipei_select,pipei_arity0,pipei_arity2 compiles arities 0 and 2 only.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ArityError: an arity outside the supported range
//   - ConfigError: configuration errors
//   - GenerationError: render, format, write and cleanup failures
//   - StaleError: generated files that differ from the configuration
//
// Example error handling:
//
//	if err := g.Check(ctx); err != nil {
//		if gen.IsStaleError(err) {
//			// regenerate
//		}
//	}
//
// Each error type implements Is for its sentinel (ErrInvalidArity,
// ErrMissingConfig, ErrGenerationFailed, ErrStale), so errors.Is works
// through wrapping.
package gen
