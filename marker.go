package pipei

// ReceiverMode describes how a receiver is passed to the target function.
type ReceiverMode uint8

const (
	_ ReceiverMode = iota

	// ByShared passes a read-only view of the receiver (a copy in Go).
	ByShared

	// ByExclusive passes a pointer to the receiver held by the closure.
	ByExclusive

	// ByValue moves the receiver into a single call.
	ByValue
)

// String returns the name of the receiver mode.
func (m ReceiverMode) String() string {
	switch m {
	case ByShared:
		return "shared"
	case ByExclusive:
		return "exclusive"
	case ByValue:
		return "value"
	default:
		return "unknown"
	}
}

// CallSemantics describes what a produced closure returns.
type CallSemantics uint8

const (
	_ CallSemantics = iota

	// Transform returns the result of the target function.
	Transform

	// Inspect discards the effect and returns the receiver.
	Inspect
)

// String returns the name of the call semantics.
func (s CallSemantics) String() string {
	switch s {
	case Transform:
		return "pipe"
	case Inspect:
		return "tap"
	default:
		return "unknown"
	}
}

// Projection describes how an effect narrows the receiver before running.
type Projection uint8

const (
	// Direct runs the effect on the receiver itself.
	Direct Projection = iota

	// Unconditional runs the effect on a projection that always succeeds.
	Unconditional

	// Conditional runs the effect only when the projection yields a value.
	Conditional
)

// String returns the name of the projection kind.
func (p Projection) String() string {
	switch p {
	case Direct:
		return "direct"
	case Unconditional:
		return "comp"
	case Conditional:
		return "cond"
	default:
		return "unknown"
	}
}

// Imm marks a receiver passed by shared reference.
type Imm struct{}

// ReceiverMode returns ByShared.
func (Imm) ReceiverMode() ReceiverMode { return ByShared }

// Mut marks a receiver passed by exclusive reference.
type Mut struct{}

// ReceiverMode returns ByExclusive.
func (Mut) ReceiverMode() ReceiverMode { return ByExclusive }

// Own marks a receiver moved by value.
type Own struct{}

// ReceiverMode returns ByValue.
func (Own) ReceiverMode() ReceiverMode { return ByValue }

// PipeMark marks a closure that returns the target's result.
type PipeMark struct{}

// CallSemantics returns Transform.
func (PipeMark) CallSemantics() CallSemantics { return Transform }

// TapMark marks a closure that returns the receiver.
type TapMark struct{}

// CallSemantics returns Inspect.
func (TapMark) CallSemantics() CallSemantics { return Inspect }

// Mode is satisfied by the three receiver-mode markers.
type Mode interface {
	Imm | Mut | Own
	ReceiverMode() ReceiverMode
}

// RefMode is satisfied by the reference receiver-mode markers, the only
// modes an effect can take.
type RefMode interface {
	Imm | Mut
	ReceiverMode() ReceiverMode
}

// Semantics is satisfied by the two call-semantics markers.
type Semantics interface {
	PipeMark | TapMark
	CallSemantics() CallSemantics
}

// modeOf returns the receiver mode recorded by the marker M.
func modeOf[M Mode]() ReceiverMode {
	var m M
	return m.ReceiverMode()
}

// semanticsOf returns the call semantics recorded by the marker S.
func semanticsOf[S Semantics]() CallSemantics {
	var s S
	return s.CallSemantics()
}

// reusable reports whether a closure produced with the given markers may be
// called more than once.
func reusable[M Mode, S Semantics]() bool {
	return semanticsOf[S]() == Transform && modeOf[M]() != ByValue
}
