package pipei

// spend marks a single-call closure as used. A second call panics with a
// *ConsumedError describing the closure.
func spend[M Mode, S Semantics](spent *bool, arity int) {
	if *spent {
		panic(NewConsumedError(arity, modeOf[M](), semanticsOf[S]()))
	}
	*spent = true
}

// take returns *p and resets it to the zero value, so the closure holding p
// no longer keeps the value reachable.
func take[T any](p *T) T {
	v := *p
	var zero T
	*p = zero
	return v
}
