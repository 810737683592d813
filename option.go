package pipei

import "fmt"

// Option is a value that is either present (Some) or absent (None).
// Conditional projections return an Option to decide whether an effect runs.
// The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf adapts the comma-ok idiom: it returns Some(v) when ok is true and
// None otherwise.
//
//	v, ok := m[key]
//	opt := pipei.OptionOf(v, ok)
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// OptionFromPtr returns Some(*p) for a non-nil pointer and None for nil.
func OptionFromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the option is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// OrElse returns the held value, or fallback when the option is None.
func (o Option[T]) OrElse(fallback T) T {
	if !o.some {
		return fallback
	}
	return o.value
}

// String formats the option as Some(v) or None.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
