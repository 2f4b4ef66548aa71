// Package value implements the deferred witness values the circuit layer is
// built around. A Value either holds a concrete element ("known", during
// witness generation) or nothing at all ("unknown", during shape analysis).
// Combinators propagate the unknown state structurally, which is what lets a
// circuit's shape be derived before any witness exists.
package value

// Value is a deferred, at-most-once-computed quantity of type T.
// The zero Value is unknown.
type Value[T any] struct {
	v     T
	known bool
}

// Known returns a Value holding v.
func Known[T any](v T) Value[T] {
	return Value[T]{v: v, known: true}
}

// Unknown returns a Value holding nothing.
func Unknown[T any]() Value[T] {
	return Value[T]{}
}

// IsKnown reports whether the value is concrete.
func (v Value[T]) IsKnown() bool {
	return v.known
}

// Get returns the concrete value, if any.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.known
}

// MustGet returns the concrete value and panics on an unknown Value.
// It is for callers that have already checked IsKnown.
func (v Value[T]) MustGet() T {
	if !v.known {
		panic("value: MustGet on unknown value")
	}
	return v.v
}

// Pair is the result of zipping two Values.
type Pair[T, U any] struct {
	A T
	B U
}

// Map applies f to the contents of v. Unknown stays unknown; f must be
// side-effect free since shape analysis may drop its result.
func Map[T, U any](v Value[T], f func(T) U) Value[U] {
	if !v.known {
		return Value[U]{}
	}
	return Known(f(v.v))
}

// Zip combines two Values into one; the result is known only if both are.
func Zip[T, U any](a Value[T], b Value[U]) Value[Pair[T, U]] {
	if !a.known || !b.known {
		return Value[Pair[T, U]]{}
	}
	return Known(Pair[T, U]{A: a.v, B: b.v})
}
