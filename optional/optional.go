/*
Package optional implements a carrier for values which may be absent.

An Optional is either Empty or Full(x). Absence is not an error: binding a
function over Empty just yields Empty again.

Clients inspect an Optional with a type switch-like idiom:

	var v int
	switch m := o.Match(); m {
	case m.Full(&v):
		…  // use v
	case m.Empty():
		…
	}
*/
package optional

import (
	"fmt"

	"github.com/npillmayer/kleisli"
)

// Optional holds either nothing or exactly one value of type A.
// The zero value is Empty.
type Optional[A any] struct {
	value A
	full  bool
}

// Full creates an Optional holding x.
func Full[A any](x A) Optional[A] {
	return Optional[A]{value: x, full: true}
}

// Empty creates an Optional holding nothing.
func Empty[A any]() Optional[A] {
	return Optional[A]{}
}

// IsEmpty is true for Empty.
func (o Optional[A]) IsEmpty() bool {
	return !o.full
}

// Get returns the value of o and true, or the zero value and false if o is Empty.
func (o Optional[A]) Get() (A, bool) {
	return o.value, o.full
}

// WithDefault returns the value of o, or def if o is Empty.
func (o Optional[A]) WithDefault(def A) A {
	if o.full {
		return o.value
	}
	return def
}

func (o Optional[A]) String() string {
	if o.full {
		return fmt.Sprintf("Full(%v)", o.value)
	}
	return "Empty"
}

// Match returns a Matcher for o.
func (o Optional[A]) Match() Matcher[A] {
	return matcher[A]{o: &o}
}

// Equal is true if a and b are both Empty, or both Full with equal values.
func Equal[A comparable](a, b Optional[A]) bool {
	if a.full != b.full {
		return false
	}
	return !a.full || a.value == b.value
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switching on the variant of an Optional.
// A case method returns the matcher itself if the variant matches, nil otherwise.
type Matcher[A any] interface {
	Full(*A) Matcher[A]
	Empty() Matcher[A]
}

type matcher[A any] struct {
	o *Optional[A]
}

func (mm matcher[A]) Full(v *A) Matcher[A] {
	if mm.o.full {
		*v = mm.o.value
		return mm
	}
	return nil
}

func (mm matcher[A]) Empty() Matcher[A] {
	if !mm.o.full {
		return mm
	}
	return nil
}

// --- Instance --------------------------------------------------------------

// Instance is the instance record for Optional. It implements
//
//	kleisli.Monad[A, B, Optional[A], Optional[B], Optional[func(A) B]]
type Instance[A, B any] struct{}

var _ kleisli.Monad[int, string, Optional[int], Optional[string], Optional[func(int) string]] = Instance[int, string]{}

// Map applies f to the value of o, if there is one.
func (Instance[A, B]) Map(f func(A) B, o Optional[A]) Optional[B] {
	if o.full {
		return Full(f(o.value))
	}
	return Empty[B]()
}

// Pure is Full.
func (Instance[A, B]) Pure(a A) Optional[A] {
	return Full(a)
}

// Apply is Full only if both the function and the argument are present.
func (Instance[A, B]) Apply(of Optional[func(A) B], o Optional[A]) Optional[B] {
	if of.full && o.full {
		return Full(of.value(o.value))
	}
	return Empty[B]()
}

// Bind short-circuits on Empty.
func (Instance[A, B]) Bind(f func(A) Optional[B], o Optional[A]) Optional[B] {
	if !o.full {
		return Empty[B]()
	}
	return f(o.value)
}
