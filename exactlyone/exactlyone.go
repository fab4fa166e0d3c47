/*
Package exactlyone implements the simplest carrier there is: a box holding
exactly one value. It is the identity monad, useful as a baseline when checking
derived operations.
*/
package exactlyone

import (
	"fmt"

	"github.com/npillmayer/kleisli"
)

// ExactlyOne wraps a single value. It is never empty and never holds more
// than one value.
type ExactlyOne[A any] struct {
	value A
}

// New wraps a.
func New[A any](a A) ExactlyOne[A] {
	return ExactlyOne[A]{value: a}
}

// Value unwraps x.
func (x ExactlyOne[A]) Value() A {
	return x.value
}

func (x ExactlyOne[A]) String() string {
	return fmt.Sprintf("ExactlyOne(%v)", x.value)
}

// --- Instance --------------------------------------------------------------

// Instance is the instance record for ExactlyOne. It implements
//
//	kleisli.Monad[A, B, ExactlyOne[A], ExactlyOne[B], ExactlyOne[func(A) B]]
type Instance[A, B any] struct{}

var _ kleisli.Monad[int, string, ExactlyOne[int], ExactlyOne[string], ExactlyOne[func(int) string]] = Instance[int, string]{}

// Map applies f to the wrapped value.
func (Instance[A, B]) Map(f func(A) B, x ExactlyOne[A]) ExactlyOne[B] {
	return New(f(x.value))
}

// Pure wraps a.
func (Instance[A, B]) Pure(a A) ExactlyOne[A] {
	return New(a)
}

// Apply applies the wrapped function to the wrapped argument.
func (Instance[A, B]) Apply(xf ExactlyOne[func(A) B], x ExactlyOne[A]) ExactlyOne[B] {
	return New(xf.value(x.value))
}

// Bind is f applied to the wrapped value; there is nothing to combine.
func (Instance[A, B]) Bind(f func(A) ExactlyOne[B], x ExactlyOne[A]) ExactlyOne[B] {
	return f(x.value)
}
