/*
Package reader implements the function-from-environment carrier.

A Reader[T, A] is a computation producing an A from an environment of type T.
Binding readers threads one and the same environment through every step:

	Bind(f, r).Run(t) = f(r.Run(t)).Run(t)

Go functions cannot carry methods, so the function is wrapped in a single-field
struct which composes uniformly with the other carriers.
*/
package reader

import "github.com/npillmayer/kleisli"

// Reader is a computation depending on an environment of type T.
type Reader[T, A any] struct {
	run func(T) A
}

// New wraps f as a Reader.
func New[T, A any](f func(T) A) Reader[T, A] {
	return Reader[T, A]{run: f}
}

// Run applies r to the environment t.
func (r Reader[T, A]) Run(t T) A {
	return r.run(t)
}

// Ask returns the environment itself.
func Ask[T any]() Reader[T, T] {
	return New(kleisli.Identity[T])
}

// Asks projects the environment with f.
func Asks[T, A any](f func(T) A) Reader[T, A] {
	return New(f)
}

// Local runs r in an environment modified by f.
func Local[T, A any](f func(T) T, r Reader[T, A]) Reader[T, A] {
	return New(func(t T) A {
		return r.run(f(t))
	})
}

// --- Instance --------------------------------------------------------------

// Instance is the instance record for readers over environment T. It implements
//
//	kleisli.Monad[A, B, Reader[T, A], Reader[T, B], Reader[T, func(A) B]]
type Instance[T, A, B any] struct{}

var _ kleisli.Monad[int, string, Reader[int, int], Reader[int, string], Reader[int, func(int) string]] = Instance[int, int, string]{}

// Map post-composes r with f.
func (Instance[T, A, B]) Map(f func(A) B, r Reader[T, A]) Reader[T, B] {
	return New(kleisli.Compose(r.run, f))
}

// Pure ignores the environment and returns a.
func (Instance[T, A, B]) Pure(a A) Reader[T, A] {
	return New(kleisli.Const[T](a))
}

// Apply feeds the environment to both readers and applies the results.
func (Instance[T, A, B]) Apply(rf Reader[T, func(A) B], r Reader[T, A]) Reader[T, B] {
	return New(func(t T) B {
		return rf.run(t)(r.run(t))
	})
}

// Bind passes the environment to r, hands the result to f and passes the
// same environment to the reader f returns.
func (Instance[T, A, B]) Bind(f func(A) Reader[T, B], r Reader[T, A]) Reader[T, B] {
	return New(func(t T) B {
		return f(r.run(t)).run(t)
	})
}
