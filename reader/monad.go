package reader

import "github.com/npillmayer/kleisli"

// Map post-composes r with f.
func Map[T, A, B any](f func(A) B, r Reader[T, A]) Reader[T, B] {
	return Instance[T, A, B]{}.Map(f, r)
}

// Pure creates a reader ignoring its environment.
func Pure[T, A any](a A) Reader[T, A] {
	return New(kleisli.Const[T](a))
}

// Apply applies the function read by rf to the value read by r.
func Apply[T, A, B any](rf Reader[T, func(A) B], r Reader[T, A]) Reader[T, B] {
	return Instance[T, A, B]{}.Apply(rf, r)
}

// Bind sequences r and f, sharing the environment.
func Bind[T, A, B any](f func(A) Reader[T, B], r Reader[T, A]) Reader[T, B] {
	return kleisli.Bind(Instance[T, A, B]{}, f, r)
}

// ApplyM is Apply derived from Bind and Map.
func ApplyM[T, A, B any](rf Reader[T, func(A) B], r Reader[T, A]) Reader[T, B] {
	return kleisli.ApplyM(Instance[T, func(A) B, B]{}, Instance[T, A, B]{}, rf, r)
}

// Join runs the outer reader and then the inner one, both with the same
// environment: Join(rr).Run(t) = rr.Run(t).Run(t).
func Join[T, A any](rr Reader[T, Reader[T, A]]) Reader[T, A] {
	return kleisli.Join(Instance[T, Reader[T, A], A]{}, rr)
}

// FlatMap is Bind with arguments swapped.
func FlatMap[T, A, B any](r Reader[T, A], f func(A) Reader[T, B]) Reader[T, B] {
	return kleisli.FlatMap(Instance[T, A, Reader[T, B]]{}, Instance[T, Reader[T, B], B]{}, r, f)
}

// ComposeK composes f and g in the Kleisli category of readers over T.
func ComposeK[T, A, B, C any](g func(B) Reader[T, C], f func(A) Reader[T, B]) func(A) Reader[T, C] {
	return kleisli.ComposeK(Instance[T, B, C]{}, g, f)
}

// Then runs r for nothing and returns the result of s.
func Then[T, A, B any](r Reader[T, A], s Reader[T, B]) Reader[T, B] {
	return kleisli.Then(Instance[T, A, B]{}, r, s)
}
