package effect

import "github.com/npillmayer/kleisli"

// Map applies f to the value produced by io.
func Map[A, B any](f func(A) B, io IO[A]) IO[B] {
	return Instance[A, B]{}.Map(f, io)
}

// Pure produces a without effects.
func Pure[A any](a A) IO[A] {
	return Instance[A, A]{}.Pure(a)
}

// Apply runs iof and io in order and applies the function to the value.
func Apply[A, B any](iof IO[func(A) B], io IO[A]) IO[B] {
	return Instance[A, B]{}.Apply(iof, io)
}

// Bind sequences io and f.
func Bind[A, B any](f func(A) IO[B], io IO[A]) IO[B] {
	return kleisli.Bind(Instance[A, B]{}, f, io)
}

// ApplyM is Apply derived from Bind and Map.
func ApplyM[A, B any](iof IO[func(A) B], io IO[A]) IO[B] {
	return kleisli.ApplyM(Instance[func(A) B, B]{}, Instance[A, B]{}, iof, io)
}

// Join runs the outer IO, then the IO it produced.
func Join[A any](ii IO[IO[A]]) IO[A] {
	return kleisli.Join(Instance[IO[A], A]{}, ii)
}

// FlatMap is Bind with arguments swapped.
func FlatMap[A, B any](io IO[A], f func(A) IO[B]) IO[B] {
	return kleisli.FlatMap(Instance[A, IO[B]]{}, Instance[IO[B], B]{}, io, f)
}

// ComposeK composes f and g in the Kleisli category of IO.
func ComposeK[A, B, C any](g func(B) IO[C], f func(A) IO[B]) func(A) IO[C] {
	return kleisli.ComposeK(Instance[B, C]{}, g, f)
}

// Then runs io, discards its value and runs next.
func Then[A, B any](io IO[A], next IO[B]) IO[B] {
	return kleisli.Then(Instance[A, B]{}, io, next)
}
