package exactlyone

import "github.com/npillmayer/kleisli"

// Map applies f to the value of x.
func Map[A, B any](f func(A) B, x ExactlyOne[A]) ExactlyOne[B] {
	return Instance[A, B]{}.Map(f, x)
}

// Pure wraps a.
func Pure[A any](a A) ExactlyOne[A] {
	return New(a)
}

// Apply applies the function in xf to the value in x.
func Apply[A, B any](xf ExactlyOne[func(A) B], x ExactlyOne[A]) ExactlyOne[B] {
	return Instance[A, B]{}.Apply(xf, x)
}

// Bind returns f applied to the value of x.
func Bind[A, B any](f func(A) ExactlyOne[B], x ExactlyOne[A]) ExactlyOne[B] {
	return kleisli.Bind(Instance[A, B]{}, f, x)
}

// ApplyM is Apply derived from Bind and Map.
func ApplyM[A, B any](xf ExactlyOne[func(A) B], x ExactlyOne[A]) ExactlyOne[B] {
	return kleisli.ApplyM(Instance[func(A) B, B]{}, Instance[A, B]{}, xf, x)
}

// Join unwraps one level of nesting.
func Join[A any](xx ExactlyOne[ExactlyOne[A]]) ExactlyOne[A] {
	return kleisli.Join(Instance[ExactlyOne[A], A]{}, xx)
}

// FlatMap is Bind with arguments swapped.
func FlatMap[A, B any](x ExactlyOne[A], f func(A) ExactlyOne[B]) ExactlyOne[B] {
	return kleisli.FlatMap(Instance[A, ExactlyOne[B]]{}, Instance[ExactlyOne[B], B]{}, x, f)
}

// ComposeK composes f and g in the Kleisli category of ExactlyOne.
func ComposeK[A, B, C any](g func(B) ExactlyOne[C], f func(A) ExactlyOne[B]) func(A) ExactlyOne[C] {
	return kleisli.ComposeK(Instance[B, C]{}, g, f)
}

// Then returns y.
func Then[A, B any](x ExactlyOne[A], y ExactlyOne[B]) ExactlyOne[B] {
	return kleisli.Then(Instance[A, B]{}, x, y)
}
