package optional

import "github.com/npillmayer/kleisli"

// Map applies f to the value of o, if present.
func Map[A, B any](f func(A) B, o Optional[A]) Optional[B] {
	return Instance[A, B]{}.Map(f, o)
}

// Pure is Full.
func Pure[A any](a A) Optional[A] {
	return Full(a)
}

// Apply applies the function in of to the value in o, if both are present.
func Apply[A, B any](of Optional[func(A) B], o Optional[A]) Optional[B] {
	return Instance[A, B]{}.Apply(of, o)
}

// Bind returns f(x) for o = Full(x) and Empty otherwise.
func Bind[A, B any](f func(A) Optional[B], o Optional[A]) Optional[B] {
	return kleisli.Bind(Instance[A, B]{}, f, o)
}

// AndThen is Bind under its Elm name.
func AndThen[A, B any](f func(A) Optional[B], o Optional[A]) Optional[B] {
	return Bind(f, o)
}

// ApplyM is Apply derived from Bind and Map.
func ApplyM[A, B any](of Optional[func(A) B], o Optional[A]) Optional[B] {
	return kleisli.ApplyM(Instance[func(A) B, B]{}, Instance[A, B]{}, of, o)
}

// Join collapses Full(Full(x)) to Full(x) and everything else to Empty.
func Join[A any](oo Optional[Optional[A]]) Optional[A] {
	return kleisli.Join(Instance[Optional[A], A]{}, oo)
}

// FlatMap is Bind with arguments swapped.
func FlatMap[A, B any](o Optional[A], f func(A) Optional[B]) Optional[B] {
	return kleisli.FlatMap(Instance[A, Optional[B]]{}, Instance[Optional[B], B]{}, o, f)
}

// ComposeK composes f and g in the Kleisli category of Optional.
// The composite is Empty as soon as either step is.
func ComposeK[A, B, C any](g func(B) Optional[C], f func(A) Optional[B]) func(A) Optional[C] {
	return kleisli.ComposeK(Instance[B, C]{}, g, f)
}

// Then returns p if o is Full, Empty otherwise.
func Then[A, B any](o Optional[A], p Optional[B]) Optional[B] {
	return kleisli.Then(Instance[A, B]{}, o, p)
}
