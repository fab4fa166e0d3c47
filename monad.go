package kleisli

// Operations derived from Bind, Map and Pure. None of them knows anything about
// a concrete carrier.

// Bind sequences ka through f, using the instance record m.
func Bind[A, B, KA, KB, KF any, M Monad[A, B, KA, KB, KF]](m M, f func(A) KB, ka KA) KB {
	return m.Bind(f, ka)
}

// ApplyM applies a carrier of functions to a carrier of arguments, using
// nothing but Bind and Map:
//
//	ApplyM(kf, ka) = Bind(g -> Map(g, ka), kf)
//
// m is the monad instance for the carrier of functions, fm the functor instance
// for the carrier of arguments. For every lawful carrier the result equals the
// carrier's native Apply.
func ApplyM[A, B, KA, KB, KF, KX any, M Monad[func(A) B, B, KF, KB, KX], F Functor[A, B, KA, KB]](
	m M, fm F, kf KF, ka KA) KB {
	return m.Bind(func(g func(A) B) KB {
		return fm.Map(g, ka)
	}, kf)
}

// Join removes one level of nesting from kka. The carrier of carriers KKA
// is bound with the identity function, which has exactly the shape Bind
// expects when KA takes the role of the plain value type.
func Join[A, KA, KKA, KF any, M Monad[KA, A, KKA, KA, KF]](m M, kka KKA) KA {
	return m.Bind(Identity[KA], kka)
}

// FlatMap is Bind with arguments swapped. It is derived from Join and Map
// alone:
//
//	FlatMap(ka, f) = Join(Map(f, ka))
//
// fm is the functor instance mapping A to the carrier KB, m the monad
// instance joining the resulting KKB.
func FlatMap[A, B, KA, KB, KKB, KF any, F Functor[A, KB, KA, KKB], M Monad[KB, B, KKB, KB, KF]](
	fm F, m M, ka KA, f func(A) KB) KB {
	return Join[B, KB, KKB, KF](m, fm.Map(f, ka))
}

// ComposeK is composition in the Kleisli category of a carrier:
//
//	ComposeK(g, f)(a) = Bind(g, f(a))
//
// Associativity of ComposeK is equivalent to associativity of Bind.
func ComposeK[A, B, C, KB, KC, KF any, M Monad[B, C, KB, KC, KF]](
	m M, g func(B) KC, f func(A) KB) func(A) KC {
	return func(a A) KC {
		return m.Bind(g, f(a))
	}
}

// Then sequences ka and kb, discarding the value(s) of ka. The shape of ka
// still matters: an empty ka yields an empty result.
func Then[A, B, KA, KB, KF any, M Monad[A, B, KA, KB, KF]](m M, ka KA, kb KB) KB {
	return m.Bind(Const[A](kb), ka)
}

// LiftM maps f over ka using only Bind and Pure. p lifts values of type B.
// For every lawful carrier the result equals the carrier's native Map.
func LiftM[A, B, KA, KB, KF any, M Monad[A, B, KA, KB, KF], P Pointed[B, KB]](
	m M, p P, f func(A) B, ka KA) KB {
	return m.Bind(func(a A) KB {
		return p.Pure(f(a))
	}, ka)
}
