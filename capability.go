package kleisli

// Functor is the capability to map a function over a carrier.
// KA and KB are the carrier types holding values of type A and B.
type Functor[A, B, KA, KB any] interface {
	Map(f func(A) B, ka KA) KB
}

// Pointed is the capability to lift a plain value into a carrier.
type Pointed[A, KA any] interface {
	Pure(a A) KA
}

// Applicative extends Functor with Pure and Apply. KF is the carrier
// holding functions of type func(A) B.
type Applicative[A, B, KA, KB, KF any] interface {
	Functor[A, B, KA, KB]
	Pointed[A, KA]
	Apply(kf KF, ka KA) KB
}

// Monad extends Applicative with Bind, the single primitive every carrier
// has to supply. Bind has to be associative:
//
//	Bind(g, Bind(f, x)) ≡ Bind(func(a A) KC { return Bind(g, f(a)) }, x)
type Monad[A, B, KA, KB, KF any] interface {
	Applicative[A, B, KA, KB, KF]
	Bind(f func(A) KB, ka KA) KB
}
