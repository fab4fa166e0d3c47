/*
Package kleisli derives functors, applicatives and monads from first principles,
for a small set of carrier types:

	exactlyone.ExactlyOne[A]   a box holding exactly one value
	optional.Optional[A]       Empty or Full(a)
	list.List[A]               a persistent singly-linked list
	reader.Reader[T, A]        a computation reading an environment of type T
	effect.IO[A]               Go's native effectful sequencing, passed through

Go lacks higher-kinded types, so a capability cannot be attached to a carrier
type directly. Instead every carrier package exports an instance record, a
zero-size generic struct whose methods mention the concrete carrier types:

	list.Instance[A, B]  implements  Monad[A, B, List[A], List[B], List[func(A) B]]

The generic operations of this package take an instance record as a value of a
type parameter bound by one of the capability constraints. Dispatch is therefore
resolved at compile time, and every derived operation is written exactly once:

	Join(m, kka)          = m.Bind(Identity, kka)
	FlatMap(fm, m, ka, f) = Join(m, fm.Map(f, ka))
	ComposeK(m, g, f)(a)  = m.Bind(g, f(a))
	ApplyM(m, fm, kf, ka) = m.Bind(func(g) { return fm.Map(g, ka) }, kf)

Carrier packages wrap these with their own instance records, so clients usually
write list.Join(xss) rather than kleisli.Join(list.Instance[List[int], int]{}, xss).

Instances have to honour the monad laws, which the type system cannot check:

	left identity:   Bind(f, Pure(a))        ≡ f(a)
	right identity:  Bind(Pure, x)           ≡ x
	associativity:   Bind(g, Bind(f, x))     ≡ Bind(ComposeK(g, f), x)

The carrier packages verify them with property tests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package kleisli
