/*
Package list implements an immutable persistent singly-linked list and makes
it a carrier for the capabilities of package kleisli.

A List is either Nil or Cons(head, tail). Lists are never modified: Cons shares
the tail it is given, and Concat copies its first argument only, sharing the
second one. Lists are therefore inherently concurrency-safe.

Bind for lists is flat-mapping: f is applied to every element in order and the
resulting lists are concatenated. The implementation follows the recursive
definition

	Bind(f, Nil)        = Nil
	Bind(f, Cons(h, t)) = Concat(f(h), Bind(f, t))

and is quadratic in the worst case; clarity wins over speed here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kleisli.list'.
func tracer() tracing.Trace {
	return tracing.Select("kleisli.list")
}
