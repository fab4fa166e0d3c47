/*
Package effect makes Go's own way of sequencing side effects a carrier for the
capabilities of package kleisli.

In Go, an effectful step is a function taking a context and returning a value
and an error. IO wraps exactly that:

	type IO[A any] struct{ run func(context.Context) (A, error) }

Bind is a pass-through to plain Go sequencing: run the first step, stop on the
first error, otherwise hand the value to the continuation and run its result
with the same context. Nothing is re-derived; ordering, suspension and
cancellation behave exactly as they would in hand-written Go.

Both runs two effects concurrently, on top of golang.org/x/sync/errgroup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package effect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kleisli.effect'.
func tracer() tracing.Trace {
	return tracing.Select("kleisli.effect")
}
