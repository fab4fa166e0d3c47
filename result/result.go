/*
Package result holds the outcome of a computation that may fail: either a
value or an error. It is what running an effect.IO yields when clients prefer
a single value over Go's (value, error) pair.
*/
package result

import "fmt"

// Result is either Ok(value) or Err(error).
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful Result holding x.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err creates a failed Result. A nil err yields Ok with the zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From folds a (value, error) pair into a Result.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// IsOk is true if r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get unfolds r into Go's (value, error) convention.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Error returns the error of r, or nil.
func (r Result[T]) Error() error {
	return r.err
}

// WithDefault returns the value of r, or def if r failed.
func (r Result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Match returns a Matcher for r.
func (r Result[T]) Match() Matcher[T] {
	return matcher[T]{r: &r}
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switching on the variant of a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r *Result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
