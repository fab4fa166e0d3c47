package effect

import (
	"context"

	"github.com/npillmayer/kleisli"
	"github.com/npillmayer/kleisli/result"
	"golang.org/x/sync/errgroup"
)

// IO is an effectful computation producing an A. The zero value produces the
// zero value of A without any effect.
type IO[A any] struct {
	run func(context.Context) (A, error)
}

// New wraps a Go function as an IO.
func New[A any](f func(context.Context) (A, error)) IO[A] {
	return IO[A]{run: f}
}

// Delay wraps a function which cannot fail.
func Delay[A any](f func() A) IO[A] {
	return New(func(context.Context) (A, error) {
		return f(), nil
	})
}

// Fail creates an IO which fails with err.
func Fail[A any](err error) IO[A] {
	return New(func(context.Context) (A, error) {
		var zero A
		return zero, err
	})
}

// Run executes io. It does not start if ctx is already done.
func (io IO[A]) Run(ctx context.Context) (A, error) {
	var zero A
	if err := ctx.Err(); err != nil {
		tracer().Debugf("refusing to run IO: %v", err)
		return zero, err
	}
	if io.run == nil {
		return zero, nil
	}
	return io.run(ctx)
}

// Attempt runs io and folds the outcome into a Result.
func Attempt[A any](ctx context.Context, io IO[A]) result.Result[A] {
	x, err := io.Run(ctx)
	return result.From(x, err)
}

// Both runs a and b concurrently. If one of them fails, the context of the
// other one is cancelled and the first error is returned.
func Both[A, B any](a IO[A], b IO[B]) IO[kleisli.Pair[A, B]] {
	return New(func(ctx context.Context) (kleisli.Pair[A, B], error) {
		var p kleisli.Pair[A, B]
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			p.Left, err = a.Run(gctx)
			return
		})
		g.Go(func() (err error) {
			p.Right, err = b.Run(gctx)
			return
		})
		if err := g.Wait(); err != nil {
			tracer().Errorf("concurrent IO failed: %v", err)
			return kleisli.Pair[A, B]{}, err
		}
		return p, nil
	})
}

// --- Instance --------------------------------------------------------------

// Instance is the instance record for IO. It implements
//
//	kleisli.Monad[A, B, IO[A], IO[B], IO[func(A) B]]
type Instance[A, B any] struct{}

var _ kleisli.Monad[int, string, IO[int], IO[string], IO[func(int) string]] = Instance[int, string]{}

// Map applies f to the value produced by io.
func (Instance[A, B]) Map(f func(A) B, io IO[A]) IO[B] {
	return New(func(ctx context.Context) (B, error) {
		a, err := io.Run(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// Pure produces a without effects.
func (Instance[A, B]) Pure(a A) IO[A] {
	return New(func(context.Context) (A, error) {
		return a, nil
	})
}

// Apply runs iof, then io, and applies the function to the value.
func (Instance[A, B]) Apply(iof IO[func(A) B], io IO[A]) IO[B] {
	return New(func(ctx context.Context) (B, error) {
		var zero B
		f, err := iof.Run(ctx)
		if err != nil {
			return zero, err
		}
		a, err := io.Run(ctx)
		if err != nil {
			return zero, err
		}
		return f(a), nil
	})
}

// Bind runs io and passes its value to f, then runs the result of f.
func (Instance[A, B]) Bind(f func(A) IO[B], io IO[A]) IO[B] {
	return New(func(ctx context.Context) (B, error) {
		a, err := io.Run(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Run(ctx)
	})
}
