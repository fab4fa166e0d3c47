package list

import "github.com/npillmayer/kleisli"

// Instance is the instance record for List. It implements
//
//	kleisli.Monad[A, B, List[A], List[B], List[func(A) B]]
type Instance[A, B any] struct{}

var _ kleisli.Monad[int, string, List[int], List[string], List[func(int) string]] = Instance[int, string]{}

// Map applies f to every element of xs.
func (Instance[A, B]) Map(f func(A) B, xs List[A]) List[B] {
	ys := make([]B, 0, xs.Len())
	for c := xs.cell; c != nil; c = c.tail.cell {
		ys = append(ys, f(c.head))
	}
	return Of(ys...)
}

// Pure creates a singleton list.
func (Instance[A, B]) Pure(a A) List[A] {
	return Cons(a, Nil[A]())
}

// Apply applies every function of fs to every element of xs. The result is
// function-major: all results of the first function come first.
func (Instance[A, B]) Apply(fs List[func(A) B], xs List[A]) List[B] {
	var ys []B
	for fc := fs.cell; fc != nil; fc = fc.tail.cell {
		for xc := xs.cell; xc != nil; xc = xc.tail.cell {
			ys = append(ys, fc.head(xc.head))
		}
	}
	return Of(ys...)
}

// Bind flat-maps f over xs, preserving order and multiplicities.
func (inst Instance[A, B]) Bind(f func(A) List[B], xs List[A]) List[B] {
	if xs.IsNil() {
		return Nil[B]()
	}
	return Concat(f(xs.cell.head), inst.Bind(f, xs.cell.tail))
}

// --- Operations on lists ---------------------------------------------------

// Map applies f to every element of xs.
func Map[A, B any](f func(A) B, xs List[A]) List[B] {
	return Instance[A, B]{}.Map(f, xs)
}

// Pure creates a singleton list.
func Pure[A any](a A) List[A] {
	return Cons(a, Nil[A]())
}

// Apply is the cross product of fs and xs, in function-major order.
func Apply[A, B any](fs List[func(A) B], xs List[A]) List[B] {
	return Instance[A, B]{}.Apply(fs, xs)
}

// Bind applies f to every element of xs and concatenates the results.
func Bind[A, B any](f func(A) List[B], xs List[A]) List[B] {
	return kleisli.Bind(Instance[A, B]{}, f, xs)
}

// ApplyM is Apply derived from Bind and Map.
func ApplyM[A, B any](fs List[func(A) B], xs List[A]) List[B] {
	return kleisli.ApplyM(Instance[func(A) B, B]{}, Instance[A, B]{}, fs, xs)
}

// Join flattens a list of lists, outer order first, inner order second.
func Join[A any](xss List[List[A]]) List[A] {
	return kleisli.Join(Instance[List[A], A]{}, xss)
}

// FlatMap is Bind with arguments swapped.
func FlatMap[A, B any](xs List[A], f func(A) List[B]) List[B] {
	return kleisli.FlatMap(Instance[A, List[B]]{}, Instance[List[B], B]{}, xs, f)
}

// ComposeK composes f and g in the Kleisli category of List.
func ComposeK[A, B, C any](g func(B) List[C], f func(A) List[B]) func(A) List[C] {
	return kleisli.ComposeK(Instance[B, C]{}, g, f)
}

// Then repeats ys once for every element of xs.
func Then[A, B any](xs List[A], ys List[B]) List[B] {
	return kleisli.Then(Instance[A, B]{}, xs, ys)
}
