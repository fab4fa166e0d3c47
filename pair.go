package kleisli

import "fmt"

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a Pair from x and y.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
