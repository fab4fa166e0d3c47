package list

import "fmt"

// List is a persistent singly-linked list. The zero value is Nil.
type List[A any] struct {
	cell *cell[A]
}

type cell[A any] struct {
	head A
	tail List[A]
}

// Nil returns the empty list.
func Nil[A any]() List[A] {
	return List[A]{}
}

// Cons prepends head to tail. tail is shared, not copied.
func Cons[A any](head A, tail List[A]) List[A] {
	return List[A]{cell: &cell[A]{head: head, tail: tail}}
}

// Of creates a list from the given elements, keeping their order.
func Of[A any](xs ...A) List[A] {
	l := Nil[A]()
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// IsNil is true for the empty list.
func (l List[A]) IsNil() bool {
	return l.cell == nil
}

// Uncons splits l into head and tail. ok is false for Nil.
func (l List[A]) Uncons() (head A, tail List[A], ok bool) {
	if l.cell == nil {
		return head, tail, false
	}
	return l.cell.head, l.cell.tail, true
}

// Len counts the elements of l.
func (l List[A]) Len() int {
	n := 0
	for c := l.cell; c != nil; c = c.tail.cell {
		n++
	}
	return n
}

// Slice copies the elements of l into a new slice.
func (l List[A]) Slice() []A {
	s := make([]A, 0, l.Len())
	for c := l.cell; c != nil; c = c.tail.cell {
		s = append(s, c.head)
	}
	return s
}

func (l List[A]) String() string {
	return fmt.Sprint(l.Slice())
}

// Concat returns the elements of a followed by the elements of b.
// The cells of a are copied, b is shared.
func Concat[A any](a, b List[A]) List[A] {
	if a.IsNil() {
		return b
	}
	if b.IsNil() {
		return a
	}
	front := a.Slice()
	tracer().Debugf("concat: copying %d cells in front of %v", len(front), b)
	l := b
	for i := len(front) - 1; i >= 0; i-- {
		l = Cons(front[i], l)
	}
	return l
}

// Equal is true if a and b have equal elements in the same order.
func Equal[A comparable](a, b List[A]) bool {
	x, y := a.cell, b.cell
	for x != nil && y != nil {
		if x == y {
			return true // shared tail
		}
		if x.head != y.head {
			return false
		}
		x, y = x.tail.cell, y.tail.cell
	}
	return x == nil && y == nil
}

// Match returns a Matcher for l.
func (l List[A]) Match() Matcher[A] {
	return matcher[A]{l: &l}
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switching on the variant of a List:
//
//	var h int
//	var t List[int]
//	switch m := l.Match(); m {
//	case m.Cons(&h, &t):
//	case m.Nil():
//	}
type Matcher[A any] interface {
	Nil() Matcher[A]
	Cons(*A, *List[A]) Matcher[A]
}

type matcher[A any] struct {
	l *List[A]
}

func (mm matcher[A]) Nil() Matcher[A] {
	if mm.l.IsNil() {
		return mm
	}
	return nil
}

func (mm matcher[A]) Cons(h *A, t *List[A]) Matcher[A] {
	if mm.l.IsNil() {
		return nil
	}
	*h, *t = mm.l.cell.head, mm.l.cell.tail
	return mm
}
