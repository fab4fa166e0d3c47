package list_test

import (
	"testing"

	"github.com/npillmayer/kleisli/list"
	"pgregory.net/rapid"
)

func drawList(t *rapid.T, label string) list.List[int] {
	return list.Of(rapid.SliceOfN(rapid.IntRange(-50, 50), 0, 8).Draw(t, label)...)
}

// f and g produce lists of varying length, including Nil.
func f(n int) list.List[int] {
	if n%4 == 0 {
		return list.Nil[int]()
	}
	return list.Of(n, n+1)
}

func g(n int) list.List[int] {
	if n < 0 {
		return list.Of(-n)
	}
	return list.Of(n, 2*n, 3*n)
}

func TestListLeftIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(-1000, 1000).Draw(t, "a")
		if !list.Equal(list.Bind(f, list.Pure(a)), f(a)) {
			t.Fatalf("left identity violated for a=%d", a)
		}
	})
}

func TestListRightIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := drawList(t, "xs")
		if !list.Equal(list.Bind(list.Pure[int], xs), xs) {
			t.Fatalf("right identity violated for xs=%v", xs)
		}
	})
}

func TestListAssociativity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := drawList(t, "xs")
		left := list.Bind(g, list.Bind(f, xs))
		right := list.Bind(list.ComposeK(g, f), xs)
		if !list.Equal(left, right) {
			t.Fatalf("associativity violated for xs=%v: %v != %v", xs, left, right)
		}
	})
}

func TestListDerivedOperations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := drawList(t, "xs")
		bound := list.Bind(f, xs)
		if joined := list.Join(list.Map(f, xs)); !list.Equal(joined, bound) {
			t.Fatalf("join . map f != bind f for xs=%v", xs)
		}
		if flat := list.FlatMap(xs, f); !list.Equal(flat, bound) {
			t.Fatalf("flatMap != bind for xs=%v", xs)
		}
		fs := list.Of(func(n int) int { return n + 1 }, func(n int) int { return -n })
		if !list.Equal(list.ApplyM(fs, xs), list.Apply(fs, xs)) {
			t.Fatalf("applyM != apply for xs=%v", xs)
		}
	})
}
