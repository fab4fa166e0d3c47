package optional_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	. "github.com/npillmayer/kleisli/optional"
)

func TestOptionalSimple(t *testing.T) {
	x := Full(7) // infers type
	y := Empty[int]()

	var v int
	switch m := x.Match(); m {
	case m.Full(&v):
		t.Logf("Full(%d)", v)
	case m.Empty():
		t.Logf("Empty")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	empty := false
	switch m := y.Match(); m {
	case m.Full(&w):
		t.Logf("Full(%d)", w)
	case m.Empty():
		empty = true
	}
	if !empty || w != 0 {
		t.Errorf("expected Empty to match Empty(), didn't (w = %#v)", w)
	}
	var zero Optional[string]
	if !zero.IsEmpty() {
		t.Error("expected zero value of Optional to be Empty, isn't")
	}
}

func TestOptionalWithDefault(t *testing.T) {
	if xx := Full(7).WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Full(7) to have value 7, hasn't")
	}
	if yy := Empty[int]().WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Empty to default to 100, doesn't")
	}
}

func TestOptionalMap(t *testing.T) {
	twice := func(n int) int { return n * 2 }
	if v, ok := Map(twice, Full(10)).Get(); !ok || v != 20 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Map(…, Full 10) to return 20, didn't")
	}
	if !Map(twice, Empty[int]()).IsEmpty() {
		t.Error("expected Map(…, Empty) to return Empty, didn't")
	}
}

func TestOptionalBind(t *testing.T) {
	double := func(n int) Optional[int] { return Full(n + n) }
	if x := Bind(double, Full(7)); !Equal(x, Full(14)) {
		t.Errorf("expected bind(n+n, Full 7) to be Full(14), is %v", x)
	}
	called := false
	f := func(n int) Optional[int] {
		called = true
		return Full(n)
	}
	if x := Bind(f, Empty[int]()); !x.IsEmpty() {
		t.Errorf("expected bind(f, Empty) to be Empty, is %v", x)
	}
	if called {
		t.Error("expected bind to short-circuit on Empty, f has been called")
	}

	gt0 := func(n int) Optional[bool] {
		if n > 0 {
			return Full(true)
		}
		return Empty[bool]()
	}
	gt := AndThen(gt0, Full(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Full(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Empty():
		t.Error("expected Full(7) |> andThen(gt0) to be true, isn't")
	}
}

func TestOptionalJoin(t *testing.T) {
	if x := Join(Full(Full(3))); !Equal(x, Full(3)) {
		t.Errorf("expected Join(Full(Full 3)) to be Full(3), is %v", x)
	}
	if x := Join(Full(Empty[int]())); !x.IsEmpty() {
		t.Errorf("expected Join(Full(Empty)) to be Empty, is %v", x)
	}
	if x := Join(Empty[Optional[int]]()); !x.IsEmpty() {
		t.Errorf("expected Join(Empty) to be Empty, is %v", x)
	}
}

func TestOptionalComposeK(t *testing.T) {
	half := func(n int) Optional[int] {
		if n%2 == 0 {
			return Full(n / 2)
		}
		return Empty[int]()
	}
	quarter := ComposeK(half, half)
	if x := quarter(12); !Equal(x, Full(3)) {
		t.Errorf("expected quarter(12) to be Full(3), is %v", x)
	}
	if x := quarter(6); !x.IsEmpty() {
		t.Errorf("expected quarter(6) to be Empty, is %v", x)
	}
	if x := Then(Empty[int](), Full("a")); !x.IsEmpty() {
		t.Errorf("expected Then(Empty, …) to be Empty, is %v", x)
	}
	if x := Then(Full(1), Full("a")); !Equal(x, Full("a")) {
		t.Errorf("expected Then(Full 1, Full a) to be Full(a), is %v", x)
	}
}

func genOptional() gopter.Gen {
	return gen.PtrOf(gen.IntRange(-1000, 1000)).Map(func(p *int) Optional[int] {
		if p == nil {
			return Empty[int]()
		}
		return Full(*p)
	})
}

func TestOptionalLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	f := func(n int) Optional[int] {
		if n%3 == 0 {
			return Empty[int]()
		}
		return Full(n + 1)
	}
	g := func(n int) Optional[int] {
		if n < 0 {
			return Empty[int]()
		}
		return Full(n * 2)
	}

	properties.Property("left identity", prop.ForAll(
		func(a int) bool {
			return Equal(Bind(f, Pure(a)), f(a))
		},
		gen.IntRange(-1000, 1000),
	))
	properties.Property("right identity", prop.ForAll(
		func(x Optional[int]) bool {
			return Equal(Bind(Pure[int], x), x)
		},
		genOptional(),
	))
	properties.Property("associativity", prop.ForAll(
		func(x Optional[int]) bool {
			return Equal(Bind(g, Bind(f, x)), Bind(ComposeK(g, f), x))
		},
		genOptional(),
	))
	properties.Property("join . map f = bind f", prop.ForAll(
		func(x Optional[int]) bool {
			return Equal(Join(Map(f, x)), Bind(f, x))
		},
		genOptional(),
	))
	properties.Property("flatMap = bind", prop.ForAll(
		func(x Optional[int]) bool {
			return Equal(FlatMap(x, g), Bind(g, x))
		},
		genOptional(),
	))
	properties.Property("applyM = apply", prop.ForAll(
		func(x Optional[int], withFunc bool) bool {
			of := Empty[func(int) int]()
			if withFunc {
				of = Full(func(n int) int { return n - 5 })
			}
			return Equal(ApplyM(of, x), Apply(of, x))
		},
		genOptional(), gen.Bool(),
	))

	properties.TestingRun(t)
}
