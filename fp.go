package kleisli

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that ignores its argument and produces a.
func Const[S, T any](a T) func(S) T {
	return func(S) T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
