package helper

// TypedValueOf asserts raw to the expected type T.
// It works for both interface and concrete targets.
func TypedValueOf[T any](raw any) (res T, ok bool) {
	res, ok = raw.(T)
	return
}

// Must is the panic-on-failure variant for (value, error) results.
// Use when failure means a programming error rather than bad input.
func Must[T any](res T, err error) T {
	if err != nil {
		panic(err)
	}
	return res
}
