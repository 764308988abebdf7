package todoapi

// Result holds either a success value or an APIError, never both.
type Result[T any] struct {
	value T
	err   APIError
}

// Success wraps a value.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure wraps an error. err must not be nil.
func Failure[T any](err APIError) Result[T] {
	if err == nil {
		panic("todoapi: Failure called with nil error")
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() APIError {
	return r.err
}

// Unpack converts the result into Go's usual (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
