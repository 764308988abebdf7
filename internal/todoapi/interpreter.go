package todoapi

import "net/http"

// Decoder turns a 2xx body into a value.
type Decoder[T any] func(body []byte) (T, error)

// Interpret classifies a status/body pair. 404 is checked before the 2xx
// range, so it never counts as success. A nil decoder yields the zero value
// for any 2xx. Decode failures become UnknownAPIError with the same status.
func Interpret[T any](status int, body []byte, decode Decoder[T]) Result[T] {
	switch {
	case status == http.StatusNotFound:
		return Failure[T](ErrItemNotFound)
	case status >= 200 && status <= 299:
		if decode == nil {
			var zero T
			return Success(zero)
		}
		v, err := decode(body)
		if err != nil {
			return Failure[T](UnknownAPIError{Code: status})
		}
		return Success(v)
	default:
		return Failure[T](UnknownAPIError{Code: status})
	}
}
