package todoapi

import (
	"errors"
	"fmt"
)

// APIError is the closed set of failures a client call can produce:
// ItemNotFoundError, UnknownAPIError and *TransportError.
type APIError interface {
	error
	apiError()
}

// ItemNotFoundError reports a 404 from the service.
type ItemNotFoundError struct{}

// ErrItemNotFound is the single ItemNotFoundError value.
var ErrItemNotFound APIError = ItemNotFoundError{}

func (ItemNotFoundError) Error() string { return "item not found" }
func (ItemNotFoundError) apiError()     {}

// UnknownAPIError reports any other non-2xx status, or a 2xx response whose
// body could not be decoded. Code is the status observed.
type UnknownAPIError struct {
	Code int
}

func (e UnknownAPIError) Error() string {
	return fmt.Sprintf("unknown api error: status %d", e.Code)
}

func (UnknownAPIError) apiError() {}

// TransportError reports a failure before a status code was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (*TransportError) apiError() {}

var errNilClient = errors.New("client is nil")

// IsNotFound reports whether err is, or wraps, ErrItemNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}

// StatusCode returns the status carried by an UnknownAPIError in err's chain.
func StatusCode(err error) (int, bool) {
	var unknown UnknownAPIError
	if errors.As(err, &unknown) {
		return unknown.Code, true
	}
	return 0, false
}

// IsTransport reports whether err is, or wraps, a *TransportError.
func IsTransport(err error) bool {
	var transport *TransportError
	return errors.As(err, &transport)
}
