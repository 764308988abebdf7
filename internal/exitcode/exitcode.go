// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"errors"

	"github.com/five82/todo/internal/todoapi"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, task not found).
	UserError = 1

	// ConfigError indicates the configuration could not be loaded.
	ConfigError = 2

	// BackendError indicates an API status or network error.
	BackendError = 3
)

// FromAPIError maps a client failure to an exit code.
func FromAPIError(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, todoapi.ErrItemNotFound):
		return UserError
	default:
		return BackendError
	}
}
