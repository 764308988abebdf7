package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/five82/todo/internal/todoapi"
)

func TestFromAPIError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"not found", todoapi.ErrItemNotFound, UserError},
		{"wrapped not found", fmt.Errorf("get: %w", todoapi.ErrItemNotFound), UserError},
		{"unknown status", todoapi.UnknownAPIError{Code: 500}, BackendError},
		{"transport", &todoapi.TransportError{Op: "execute request", Err: errors.New("refused")}, BackendError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromAPIError(tt.err); got != tt.want {
				t.Errorf("FromAPIError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
