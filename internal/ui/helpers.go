package ui

import (
	"fmt"
	"time"

	"github.com/five82/todo/internal/output"
)

const (
	// DefaultUIInterval is how often the view re-reads the store.
	DefaultUIInterval = time.Second
	// ActionTimeout bounds a single mutation or manual refresh.
	ActionTimeout = 15 * time.Second
	// DefaultUserID owns tasks created from the UI.
	DefaultUserID = "1"
)

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

func describeError(err error) string {
	return output.DescribeError(err)
}

func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
