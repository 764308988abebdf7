// Package output provides formatters for CLI output.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/todo/internal/todoapi"
)

// FormatTask writes one task line: "[x]  {ID:>4}  {TITLE}".
func FormatTask(w io.Writer, task todoapi.TaskDto) {
	fmt.Fprintf(w, "%s %4s  %s\n", Marker(task.IsFinished), task.ID, NormalizeTitle(task.Title))
}

// FormatTaskDetail writes every field of a task, one per line.
func FormatTaskDetail(w io.Writer, task todoapi.TaskDto) {
	fmt.Fprintf(w, "id:       %s\n", task.ID)
	fmt.Fprintf(w, "user:     %s\n", task.UserID)
	fmt.Fprintf(w, "title:    %s\n", NormalizeTitle(task.Title))
	fmt.Fprintf(w, "finished: %t\n", task.IsFinished)
}

// FormatTasks writes every task followed by a summary line.
func FormatTasks(w io.Writer, tasks []todoapi.TaskDto) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	finished := 0
	for _, t := range tasks {
		FormatTask(w, t)
		if t.IsFinished {
			finished++
		}
	}
	fmt.Fprintf(w, "%d tasks, %d finished\n", len(tasks), finished)
}

// Marker returns the checkbox used for a task.
func Marker(finished bool) string {
	if finished {
		return "[x]"
	}
	return "[ ]"
}

// DescribeError renders a client failure for the terminal.
func DescribeError(err error) string {
	var unknown todoapi.UnknownAPIError
	var transport *todoapi.TransportError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, todoapi.ErrItemNotFound):
		return "task not found"
	case errors.As(err, &unknown):
		return fmt.Sprintf("api returned status %d", unknown.Code)
	case errors.As(err, &transport):
		return fmt.Sprintf("cannot reach api: %v", transport)
	default:
		return err.Error()
	}
}

// NormalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
