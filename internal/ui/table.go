package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/todo/internal/todoapi"
)

const (
	idColumnWidth   = 5
	userColumnWidth = 5
	markColumnWidth = 3
)

// renderMain lays out header, task table and command bar.
func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderCommandBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Render(m.renderTable(bodyHeight))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderTable renders the visible window of tasks around the selection.
func (m Model) renderTable(height int) string {
	styles := m.theme.Styles()
	tasks := m.visibleTasks()

	if len(tasks) == 0 {
		msg := "No tasks"
		if m.hideFinished && len(m.snapshot.Tasks) > 0 {
			msg = "All tasks finished (press f to show them)"
		} else if !m.snapshot.HasTasks {
			msg = "Waiting for the first refresh..."
		}
		return styles.MutedText.Padding(1, 2).Render(msg)
	}

	titleWidth := m.width - idColumnWidth - userColumnWidth - markColumnWidth - 6
	if titleWidth < 10 {
		titleWidth = 10
	}

	rows := make([]string, 0, height)
	rows = append(rows, styles.FaintText.Bold(true).Render(
		fmt.Sprintf(" %-*s %*s %*s  %s", markColumnWidth, "", idColumnWidth, "ID", userColumnWidth, "USER", "TITLE")))

	limit := height - 1
	start, end := visibleWindow(len(tasks), m.selectedRow, limit)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(tasks[i], i == m.selectedRow, titleWidth, styles))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderRow(task todoapi.TaskDto, selected bool, titleWidth int, styles Styles) string {
	mark := "[ ]"
	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColors["open"]))
	titleStyle := styles.Text
	if task.IsFinished {
		mark = "[x]"
		markStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColors["finished"]))
		titleStyle = styles.MutedText.Strikethrough(true)
	}

	line := fmt.Sprintf(" %s %*s %*s  %s",
		markStyle.Render(mark),
		idColumnWidth, truncate(task.ID, idColumnWidth),
		userColumnWidth, truncate(task.UserID, userColumnWidth),
		titleStyle.Render(truncate(task.Title, titleWidth)),
	)
	if selected {
		return styles.Selected.Width(m.width).Render(line)
	}
	return line
}

// visibleWindow returns the [start, end) slice of rows that keeps selected in view.
func visibleWindow(total, selected, limit int) (int, int) {
	if limit <= 0 || total == 0 {
		return 0, 0
	}
	if total <= limit {
		return 0, total
	}
	start := selected - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > total {
		start = total - limit
	}
	return start, start + limit
}
