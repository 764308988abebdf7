package ui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/todo/internal/todoapi"
)

// renderHeader renders the status bar with connection state and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	sep := "  "

	if !m.snapshot.HasTasks {
		parts := []string{styles.Logo.Render("todo")}
		if m.snapshot.LastError != nil {
			parts = append(parts,
				styles.DangerText.Render("API "+classifyConnectionError(m.snapshot.LastError)),
				styles.WarningText.Render("Retrying..."),
			)
		} else {
			parts = append(parts, styles.WarningText.Render("Connecting to "+truncateMiddle(m.endpoint, 40)+"..."))
		}
		return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
	}

	open, finished := m.snapshot.Counts()
	parts := []string{styles.Logo.Render("todo")}

	if m.snapshot.IsOffline() {
		parts = append(parts, styles.StatusStyle("offline").Render("OFFLINE"))
	} else {
		parts = append(parts, styles.SuccessText.Render("● ON"))
	}

	parts = append(parts,
		styles.MutedText.Render("Open:")+" "+styles.StatusStyle("open").Render(fmt.Sprintf("%d", open)),
		styles.MutedText.Render("Done:")+" "+styles.StatusStyle("finished").Render(fmt.Sprintf("%d", finished)),
	)

	if m.width >= 100 && m.endpoint != "" {
		parts = append(parts, styles.FaintText.Render(truncateMiddle(m.endpoint, 40)))
	}

	parts = append(parts, styles.MutedText.Render(m.formatTimestamp()))

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return "never"
	}
	return humanizeDuration(time.Since(m.lastUpdated)) + " ago"
}

// renderCommandBar renders the footer: prompt, confirmation, flash or key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	switch {
	case m.prompting:
		return styles.Footer.Width(m.width).Render(
			styles.AccentText.Render("New task ") + m.input.View())
	case m.confirmDelete:
		return styles.Footer.Width(m.width).Render(
			styles.DangerText.Render(fmt.Sprintf("Delete task %s? ", m.pendingDelete)) +
				styles.MutedText.Render("y/d to confirm, any key to cancel"))
	}

	line := m.help.ShortHelpView(m.keys.ShortHelp())
	line += "  " + styles.AccentText.Render("T") + ":" + styles.FaintText.Render(m.theme.Name)
	if m.hideFinished {
		line += "  " + styles.WarningText.Render("[open only]")
	}
	if m.flash != "" {
		flashStyle := styles.SuccessText
		if m.flashIsErr {
			flashStyle = styles.DangerText
		}
		line = flashStyle.Render(truncate(m.flash, max(10, m.width/2))) + "  " + line
	}
	return styles.Footer.Width(m.width).Render(lipgloss.NewStyle().MaxWidth(max(0, m.width-2)).Render(line))
}

// classifyConnectionError turns a refresh error into a short header label.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	if code, ok := todoapi.StatusCode(err); ok {
		return fmt.Sprintf("STATUS %d", code)
	}
	if todoapi.IsNotFound(err) {
		return "NOT FOUND"
	}

	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.As(err, &dnsErr):
		return "DNS ERROR"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "TIMEOUT"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "OFFLINE"
	case todoapi.IsTransport(err):
		return "UNREACHABLE"
	default:
		return "ERROR"
	}
}

// truncate truncates a string to max runes with ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// truncateMiddle truncates a string in the middle, preserving start and end.
func truncateMiddle(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 5 {
		return s[:max]
	}
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return s[:startLen] + "..." + s[len(s)-endLen:]
}
