package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelp draws the full key help centered in a bordered modal.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("Keys")
	body := m.help.FullHelpView(m.keys.FullHelp())
	hint := styles.FaintText.Render("press any key to close")

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
