package views

import (
	"github.com/hermes-agent/hermes/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout: chat (with optional sidebar),
// input bar, status line.
func RenderRoot(s models.State) string {
	chat := RenderChat(s)
	if s.ShowSidebar {
		chat = lipgloss.JoinHorizontal(lipgloss.Top, chat, RenderSidebar(s))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		chat,
		RenderInput(s),
		RenderStatus(s),
	)
}
