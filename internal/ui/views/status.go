package views

import (
	"fmt"
	"strings"

	"github.com/hermes-agent/hermes/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatus renders the status bar: phase indicator on the left, model
// name on the right.
func RenderStatus(s models.State) string {
	var icon string
	var style lipgloss.Style

	switch s.StatusPhase {
	case "thinking":
		icon = s.Spinner.View()
		style = StatusThinkingStyle
		dots := strings.Repeat(".", s.DotCount)
		return style.Render(fmt.Sprintf("%s Thinking%s", icon, dots))
	case "analyzing":
		icon = s.Spinner.View()
		style = StatusExecutingStyle
	case "error":
		icon = "✗"
		style = StatusErrorStyle
	default:
		style = StatusDefaultStyle
	}

	status := "Ready"
	if s.StatusMessage != "" {
		status = strings.TrimSpace(fmt.Sprintf("%s %s", icon, s.StatusMessage))
	}

	left := style.Render(status)
	if s.Sidebar.Model != "" {
		right := StatusDefaultStyle.Render(s.Sidebar.Model)
		return fmt.Sprintf("%s  %s", left, right)
	}
	return left
}
