package views

import (
	"fmt"
	"strings"

	"github.com/hermes-agent/hermes/internal/ui/models"
)

// RenderSidebar renders the info panel: session settings, chat statistics,
// dataset summary, and the tool-call log.
func RenderSidebar(s models.State) string {
	var b strings.Builder

	b.WriteString(SidebarTitleStyle.Render("Agent Settings"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Provider: Gemini\n")
	fmt.Fprintf(&b, "Model: %s\n", s.Sidebar.Model)
	fmt.Fprintf(&b, "Temperature: %g\n", s.Sidebar.Temperature)
	fmt.Fprintf(&b, "Max Tokens: %d\n", s.Sidebar.MaxTokens)

	b.WriteString("\n")
	b.WriteString(SidebarTitleStyle.Render("Chat Statistics"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Messages: %d\n", len(s.Messages))
	fmt.Fprintf(&b, "Tool Calls: %d\n", len(s.ToolEvents))

	if len(s.ToolEvents) > 0 {
		b.WriteString("\n")
		b.WriteString(SidebarTitleStyle.Render("Tool Call Log"))
		b.WriteString("\n")
		events := s.ToolEvents
		if len(events) > 8 {
			events = events[len(events)-8:]
		}
		for _, e := range events {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	if s.Sidebar.DatasetSummary != "" {
		b.WriteString("\n")
		b.WriteString(SidebarTitleStyle.Render("Dataset"))
		b.WriteString("\n")
		b.WriteString(s.Sidebar.DatasetSummary)
	}

	return SidebarStyle.Render(b.String())
}
