package views

import (
	"strings"

	"github.com/hermes-agent/hermes/internal/ui/models"
	"github.com/hermes-agent/hermes/internal/ui/services"
)

const welcomeText = `Welcome to Hermes, your logistics assistant.

Ask me about shipments, delays, routes, or warehouses.
Commands: /sidebar toggle info panel, /export save transcript, /help`

// RenderChat renders the message history viewport.
func RenderChat(s models.State) string {
	if len(s.Messages) == 0 {
		return WelcomeStyle.Render(welcomeText)
	}
	return s.Viewport.View()
}

// FormatChatContent formats the messages for the viewport. User messages
// are plain styled text; assistant messages render as markdown.
func FormatChatContent(messages []models.Message, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range messages {
		if msg.Role == "user" {
			lines = append(lines, UserMessageStyle.Render("You: "+msg.Content))
		} else {
			lines = append(lines, AssistantMessageStyle.Render(services.RenderMarkdown(msg.Content, width, renderer)))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
