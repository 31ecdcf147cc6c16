package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hermes-agent/hermes/internal/ui/models"
)

// ExportTranscript writes the conversation and tool-call log to a markdown
// file in the working directory and returns its path. The filename carries
// a timestamp so repeated exports never clobber each other.
func ExportTranscript(messages []models.Message, toolEvents []string, now time.Time) (string, error) {
	path := fmt.Sprintf("chat_export_%s.md", now.Format("20060102_150405"))

	var b strings.Builder
	b.WriteString("# Hermes Chat Export\n\n")
	fmt.Fprintf(&b, "Exported: %s\n\n", now.Format(time.RFC3339))

	for _, msg := range messages {
		fmt.Fprintf(&b, "**%s:** %s\n\n", strings.ToUpper(msg.Role), msg.Content)
	}

	if len(toolEvents) > 0 {
		b.WriteString("## Tool Call Log\n\n")
		for _, e := range toolEvents {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
