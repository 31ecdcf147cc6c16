// Package services provides rendering helpers for the UI layer.
package services

import "github.com/charmbracelet/glamour"

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer implements MarkdownRenderer with glamour.
type GlamourRenderer struct{}

// NewGlamourRenderer creates a GlamourRenderer.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{}
}

// Render renders markdown word-wrapped to width. A renderer is built per
// call because glamour fixes the wrap width at construction and the
// terminal can resize between calls.
func (GlamourRenderer) Render(content string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(content)
}

// RenderMarkdown renders content with the given renderer, falling back to
// the raw text on error so a rendering bug never hides a response.
func RenderMarkdown(content string, width int, renderer MarkdownRenderer) string {
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content, width)
	if err != nil {
		return content
	}
	return out
}
