// Package models holds the UI view-model state.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Message is a chat entry as displayed, independent of the agent's
// transcript types.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// SidebarInfo is the static session information shown in the sidebar.
type SidebarInfo struct {
	Model          string
	Temperature    float64
	MaxTokens      int
	DatasetSummary string
}

// State is the complete view-model for the Bubble Tea program.
type State struct {
	Width  int
	Height int

	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Messages   []Message
	ToolEvents []string

	StatusPhase   string
	StatusMessage string
	DotCount      int

	CanSubmit   bool
	ShowSidebar bool

	Sidebar SidebarInfo
}
