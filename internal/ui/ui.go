// Package ui implements the Bubble Tea chat interface. The agent loop
// talks to it through channels behind the UserInterface facade, so tea
// internals never leak into the orchestration code.
package ui

import (
	"context"

	"github.com/hermes-agent/hermes/internal/ui/models"
	"github.com/hermes-agent/hermes/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
)

// UI implements UserInterface using Bubble Tea.
type UI struct {
	program *tea.Program

	inputReq  chan string
	inputResp chan string

	statusChan    chan statusMsg
	messageChan   chan string
	toolEventChan chan string

	readyChan chan struct{}
}

type statusMsg struct {
	phase   string
	message string
}

// NewUI creates a Bubble Tea UI. sidebar holds the static session
// information shown in the info panel.
func NewUI(renderer services.MarkdownRenderer, sidebar models.SidebarInfo) *UI {
	u := &UI{
		inputReq:      make(chan string),
		inputResp:     make(chan string),
		statusChan:    make(chan statusMsg, 10),
		messageChan:   make(chan string, 10),
		toolEventChan: make(chan string, 10),
		readyChan:     make(chan struct{}),
	}

	model := newBubbleTeaModel(
		u.inputReq,
		u.inputResp,
		u.statusChan,
		u.messageChan,
		u.toolEventChan,
		u.readyChan,
		renderer,
		sidebar,
	)
	u.program = tea.NewProgram(model, tea.WithAltScreen())
	return u
}

// Start runs the UI program until the user exits.
func (u *UI) Start() error {
	_, err := u.program.Run()
	return err
}

// ReadInput prompts the user and blocks until they submit a message.
func (u *UI) ReadInput(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case u.inputReq <- prompt:
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case response := <-u.inputResp:
			return response, nil
		}
	}
}

// WriteStatus updates the status bar.
func (u *UI) WriteStatus(phase string, message string) {
	select {
	case u.statusChan <- statusMsg{phase: phase, message: message}:
	default:
		// Drop if channel is full
	}
}

// WriteMessage sends an assistant message to the chat.
func (u *UI) WriteMessage(content string) {
	select {
	case u.messageChan <- content:
	default:
		// Drop if channel is full
	}
}

// WriteToolEvent appends an entry to the sidebar's tool-call log.
func (u *UI) WriteToolEvent(description string) {
	select {
	case u.toolEventChan <- description:
	default:
		// Drop if channel is full
	}
}

// Ready returns a channel closed when the UI can accept requests.
func (u *UI) Ready() <-chan struct{} {
	return u.readyChan
}
