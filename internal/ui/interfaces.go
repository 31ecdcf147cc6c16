package ui

import "context"

// UserInterface defines the contract the agent loop programs against. The
// loop never touches Bubble Tea internals; it reads input and writes
// messages, status updates, and tool events through this interface.
//
// All blocking methods accept a context for cancellation: if the user quits
// the UI, the context is cancelled and implementations return immediately.
type UserInterface interface {
	// ReadInput blocks until the user submits a message
	ReadInput(ctx context.Context, prompt string) (string, error)

	// WriteStatus displays ephemeral status updates (e.g., "Thinking...")
	WriteStatus(phase string, message string)

	// WriteMessage displays an assistant response in the chat
	WriteMessage(content string)

	// WriteToolEvent appends an entry to the sidebar's tool-call log
	WriteToolEvent(description string)

	// Ready is closed when the UI can accept requests
	Ready() <-chan struct{}

	// Start runs the UI until the user exits
	Start() error
}
