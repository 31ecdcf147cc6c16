// Package provider defines the contract between the agent core and the
// language model backing it.
package provider

import (
	"context"

	"github.com/hermes-agent/hermes/internal/agent/models"
)

// Provider represents the interface to the language model. Generate accepts
// a full outbound message sequence (a system-role entry followed by
// arbitrary user/assistant alternation) and returns the model's text.
// Errors are transport-level (unreachable, misconfigured, blocked) and are
// the only failures the agent core lets escape to the caller.
type Provider interface {
	Generate(ctx context.Context, messages []models.Message) (string, error)
}
