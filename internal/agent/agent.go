// Package agent implements the orchestration core: it turns free-form model
// text into structured tool invocations, executes them against the tool
// registry, and feeds the results back to the model for a grounded final
// answer. The design is deliberately bounded to one tool round per user
// turn: the system prompt mandates tool requests on the first pass, so the
// second pass always has real numbers to work from, and every turn costs at
// most two model calls.
package agent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hermes-agent/hermes/internal/agent/models"
	"github.com/hermes-agent/hermes/internal/provider"
)

// Agent drives the two-phase protocol for a session. It holds no
// conversation state of its own: the transcript is owned by the caller and
// passed in per turn.
type Agent struct {
	provider     provider.Provider
	dispatcher   *Dispatcher
	systemPrompt string

	// OnToolRound, when set, is called with the invocation count just before
	// the tool round executes. The caller uses it to update the UI status.
	OnToolRound func(count int)
}

// New creates an agent over the given provider and registry. systemPrompt
// is fixed for the session.
func New(p provider.Provider, registry *Registry, systemPrompt string) *Agent {
	return &Agent{
		provider:     p,
		dispatcher:   NewDispatcher(registry),
		systemPrompt: systemPrompt,
	}
}

// ProcessMessage handles one user turn. history is the transcript so far,
// excluding the message being answered. Provider errors propagate: the
// caller layer decides how to surface them and how to record the failed
// turn. Everything reachable from tool execution is absorbed into the text
// the model reasons about and never fails the turn.
func (a *Agent) ProcessMessage(ctx context.Context, userMessage string, history []models.Message) (models.TurnResult, error) {
	messages := make([]models.Message, 0, len(history)+2)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: a.systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, models.Message{Role: models.RoleUser, Content: userMessage})

	initial, err := a.provider.Generate(ctx, messages)
	if err != nil {
		return models.TurnResult{}, err
	}

	invocations := ParseToolCalls(initial)
	if len(invocations) == 0 {
		// Conversational turn, no data needed.
		return models.TurnResult{FinalText: initial}, nil
	}

	slog.Info("tool round", "invocations", len(invocations))
	if a.OnToolRound != nil {
		a.OnToolRound(len(invocations))
	}
	toolText, log := a.dispatcher.ExecuteAll(ctx, invocations)

	messages = append(messages,
		models.Message{Role: models.RoleAssistant, Content: initial},
		models.Message{Role: models.RoleUser, Content: toolResultPrompt(toolText)},
	)

	final, err := a.provider.Generate(ctx, messages)
	if err != nil {
		return models.TurnResult{}, err
	}

	// Single tool round only: a second-pass TOOL_CALL is returned verbatim,
	// never re-parsed.
	if strings.Contains(final, "TOOL_CALL:") {
		slog.Debug("second pass emitted tool-call text; returning verbatim")
	}

	return models.TurnResult{
		FinalText:      final,
		ToolResultText: &toolText,
		LogEntries:     log,
	}, nil
}
