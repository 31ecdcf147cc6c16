// Package models holds the data types shared by the agent core: the
// conversation transcript, parsed tool invocations, the execution audit
// log, and the per-turn result handed back to the caller.
package models

import "time"

// Role values for Message. The provider layer is responsible for mapping
// these onto whatever role vocabulary its API uses.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in the conversation transcript. The transcript
// is append-only; past entries are never mutated.
type Message struct {
	Role    string
	Content string
}

// ToolInvocation is one structured tool call extracted from free-form model
// text. Args values are restricted to nil, int, or string by the parser's
// coercion rules. Invocations live only for the turn that produced them.
type ToolInvocation struct {
	Name string
	Args map[string]any
}

// ExecutionLogEntry records one tool dispatch. Entries are appended to the
// session log before the tool runs, so a crashing tool still leaves a trail.
type ExecutionLogEntry struct {
	Tool      string
	Args      map[string]any
	Timestamp time.Time
}

// TurnResult is what one user turn produces. ToolResultText is nil when the
// turn needed no data (the short-circuit path). LogEntries holds only this
// turn's dispatches; the caller merges them into its session log.
type TurnResult struct {
	FinalText      string
	ToolResultText *string
	LogEntries     []ExecutionLogEntry
}
