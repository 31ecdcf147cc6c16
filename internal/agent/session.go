package agent

import "github.com/hermes-agent/hermes/internal/agent/models"

// Session owns the state that outlives a turn: the conversation transcript
// and the tool execution log. It belongs to the caller (the UI loop), which
// passes the transcript into ProcessMessage and merges each TurnResult back
// in. The log is an explicit object here, not ambient global state, so
// nothing reaches into it implicitly.
//
// A session is confined to one goroutine; at most one turn is processed at
// a time.
type Session struct {
	history []models.Message
	toolLog []models.ExecutionLogEntry
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// History returns the transcript so far. The returned slice is the
// session's own backing array; callers treat it as read-only.
func (s *Session) History() []models.Message {
	return s.history
}

// ToolLog returns the accumulated execution log.
func (s *Session) ToolLog() []models.ExecutionLogEntry {
	return s.toolLog
}

// AppendUser records a user message.
func (s *Session) AppendUser(content string) {
	s.history = append(s.history, models.Message{Role: models.RoleUser, Content: content})
}

// AppendAssistant records an assistant message. On provider failure the
// caller records the error text here, so the failed turn's user message
// still has a matching assistant entry and the transcript stays coherent.
func (s *Session) AppendAssistant(content string) {
	s.history = append(s.history, models.Message{Role: models.RoleAssistant, Content: content})
}

// MergeTurn appends a completed turn's log entries to the session log.
func (s *Session) MergeTurn(result models.TurnResult) {
	s.toolLog = append(s.toolLog, result.LogEntries...)
}
