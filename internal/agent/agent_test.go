package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/hermes-agent/hermes/internal/agent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider implements provider.Provider with canned responses and
// records every outbound message sequence.
type mockProvider struct {
	responses []string
	errs      []error
	calls     [][]models.Message
}

func (m *mockProvider) Generate(ctx context.Context, messages []models.Message) (string, error) {
	call := len(m.calls)
	m.calls = append(m.calls, append([]models.Message(nil), messages...))

	if call < len(m.errs) && m.errs[call] != nil {
		return "", m.errs[call]
	}
	if call < len(m.responses) {
		return m.responses[call], nil
	}
	return "", errors.New("unexpected extra call")
}

func newTestAgent(p *mockProvider) *Agent {
	registry := NewRegistry(
		okTool("get_dataset_summary", "Total Shipments: 10"),
		okTool("analyze_delays", "Delayed Shipments: 4"),
		failTool("broken", errors.New("boom")),
	)
	return New(p, registry, "system prompt text")
}

func TestProcessMessage_ConversationalTurn(t *testing.T) {
	p := &mockProvider{responses: []string{"Hi! I'm Hermes."}}
	a := newTestAgent(p)

	result, err := a.ProcessMessage(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, "Hi! I'm Hermes.", result.FinalText)
	assert.Nil(t, result.ToolResultText)
	assert.Empty(t, result.LogEntries)
	require.Len(t, p.calls, 1)

	// Outbound sequence is system prompt followed by the user message.
	first := p.calls[0]
	require.Len(t, first, 2)
	assert.Equal(t, models.RoleSystem, first[0].Role)
	assert.Equal(t, "system prompt text", first[0].Content)
	assert.Equal(t, models.RoleUser, first[1].Role)
	assert.Equal(t, "hello", first[1].Content)
}

func TestProcessMessage_ToolTurn(t *testing.T) {
	p := &mockProvider{responses: []string{
		"TOOL_CALL: get_dataset_summary()",
		"You have 10 shipments.",
	}}
	a := newTestAgent(p)

	result, err := a.ProcessMessage(context.Background(), "how many shipments?", nil)

	require.NoError(t, err)
	assert.Equal(t, "You have 10 shipments.", result.FinalText)
	require.NotNil(t, result.ToolResultText)
	assert.Contains(t, *result.ToolResultText, "**Tool: get_dataset_summary**")
	assert.Contains(t, *result.ToolResultText, "Total Shipments: 10")
	require.Len(t, result.LogEntries, 1)
	assert.Equal(t, "get_dataset_summary", result.LogEntries[0].Tool)

	require.Len(t, p.calls, 2)

	// Second pass carries the first response and the tool results, framed by
	// the follow-up instruction.
	second := p.calls[1]
	require.Len(t, second, 4)
	assert.Equal(t, models.RoleAssistant, second[2].Role)
	assert.Equal(t, "TOOL_CALL: get_dataset_summary()", second[2].Content)
	assert.Equal(t, models.RoleUser, second[3].Role)
	assert.Contains(t, second[3].Content, "Here are the tool results:")
	assert.Contains(t, second[3].Content, "Total Shipments: 10")
}

func TestProcessMessage_HistoryIncluded(t *testing.T) {
	p := &mockProvider{responses: []string{"Sure."}}
	a := newTestAgent(p)

	history := []models.Message{
		{Role: models.RoleUser, Content: "earlier question"},
		{Role: models.RoleAssistant, Content: "earlier answer"},
	}
	_, err := a.ProcessMessage(context.Background(), "follow-up", history)

	require.NoError(t, err)
	require.Len(t, p.calls, 1)
	first := p.calls[0]
	require.Len(t, first, 4)
	assert.Equal(t, "earlier question", first[1].Content)
	assert.Equal(t, "earlier answer", first[2].Content)
	assert.Equal(t, "follow-up", first[3].Content)
}

func TestProcessMessage_SecondPassToolCallReturnedVerbatim(t *testing.T) {
	secondPass := "TOOL_CALL: analyze_delays()"
	p := &mockProvider{responses: []string{
		"TOOL_CALL: get_dataset_summary()",
		secondPass,
	}}
	a := newTestAgent(p)

	result, err := a.ProcessMessage(context.Background(), "stats?", nil)

	require.NoError(t, err)
	// One tool round only. The second-pass call text is the final answer,
	// never re-dispatched.
	assert.Equal(t, secondPass, result.FinalText)
	require.Len(t, p.calls, 2)
	require.Len(t, result.LogEntries, 1)
	assert.Equal(t, "get_dataset_summary", result.LogEntries[0].Tool)
}

func TestProcessMessage_ToolErrorAbsorbedIntoText(t *testing.T) {
	p := &mockProvider{responses: []string{
		"TOOL_CALL: broken()",
		"Something went wrong with the analysis.",
	}}
	a := newTestAgent(p)

	result, err := a.ProcessMessage(context.Background(), "run it", nil)

	require.NoError(t, err)
	require.NotNil(t, result.ToolResultText)
	assert.Contains(t, *result.ToolResultText, "Error executing broken: boom")
	require.Len(t, result.LogEntries, 1)
}

func TestProcessMessage_UnknownToolAbsorbedIntoText(t *testing.T) {
	p := &mockProvider{responses: []string{
		"TOOL_CALL: not_a_tool()",
		"I could not find that tool.",
	}}
	a := newTestAgent(p)

	result, err := a.ProcessMessage(context.Background(), "run it", nil)

	require.NoError(t, err)
	require.NotNil(t, result.ToolResultText)
	assert.Contains(t, *result.ToolResultText, "Tool 'not_a_tool' not found")
}

func TestProcessMessage_FirstPassErrorPropagates(t *testing.T) {
	p := &mockProvider{errs: []error{errors.New("rate limited")}}
	a := newTestAgent(p)

	_, err := a.ProcessMessage(context.Background(), "hello", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestProcessMessage_SecondPassErrorPropagates(t *testing.T) {
	p := &mockProvider{
		responses: []string{"TOOL_CALL: get_dataset_summary()"},
		errs:      []error{nil, errors.New("timeout")},
	}
	a := newTestAgent(p)

	_, err := a.ProcessMessage(context.Background(), "stats?", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestProcessMessage_OnToolRoundHook(t *testing.T) {
	p := &mockProvider{responses: []string{
		"TOOL_CALL: get_dataset_summary()\nTOOL_CALL: analyze_delays()",
		"Done.",
	}}
	a := newTestAgent(p)

	var counts []int
	a.OnToolRound = func(count int) { counts = append(counts, count) }

	_, err := a.ProcessMessage(context.Background(), "overview", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, counts)

	// Conversational turns never fire the hook.
	p2 := &mockProvider{responses: []string{"Hi!"}}
	a2 := newTestAgent(p2)
	a2.OnToolRound = func(count int) { counts = append(counts, count) }
	_, err = a2.ProcessMessage(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, counts)
}

func TestProcessMessage_MultipleToolsOneRound(t *testing.T) {
	p := &mockProvider{responses: []string{
		"TOOL_CALL: get_dataset_summary()\nTOOL_CALL: analyze_delays()",
		"Summary: 10 shipments, 4 delayed.",
	}}
	a := newTestAgent(p)

	result, err := a.ProcessMessage(context.Background(), "overview please", nil)

	require.NoError(t, err)
	require.Len(t, result.LogEntries, 2)
	assert.Equal(t, "get_dataset_summary", result.LogEntries[0].Tool)
	assert.Equal(t, "analyze_delays", result.LogEntries[1].Tool)
	require.NotNil(t, result.ToolResultText)
	assert.Contains(t, *result.ToolResultText, "\n\n---\n\n")
}
