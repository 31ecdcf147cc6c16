package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt(t *testing.T) {
	date := time.Date(2024, time.November, 15, 0, 0, 0, 0, time.UTC)
	prompt := SystemPrompt("- get_dataset_summary: Overview of the dataset.", date)

	assert.Contains(t, prompt, "You are Hermes")
	assert.Contains(t, prompt, "Today's date is: November 15, 2024")
	assert.Contains(t, prompt, "- get_dataset_summary: Overview of the dataset.")
	assert.Contains(t, prompt, `TOOL_CALL: tool_name(param1="value1", param2="value2")`)
}

func TestToolResultPrompt(t *testing.T) {
	prompt := toolResultPrompt("**Tool: analyze_delays**\n\nDelayed: 4")

	assert.Contains(t, prompt, "Here are the tool results:")
	assert.Contains(t, prompt, "Delayed: 4")
	assert.Contains(t, prompt, "answer the user's original question")
}
