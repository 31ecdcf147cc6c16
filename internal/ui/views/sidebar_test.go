package views

import (
	"fmt"
	"testing"

	"github.com/hermes-agent/hermes/internal/ui/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderSidebar(t *testing.T) {
	s := models.State{
		Messages: []models.Message{
			{Role: "user", Content: "q"},
			{Role: "assistant", Content: "a"},
		},
		ToolEvents: []string{"get_dataset_summary()"},
		Sidebar: models.SidebarInfo{
			Model:          "gemini-2.5-flash",
			Temperature:    0.0,
			MaxTokens:      2048,
			DatasetSummary: "Dataset Summary:\n- Total Shipments: 10",
		},
	}

	out := RenderSidebar(s)

	assert.Contains(t, out, "Agent Settings")
	assert.Contains(t, out, "Model: gemini-2.5-flash")
	assert.Contains(t, out, "Temperature: 0")
	assert.Contains(t, out, "Max Tokens: 2048")
	assert.Contains(t, out, "Messages: 2")
	assert.Contains(t, out, "Tool Calls: 1")
	assert.Contains(t, out, "get_dataset_summary()")
	assert.Contains(t, out, "Total Shipments: 10")
}

func TestRenderSidebar_ToolLogCappedAtEight(t *testing.T) {
	var events []string
	for i := 1; i <= 12; i++ {
		events = append(events, fmt.Sprintf("call_%d", i))
	}
	s := models.State{ToolEvents: events}

	out := RenderSidebar(s)

	assert.NotContains(t, out, "call_4")
	assert.Contains(t, out, "call_5")
	assert.Contains(t, out, "call_12")
}

func TestRenderSidebar_NoToolSectionWhenEmpty(t *testing.T) {
	out := RenderSidebar(models.State{})

	assert.NotContains(t, out, "Tool Call Log")
}
