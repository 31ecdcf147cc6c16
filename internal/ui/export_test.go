package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hermes-agent/hermes/internal/ui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTranscript(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	messages := []models.Message{
		{Role: "user", Content: "how many shipments?"},
		{Role: "assistant", Content: "You have 10 shipments."},
	}
	events := []string{"get_dataset_summary()"}
	now := time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)

	path, err := ExportTranscript(messages, events, now)

	require.NoError(t, err)
	assert.Equal(t, "chat_export_20241115_120000.md", path)

	data, err := os.ReadFile(filepath.Join(dir, path))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# Hermes Chat Export")
	assert.Contains(t, content, "**USER:** how many shipments?")
	assert.Contains(t, content, "**ASSISTANT:** You have 10 shipments.")
	assert.Contains(t, content, "## Tool Call Log")
	assert.Contains(t, content, "- get_dataset_summary()")
}

func TestExportTranscript_NoToolSectionWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path, err := ExportTranscript(nil, nil, time.Now())

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "## Tool Call Log")
}
