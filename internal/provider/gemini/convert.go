package gemini

import (
	"github.com/hermes-agent/hermes/internal/agent/models"
	"google.golang.org/genai"
)

// toGeminiContents converts the transcript to Gemini Content format.
// Gemini has no system role in contents: system entries are collected and
// returned separately so the provider can pass them as the request's
// SystemInstruction. user maps to "user", assistant to "model".
func toGeminiContents(messages []models.Message) (contents []*genai.Content, systemInstruction string) {
	contents = make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		if msg.Role == models.RoleSystem {
			if systemInstruction != "" {
				systemInstruction += "\n\n"
			}
			systemInstruction += msg.Content
			continue
		}
		if msg.Content == "" {
			continue
		}

		role := genai.RoleUser
		if msg.Role == models.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(msg.Content)},
		})
	}

	return contents, systemInstruction
}

// responseText flattens a Gemini response into plain text, concatenating
// all text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
