// Package gemini implements the Provider interface on top of the official
// google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/hermes-agent/hermes/internal/agent/models"
	"google.golang.org/genai"
)

// Options configure generation. Zero temperature keeps answers grounded in
// the tool output rather than creative.
type Options struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// GeminiProvider implements provider.Provider for Google Gemini.
type GeminiProvider struct {
	client GeminiClient
	opts   Options
}

// New creates a GeminiProvider with the given client and options.
func New(client GeminiClient, opts Options) *GeminiProvider {
	return &GeminiProvider{client: client, opts: opts}
}

// Model returns the configured model name.
func (p *GeminiProvider) Model() string {
	return p.opts.Model
}

// Generate sends the message sequence to the Gemini API and returns the
// response text. System-role entries become the request's system
// instruction. Transport and API errors are returned as-is for the caller
// layer to surface; the agent core never inspects them.
func (p *GeminiProvider) Generate(ctx context.Context, messages []models.Message) (string, error) {
	contents, systemInstruction := toGeminiContents(messages)
	if len(contents) == 0 {
		return "", errors.New("gemini: empty message sequence")
	}

	temp := p.opts.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: p.opts.MaxOutputTokens,
	}
	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	resp, err := p.client.GenerateContent(ctx, p.opts.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", errors.New("gemini: response contained no text")
	}
	return text, nil
}
