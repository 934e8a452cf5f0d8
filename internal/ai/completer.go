package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Image is a binary attachment sent alongside a prompt.
type Image struct {
	Data     []byte
	MIMEType string
}

// Completer is a text/vision completion service.
type Completer interface {
	Complete(ctx context.Context, prompt string, image *Image) (string, error)
}

// GeminiCompleter calls the Gemini API. It holds only immutable configuration
// and is safe for concurrent use.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// NewGeminiCompleter creates a Gemini-backed completer.
func NewGeminiCompleter(ctx context.Context, apiKey, model string) (*GeminiCompleter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, model: model}, nil
}

// Complete sends the prompt (and optional image) as a single user turn.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string, image *Image) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if image != nil {
		parts = append(parts, genai.NewPartFromBytes(image.Data, image.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

// Unavailable is used when no API key is configured; every call fails.
type Unavailable struct{}

func (Unavailable) Complete(context.Context, string, *Image) (string, error) {
	return "", errors.New("completion service not configured")
}
