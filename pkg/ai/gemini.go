package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClient calls Google's Gemini API through the genai SDK.
// The SDK client is created on first use so an unconfigured server never touches it.
type GeminiClient struct {
	apiKey string
	model  string

	once    sync.Once
	client  *genai.Client
	initErr error
}

var _ Provider = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini provider
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{apiKey: strings.TrimSpace(apiKey), model: model}
}

func (g *GeminiClient) Name() string     { return "gemini" }
func (g *GeminiClient) Model() string    { return g.model }
func (g *GeminiClient) Configured() bool { return g.apiKey != "" }

func (g *GeminiClient) sdk(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.client, g.initErr
}

// Complete runs a single GenerateContent call
func (g *GeminiClient) Complete(ctx context.Context, in CompletionRequest) (string, error) {
	client, err := g.sdk(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](in.Temperature),
	}
	if in.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(in.System, genai.RoleUser)
	}
	if in.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(in.Prompt), cfg)
	if err != nil {
		// the SDK returns APIError by value
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &APIError{Provider: g.Name(), StatusCode: apiErr.Code, Message: apiErr.Message}
		}
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
