package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com"
	DefaultGroqModel   = "llama-3.3-70b-versatile"

	groqChatPath     = "/openai/v1/chat/completions"
	maxErrorBodySize = 4 << 10
)

// GroqClient is a minimal client for Groq's OpenAI-compatible chat completions API
type GroqClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ Provider = (*GroqClient)(nil)

// NewGroqClient creates a Groq client. An empty apiKey yields a client that reports itself unconfigured.
// Timeouts are owned by Client, so the http.Client carries none.
func NewGroqClient(apiKey, baseURL, model string) *GroqClient {
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	if model == "" {
		model = DefaultGroqModel
	}
	return &GroqClient{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{},
	}
}

// ChatMessage is one message in a chat completion request
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float32         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type chatErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GroqClient) Name() string     { return "groq" }
func (g *GroqClient) Model() string    { return g.model }
func (g *GroqClient) Configured() bool { return g.apiKey != "" }

// Complete sends a single system+user exchange and returns the assistant content
func (g *GroqClient) Complete(ctx context.Context, in CompletionRequest) (string, error) {
	reqBody := ChatRequest{
		Model:       g.model,
		Temperature: in.Temperature,
		MaxTokens:   in.MaxTokens,
	}
	if in.System != "" {
		reqBody.Messages = append(reqBody.Messages, ChatMessage{Role: "system", Content: in.System})
	}
	reqBody.Messages = append(reqBody.Messages, ChatMessage{Role: "user", Content: in.Prompt})
	if in.JSON {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode groq request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+groqChatPath, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Provider: g.Name(), StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		var body chatErrorBody
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Message = body.Error.Message
		}
		return "", apiErr
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("empty response from groq")
	}
	return cr.Choices[0].Message.Content, nil
}
