package gemini

import (
	"context"
	"fmt"
	"net/http"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm"
	"google.golang.org/genai"
)

type Client struct {
	Client  *genai.Client
	ModelID string
}

// NewClient creates a Gemini API client. baseURL overrides the public
// endpoint and is empty in production.
func NewClient(ctx context.Context, apiKey string, model string, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("Gemini model ID is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{},
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("Unable to create Gemini client: %w", err)
	}

	return &Client{
		Client:  client,
		ModelID: model,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	temperature := float32(request.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature: &temperature,
	}
	if request.MaxTokens > 0 {
		config.MaxOutputTokens = int32(request.MaxTokens)
	}
	if request.JSONMode {
		config.ResponseMIMEType = "application/json"
	}

	output, err := c.Client.Models.GenerateContent(ctx, c.ModelID, genai.Text(request.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("Unable to invoke gemini model. Error: %w", err)
	}

	if len(output.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}

	return &llm.LLMResponse{
		Content:    output.Text(),
		StopReason: string(output.Candidates[0].FinishReason),
	}, nil
}
