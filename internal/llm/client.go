package llm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// LLMClient is an interface for invoking LLM models
// This allows mocking in tests without making real API calls
//
//go:generate mockgen -destination=mocks/mock_client.go -package=mocks . LLMClient,Generator
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}

// Generator is the failure-free view of a backend used by callers that
// only care whether text came back.
type Generator interface {
	Generate(ctx context.Context, prompt string, jsonMode bool) (string, bool)
}

// Recorder receives the outcome of every backend call.
type Recorder interface {
	ProviderRequest(provider string, ok bool)
}

// Client wraps a backend and never lets a failure escape: callers get
// ok=false instead of an error.
type Client struct {
	name     string
	backend  LLMClient
	recorder Recorder
	logger   *zerolog.Logger
}

func NewClient(name string, backend LLMClient, logger *zerolog.Logger) *Client {
	return &Client{
		name:    name,
		backend: backend,
		logger:  logger,
	}
}

// WithRecorder attaches a metrics recorder and returns the client.
func (c *Client) WithRecorder(r Recorder) *Client {
	c.recorder = r
	return c
}

func (c *Client) Name() string {
	return c.name
}

// Generate sends prompt to the backend and returns the generated text.
// ok is false on any failure, including a backend that was never configured.
func (c *Client) Generate(ctx context.Context, prompt string, jsonMode bool) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("provider", c.name).
				Interface("panic", r).
				Msg("LLM call panicked")
			text, ok = "", false
		}
		if c.recorder != nil {
			c.recorder.ProviderRequest(c.name, ok)
		}
	}()

	if c.backend == nil {
		c.logger.Error().Str("provider", c.name).Msg("No API key configured")
		return "", false
	}

	resp, err := c.backend.InvokeModel(ctx, LLMRequest{
		Prompt:      prompt,
		Temperature: DefaultTemperature,
		JSONMode:    jsonMode,
	})
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("provider", c.name).
			Msg("LLM call failed")
		return "", false
	}

	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		c.logger.Error().
			Str("provider", c.name).
			Msg("LLM returned an empty response")
		return "", false
	}

	return resp.Content, true
}
