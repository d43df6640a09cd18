package provider

import (
	"context"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/config"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm/gemini"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/rs/zerolog"
)

// Factory builds a Generator for an Identity.
type Factory struct {
	maxRetries int
	recorder   llm.Recorder
	logger     *zerolog.Logger
}

func NewFactory(maxRetries int, recorder llm.Recorder, logger *zerolog.Logger) *Factory {
	return &Factory{
		maxRetries: maxRetries,
		recorder:   recorder,
		logger:     logger,
	}
}

// Build never fails. A backend that cannot be constructed yields a client
// whose every call reports failure.
func (f *Factory) Build(ctx context.Context, id Identity) llm.Generator {
	backend := f.backend(ctx, id)

	client := llm.NewClient(string(id.Name), backend, f.logger)
	if f.recorder != nil {
		client.WithRecorder(f.recorder)
	}
	return client
}

func (f *Factory) backend(ctx context.Context, id Identity) llm.LLMClient {
	if id.APIKey == "" {
		return nil
	}

	var (
		backend llm.LLMClient
		err     error
	)

	switch id.Name {
	case models.ProviderGemini:
		var c *gemini.Client
		c, err = gemini.NewClient(ctx, id.APIKey, id.Model, id.Endpoint)
		backend = c
	default:
		var c *gpt.Client
		c, err = gpt.NewClient(id.APIKey, id.Model, gpt.Options{
			BaseURL:    id.Endpoint,
			MaxRetries: f.maxRetries,
			Headers:    id.Headers,
		})
		backend = c
	}

	if err != nil {
		f.logger.Error().Err(err).Str("provider", string(id.Name)).Msg("Unable to create LLM client")
		return nil
	}

	if id.JSONMode == config.JSONNone {
		return promptOnly{backend}
	}
	return backend
}

// promptOnly drops the structured-output flag for backends that reject it.
type promptOnly struct {
	llm.LLMClient
}

func (p promptOnly) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	request.JSONMode = false
	return p.LLMClient.InvokeModel(ctx, request)
}
