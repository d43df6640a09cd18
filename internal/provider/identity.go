package provider

import (
	"context"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/config"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

// Identity describes one configured LLM backend. It is immutable after load.
type Identity struct {
	Name     models.ProviderName
	Model    string
	Endpoint string
	APIKey   string
	JSONMode config.JSONStrategy
	Label    string
	Headers  map[string]string
}

// Identities joins the provider catalogue with the API keys from cfg,
// preserving catalogue order.
func Identities(cfg *config.Config, catalogue *config.ProvidersConfig) []Identity {
	identities := make([]Identity, 0, len(catalogue.Providers))
	for _, p := range catalogue.Providers {
		identities = append(identities, Identity{
			Name:     p.Name,
			Model:    p.Model,
			Endpoint: p.Endpoint,
			APIKey:   cfg.APIKey(p.Name),
			JSONMode: p.JSONMode,
			Label:    p.Label,
			Headers:  p.Headers,
		})
	}
	return identities
}

// Session is the backend pinned for a run.
type Session struct {
	Identity Identity
	Client   llm.Generator
}

// Generate forwards to the pinned client. A session without a client
// behaves like a backend that always fails.
func (s *Session) Generate(ctx context.Context, prompt string, jsonMode bool) (string, bool) {
	if s == nil || s.Client == nil {
		return "", false
	}
	return s.Client.Generate(ctx, prompt, jsonMode)
}

func (s *Session) Label() string {
	if s == nil {
		return ""
	}
	return s.Identity.Label
}
