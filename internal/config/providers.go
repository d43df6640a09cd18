package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrNoProviders = errors.New("no providers configured")

// DefaultProviders is the built-in catalogue, highest quality first.
func DefaultProviders() *ProvidersConfig {
	return &ProvidersConfig{
		MaxRetries: 2,
		Providers: []ProviderConfig{
			{
				Name:     models.ProviderGemini,
				Model:    "gemini-2.0-flash-lite-001",
				Label:    "gemini-2.0-flash",
				JSONMode: JSONMime,
			},
			{
				Name:     models.ProviderMistral,
				Model:    "mistral-large-latest",
				Endpoint: "https://api.mistral.ai/v1/",
				Label:    "mistral-large",
				JSONMode: JSONNative,
			},
			{
				Name:     models.ProviderGroq,
				Model:    "llama-3.3-70b-versatile",
				Endpoint: "https://api.groq.com/openai/v1/",
				Label:    "llama-3.3-70b",
				JSONMode: JSONNative,
			},
			{
				Name:     models.ProviderOpenRouter,
				Model:    "google/gemini-2.0-flash-lite-001:free",
				Endpoint: "https://openrouter.ai/api/v1/",
				Label:    "gemini-free",
				JSONMode: JSONNative,
				Headers: map[string]string{
					"HTTP-Referer": "https://rag-evaluator.local",
					"X-Title":      "RAG Evaluator Script",
				},
			},
		},
	}
}

// LoadProvidersConfig reads the provider catalogue from path. A missing file
// yields the built-in defaults.
func LoadProvidersConfig(path string) (*ProvidersConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultProviders(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg ProvidersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills blank fields from the built-in entry of the same name.
func applyDefaults(cfg *ProvidersConfig) {
	defaults := map[models.ProviderName]ProviderConfig{}
	for _, p := range DefaultProviders().Providers {
		defaults[p.Name] = p
	}

	for i := range cfg.Providers {
		p := &cfg.Providers[i]
		d, ok := defaults[p.Name]
		if !ok {
			continue
		}
		if p.Model == "" {
			p.Model = d.Model
		}
		if p.Endpoint == "" {
			p.Endpoint = d.Endpoint
		}
		if p.Label == "" {
			p.Label = d.Label
		}
		if p.JSONMode == "" {
			p.JSONMode = d.JSONMode
		}
		if p.Headers == nil {
			p.Headers = d.Headers
		}
	}

	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
}

func (p *ProvidersConfig) Validate() error {
	if len(p.Providers) == 0 {
		return ErrNoProviders
	}

	seen := make(map[models.ProviderName]bool)
	for i, provider := range p.Providers {
		switch provider.Name {
		case models.ProviderGemini, models.ProviderMistral, models.ProviderGroq, models.ProviderOpenRouter:
		case "":
			return fmt.Errorf("provider %d: missing name", i)
		default:
			return fmt.Errorf("provider %d: unknown provider %q", i, provider.Name)
		}
		if seen[provider.Name] {
			return fmt.Errorf("duplicate provider name: %s", provider.Name)
		}
		seen[provider.Name] = true

		if provider.Model == "" {
			return fmt.Errorf("provider %s: missing model", provider.Name)
		}
		switch provider.JSONMode {
		case JSONNative, JSONMime, JSONNone:
		default:
			return fmt.Errorf("provider %s: invalid json_mode %q", provider.Name, provider.JSONMode)
		}
	}
	return nil
}
