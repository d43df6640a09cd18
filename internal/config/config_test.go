package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.UserName != "METTA" {
		t.Errorf("Expected UserName=METTA, got %s", cfg.UserName)
	}
	if cfg.RAGDelay != 500*time.Millisecond {
		t.Errorf("Expected RAGDelay=500ms, got %s", cfg.RAGDelay)
	}
	if cfg.Workers != 1 {
		t.Errorf("Expected Workers=1, got %d", cfg.Workers)
	}
	if cfg.OutputFile != "rag_test_results.xlsx" {
		t.Errorf("Expected default output file, got %s", cfg.OutputFile)
	}
	if cfg.StorageBasePath != "s3://" {
		t.Errorf("Expected default S3 base path, got %s", cfg.StorageBasePath)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	lookuper := envconfig.MapLookuper(map[string]string{
		"MISTRAL_API_KEY": "m-key",
		"GROQ_API_KEY":    "g-key",
		"RAG_DELAY":       "2s",
		"WORKERS":         "0",
		"S3_BASE_PATH":    "s3://bucket/docs/",
	})

	cfg, err := LoadFrom(context.Background(), lookuper)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.RAGDelay != 2*time.Second {
		t.Errorf("Expected RAGDelay=2s, got %s", cfg.RAGDelay)
	}
	if cfg.Workers != 1 {
		t.Errorf("Expected Workers clamped to 1, got %d", cfg.Workers)
	}
	if cfg.APIKey(models.ProviderMistral) != "m-key" {
		t.Errorf("Expected mistral key, got %q", cfg.APIKey(models.ProviderMistral))
	}
	if cfg.APIKey(models.ProviderGemini) != "" {
		t.Errorf("Expected empty gemini key, got %q", cfg.APIKey(models.ProviderGemini))
	}
}

func TestLoadFrom_InvalidDuration(t *testing.T) {
	lookuper := envconfig.MapLookuper(map[string]string{"RAG_DELAY": "soon"})

	if _, err := LoadFrom(context.Background(), lookuper); err == nil {
		t.Fatal("Expected error for invalid duration")
	}
}

func TestLoadProvidersConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadProvidersConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadProvidersConfig() failed: %v", err)
	}

	want := []models.ProviderName{
		models.ProviderGemini,
		models.ProviderMistral,
		models.ProviderGroq,
		models.ProviderOpenRouter,
	}
	if len(cfg.Providers) != len(want) {
		t.Fatalf("Expected %d providers, got %d", len(want), len(cfg.Providers))
	}
	for i, name := range want {
		if cfg.Providers[i].Name != name {
			t.Errorf("Provider %d: expected %s, got %s", i, name, cfg.Providers[i].Name)
		}
	}
	if cfg.Providers[3].Headers["X-Title"] != "RAG Evaluator Script" {
		t.Errorf("Expected openrouter X-Title header, got %v", cfg.Providers[3].Headers)
	}
}

func TestLoadProvidersConfig_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	content := `providers:
  - name: groq
  - name: mistral
    model: mistral-small-latest
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadProvidersConfig(path)
	if err != nil {
		t.Fatalf("LoadProvidersConfig() failed: %v", err)
	}

	groq := cfg.Providers[0]
	if groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Expected default groq model, got %s", groq.Model)
	}
	if groq.Label != "llama-3.3-70b" {
		t.Errorf("Expected default groq label, got %s", groq.Label)
	}
	if groq.JSONMode != JSONNative {
		t.Errorf("Expected native json mode, got %s", groq.JSONMode)
	}

	mistral := cfg.Providers[1]
	if mistral.Model != "mistral-small-latest" {
		t.Errorf("Expected overridden model, got %s", mistral.Model)
	}
	if mistral.Endpoint != "https://api.mistral.ai/v1/" {
		t.Errorf("Expected default endpoint, got %s", mistral.Endpoint)
	}
}

func TestLoadProvidersConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	if err := os.WriteFile(path, []byte("providers: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadProvidersConfig(path); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestProvidersConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ProvidersConfig
		wantErr bool
		is      error
	}{
		{
			name:    "empty",
			cfg:     ProvidersConfig{},
			wantErr: true,
			is:      ErrNoProviders,
		},
		{
			name: "unknown provider",
			cfg: ProvidersConfig{Providers: []ProviderConfig{
				{Name: "anthropic", Model: "x", JSONMode: JSONNone},
			}},
			wantErr: true,
		},
		{
			name: "duplicate provider",
			cfg: ProvidersConfig{Providers: []ProviderConfig{
				{Name: models.ProviderGroq, Model: "a", JSONMode: JSONNative},
				{Name: models.ProviderGroq, Model: "b", JSONMode: JSONNative},
			}},
			wantErr: true,
		},
		{
			name: "invalid json mode",
			cfg: ProvidersConfig{Providers: []ProviderConfig{
				{Name: models.ProviderGroq, Model: "a", JSONMode: "xml"},
			}},
			wantErr: true,
		},
		{
			name:    "defaults are valid",
			cfg:     *DefaultProviders(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}
}
