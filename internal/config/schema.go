package config

import (
	"time"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

// Config is the process configuration read from the environment.
type Config struct {
	UserName string `env:"USER_NAME, default=METTA"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	GoogleAPIKey     string `env:"GOOGLE_API_KEY"`
	MistralAPIKey    string `env:"MISTRAL_API_KEY"`
	GroqAPIKey       string `env:"GROQ_API_KEY"`
	OpenRouterAPIKey string `env:"OPENROUTER_API_KEY"`

	ProvidersConfigPath string `env:"PROVIDERS_CONFIG_PATH, default=configs/providers.yaml"`

	AuthURL      string `env:"AUTH_URL"`
	AuthEmail    string `env:"AUTH_EMAIL"`
	AuthPassword string `env:"AUTH_PASSWORD"`

	RAGQueryURL string `env:"RAG_QUERY_URL"`
	RAGTeamID   string `env:"RAG_TEAM_ID"`

	StorageBasePath string `env:"S3_BASE_PATH, default=s3://"`
	AWSRegion       string `env:"AWS_REGION, default=us-east-1"`

	DefaultInputDir string `env:"DEFAULT_INPUT_DIR, default=./data"`
	OutputFile      string `env:"OUTPUT_FILE, default=rag_test_results.xlsx"`

	GoogleSheetID         string `env:"GOOGLE_SHEET_ID"`
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`

	RAGDelay time.Duration `env:"RAG_DELAY, default=500ms"`
	Workers  int           `env:"WORKERS, default=1"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	ResultsStream string `env:"RESULTS_STREAM, default=rag-eval-results"`

	APIPort string `env:"RAG_EVAL_API_PORT, default=18082"`
}

// APIKey returns the configured key for a backend, empty when absent.
func (c *Config) APIKey(name models.ProviderName) string {
	switch name {
	case models.ProviderGemini:
		return c.GoogleAPIKey
	case models.ProviderMistral:
		return c.MistralAPIKey
	case models.ProviderGroq:
		return c.GroqAPIKey
	case models.ProviderOpenRouter:
		return c.OpenRouterAPIKey
	}
	return ""
}

// JSONStrategy is how a backend is asked for structured output.
type JSONStrategy string

const (
	// JSONNative sends response_format {"type":"json_object"}.
	JSONNative JSONStrategy = "native"
	// JSONMime sets the response MIME type to application/json.
	JSONMime JSONStrategy = "mime"
	// JSONNone relies on the prompt alone.
	JSONNone JSONStrategy = "none"
)

// ProvidersConfig is the YAML catalogue of LLM backends. Order is priority.
type ProvidersConfig struct {
	Providers  []ProviderConfig `yaml:"providers"`
	MaxRetries int              `yaml:"max_retries"`
}

type ProviderConfig struct {
	Name     models.ProviderName `yaml:"name"`
	Model    string              `yaml:"model"`
	Endpoint string              `yaml:"endpoint"`
	Label    string              `yaml:"label"`
	JSONMode JSONStrategy        `yaml:"json_mode"`
	Headers  map[string]string   `yaml:"headers"`
}
