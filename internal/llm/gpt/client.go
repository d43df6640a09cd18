package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client talks to any backend that speaks the OpenAI chat-completions
// protocol (Mistral, Groq, OpenRouter).
type Client struct {
	Client  openai.Client
	ModelID string
}

type Options struct {
	BaseURL    string
	MaxRetries int
	Headers    map[string]string
}

func NewClient(apiKey string, model string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model ID is required")
	}

	requestOptions := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(opts.MaxRetries),
	}
	if opts.BaseURL != "" {
		requestOptions = append(requestOptions, option.WithBaseURL(opts.BaseURL))
	}
	for key, value := range opts.Headers {
		requestOptions = append(requestOptions, option.WithHeader(key, value))
	}

	return &Client{
		Client:  openai.NewClient(requestOptions...),
		ModelID: model,
	}, nil
}
