package gpt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm"
)

const completionBody = `{
  "id": "cmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "mistral-large-latest",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "OK"}}
  ]
}`

func TestNewClient_RequiresKey(t *testing.T) {
	if _, err := NewClient("", "mistral-large-latest", Options{}); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewClient("key", "", Options{}); err == nil {
		t.Error("expected error for missing model")
	}
}

func TestInvokeModel_Success(t *testing.T) {
	var captured map[string]any
	var headers http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
	defer server.Close()

	client, err := NewClient("secret", "mistral-large-latest", Options{
		BaseURL: server.URL,
		Headers: map[string]string{"X-Title": "RAG Evaluator Script"},
	})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}

	resp, err := client.InvokeModel(context.Background(), llm.LLMRequest{
		Prompt:      "Say OK",
		Temperature: llm.DefaultTemperature,
		JSONMode:    true,
	})
	if err != nil {
		t.Fatalf("InvokeModel() failed: %v", err)
	}

	if resp.Content != "OK" {
		t.Errorf("expected content OK, got %q", resp.Content)
	}
	if resp.StopReason != "stop" {
		t.Errorf("expected stop reason stop, got %q", resp.StopReason)
	}
	if got := headers.Get("Authorization"); got != "Bearer secret" {
		t.Errorf("expected bearer auth, got %q", got)
	}
	if got := headers.Get("X-Title"); got != "RAG Evaluator Script" {
		t.Errorf("expected X-Title header, got %q", got)
	}
	format, _ := captured["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("expected json_object response format, got %v", captured["response_format"])
	}
	if captured["temperature"] != 0.2 {
		t.Errorf("expected temperature 0.2, got %v", captured["temperature"])
	}
}

func TestInvokeModel_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer server.Close()

	client, err := NewClient("bad", "llama-3.3-70b-versatile", Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}

	if _, err := client.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "Say OK"}); err == nil {
		t.Error("expected error on 401")
	}
}

func TestInvokeModel_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := NewClient("key", "google/gemini-2.0-flash-lite-001:free", Options{BaseURL: url})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}

	if _, err := client.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "Say OK"}); err == nil {
		t.Error("expected error when the endpoint is unreachable")
	}
}

func TestInvokeModel_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer server.Close()

	client, err := NewClient("key", "m", Options{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}

	if _, err := client.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "Say OK"}); err == nil {
		t.Error("expected error for empty choices")
	}
}
