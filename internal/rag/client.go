package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 120 * time.Second

// Recorder receives the outcome and latency of every RAG query.
type Recorder interface {
	RAGQuery(ok bool, duration time.Duration)
}

type queryRequest struct {
	UserQuery    string   `json:"userQuery"`
	DocumentURIs []string `json:"documentUris"`
}

// Response is the decoded body of a RAG query, or the transport error that
// replaced it.
type Response struct {
	Body  any
	Error string
}

// Answer returns the text graded against the expected answer: the summary
// field when present, the whole body otherwise.
func (r Response) Answer() string {
	if r.Error != "" {
		return stringify(map[string]string{"error": r.Error})
	}
	if obj, ok := r.Body.(map[string]any); ok {
		if summary, ok := obj["summary"]; ok {
			if s, ok := summary.(string); ok {
				return s
			}
			return stringify(summary)
		}
	}
	if s, ok := r.Body.(string); ok {
		return s
	}
	return stringify(r.Body)
}

func (r Response) Failed() bool {
	return r.Error != ""
}

type Client struct {
	url        string
	teamID     string
	httpClient *http.Client
	recorder   Recorder
	logger     *zerolog.Logger
}

func NewClient(url string, teamID string, recorder Recorder, logger *zerolog.Logger) *Client {
	return &Client{
		url:        url,
		teamID:     teamID,
		httpClient: &http.Client{Timeout: defaultTimeout},
		recorder:   recorder,
		logger:     logger,
	}
}

// Query asks the RAG system question, restricted to uris. Failures are
// folded into the Response.
func (c *Client) Query(ctx context.Context, question string, uris []string, token string) Response {
	start := time.Now()
	resp := c.query(ctx, question, uris, token)

	if c.recorder != nil {
		c.recorder.RAGQuery(!resp.Failed(), time.Since(start))
	}
	if resp.Failed() {
		c.logger.Error().
			Str("error", resp.Error).
			Strs("documentUris", uris).
			Msg("RAG query failed")
	}
	return resp
}

func (c *Client) query(ctx context.Context, question string, uris []string, token string) Response {
	if uris == nil {
		uris = []string{}
	}
	payload, err := json.Marshal(queryRequest{UserQuery: question, DocumentURIs: uris})
	if err != nil {
		return Response{Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Response{Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Doc-Ai-Team-Id", c.teamID)

	body, err := do(c.httpClient, req)
	if err != nil {
		return Response{Error: err.Error()}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Response{Error: fmt.Sprintf("invalid JSON response: %v", err)}
	}
	return Response{Body: decoded}
}

// do sends req and returns the body of a 2xx response.
func do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%d %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), truncate(string(body), 500))
	}
	return body, nil
}

func stringify(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(out)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
