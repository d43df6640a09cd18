package rag

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin_Success(t *testing.T) {
	var got loginRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"token": "abc123"}`))
	}))
	defer server.Close()

	token, ok := NewAuthenticator(server.URL, "me@example.com", "pw", newTestLogger()).Login(context.Background())
	if !ok || token != "abc123" {
		t.Errorf("Login() = %q, %v", token, ok)
	}
	if got.Email != "me@example.com" || got.Password != "pw" {
		t.Errorf("unexpected credentials sent: %+v", got)
	}
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		emptyURL bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"bad credentials"}`},
		{name: "no token", status: http.StatusOK, body: `{"user": "me"}`},
		{name: "invalid json", status: http.StatusOK, body: `not json`},
		{name: "no url", emptyURL: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			url := server.URL
			if tt.emptyURL {
				url = ""
			}

			if token, ok := NewAuthenticator(url, "e", "p", newTestLogger()).Login(context.Background()); ok {
				t.Errorf("expected failure, got token %q", token)
			}
		})
	}
}
