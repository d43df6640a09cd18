package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Authenticator exchanges the configured credentials for a bearer token.
type Authenticator struct {
	url        string
	email      string
	password   string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func NewAuthenticator(url string, email string, password string, logger *zerolog.Logger) *Authenticator {
	return &Authenticator{
		url:        url,
		email:      email,
		password:   password,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// Login returns ok=false when no token could be obtained.
func (a *Authenticator) Login(ctx context.Context) (string, bool) {
	if a.url == "" {
		a.logger.Warn().Msg("AUTH_URL not configured, RAG queries will be skipped")
		return "", false
	}

	payload, err := json.Marshal(loginRequest{Email: a.email, Password: a.password})
	if err != nil {
		a.logger.Error().Err(err).Msg("Unable to encode login request")
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(payload))
	if err != nil {
		a.logger.Error().Err(err).Msg("Unable to build login request")
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := do(a.httpClient, req)
	if err != nil {
		a.logger.Error().Err(err).Str("email", a.email).Msg("Authentication failed")
		return "", false
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		a.logger.Error().Err(err).Msg("Unable to decode login response")
		return "", false
	}
	if resp.Token == "" {
		a.logger.Error().Str("response", truncate(string(body), 200)).Msg("Login succeeded but no token was returned")
		return "", false
	}

	a.logger.Info().Msg("Authenticated with RAG system")
	return resp.Token, true
}
