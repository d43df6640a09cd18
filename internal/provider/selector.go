package provider

import (
	"context"
	"sync"
	"time"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm"
	"github.com/rs/zerolog"
)

// ProbePrompt is the liveness check sent to each candidate backend.
const ProbePrompt = "Say OK"

// ProbeTimeout bounds the whole probing pass.
const ProbeTimeout = 60 * time.Second

//go:generate mockgen -destination=mocks/mock_builder.go -package=mocks . Builder

// Builder creates the client for a backend.
type Builder interface {
	Build(ctx context.Context, id Identity) llm.Generator
}

// ModelLabelSink is notified once with the label of the pinned backend.
type ModelLabelSink func(label string)

// Selector pins a single backend for the lifetime of a run. The first call
// to Session probes the candidates in priority order; every later call
// returns the same Session without probing again.
type Selector struct {
	identities []Identity
	builder    Builder
	onPin      []ModelLabelSink
	logger     *zerolog.Logger

	once    sync.Once
	session *Session
}

func NewSelector(identities []Identity, builder Builder, logger *zerolog.Logger) *Selector {
	return &Selector{
		identities: identities,
		builder:    builder,
		logger:     logger,
	}
}

// OnPin registers a sink. It must be called before the first Session call.
func (s *Selector) OnPin(sink ModelLabelSink) {
	s.onPin = append(s.onPin, sink)
}

func (s *Selector) Session(ctx context.Context) *Session {
	s.once.Do(func() {
		s.session = s.pin(ctx)
		if s.session == nil {
			return
		}
		for _, sink := range s.onPin {
			sink(s.session.Identity.Label)
		}
	})
	return s.session
}

// pin probes on a context detached from the caller. The pin outlives the
// request that triggered it, so a cancelled caller must not fail the probes.
func (s *Selector) pin(parent context.Context) *Session {
	if len(s.identities) == 0 {
		s.logger.Error().Msg("No LLM providers configured")
		return nil
	}

	ctx := context.WithoutCancel(parent)
	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	for _, id := range s.identities {
		if id.APIKey == "" {
			s.logger.Debug().Str("provider", string(id.Name)).Msg("Skipping provider without API key")
			continue
		}

		client := s.builder.Build(ctx, id)
		if _, ok := client.Generate(probeCtx, ProbePrompt, false); ok {
			s.logger.Info().
				Str("provider", string(id.Name)).
				Str("model", id.Model).
				Msg("Pinned LLM provider")
			return &Session{Identity: id, Client: client}
		}

		s.logger.Warn().Str("provider", string(id.Name)).Msg("Provider probe failed")
	}

	fallback := s.identities[0]
	s.logger.Warn().
		Str("provider", string(fallback.Name)).
		Msg("All provider probes failed, pinning highest priority provider")

	return &Session{Identity: fallback, Client: s.builder.Build(ctx, fallback)}
}
