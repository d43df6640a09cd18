package judge

import (
	"context"
	"time"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/parser"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/prompt"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/provider"
	"github.com/rs/zerolog"
)

// SessionSource resolves the backend pinned for the run.
type SessionSource interface {
	Session(ctx context.Context) *provider.Session
}

// Evaluator grades a RAG answer against the expected answer using the same
// backend that generated the questions.
type Evaluator struct {
	sessions SessionSource
	logger   *zerolog.Logger
}

func NewEvaluator(sessions SessionSource, logger *zerolog.Logger) *Evaluator {
	return &Evaluator{
		sessions: sessions,
		logger:   logger,
	}
}

// Evaluate always returns one of the five verdicts. Skipped queries are
// graded "not answered" without calling the backend.
func (e *Evaluator) Evaluate(ctx context.Context, question string, expected string, actual string) models.Verdict {
	if actual == models.SkippedResponse {
		return models.VerdictNotAnswered
	}

	now := time.Now()

	text, err := prompt.Evaluation(question, expected, actual)
	if err != nil {
		e.logger.Error().Err(err).Msg("Failed to build evaluation prompt")
		return models.VerdictError
	}

	session := e.sessions.Session(ctx)
	output, ok := session.Generate(ctx, text, false)
	if !ok {
		e.logger.Error().Str("provider", session.Label()).Msg("Evaluation returned no output")
		return models.VerdictError
	}

	verdict, ok := parser.MatchVerdict(output)
	if !ok {
		e.logger.Warn().
			Str("provider", session.Label()).
			Str("content", output).
			Msg("Unrecognised evaluation output")
		return models.VerdictError
	}

	e.logger.Debug().
		Str("verdict", string(verdict)).
		Dur("duration", time.Since(now)).
		Msg("Evaluation completed")

	return verdict
}
