package generator

import (
	"context"

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

// Generator produces test questions from document text. The requested count
// is passed to the model as guidance and is not enforced.
type Generator struct {
	sessions SessionSource
	parser   *parser.Parser
	logger   *zerolog.Logger
}

func New(sessions SessionSource, p *parser.Parser, logger *zerolog.Logger) *Generator {
	return &Generator{
		sessions: sessions,
		parser:   p,
		logger:   logger,
	}
}

// Single generates questions about one document.
func (g *Generator) Single(ctx context.Context, doc models.DocumentRecord, n int) []models.QuestionItem {
	text, err := prompt.Generation(doc.Filename, doc.Text, n)
	if err != nil {
		g.logger.Error().Err(err).Str("filename", doc.Filename).Msg("Failed to build generation prompt")
		return []models.QuestionItem{}
	}

	items := g.generate(ctx, text)
	g.logger.Info().
		Str("filename", doc.Filename).
		Int("requested", n).
		Int("generated", len(items)).
		Msg("Generated test cases")
	return items
}

// Comparison generates questions that span several documents.
func (g *Generator) Comparison(ctx context.Context, docs []models.DocumentRecord, n int) []models.QuestionItem {
	text, err := prompt.Comparison(docs, n)
	if err != nil {
		g.logger.Error().Err(err).Msg("Failed to build comparison prompt")
		return []models.QuestionItem{}
	}

	items := g.generate(ctx, text)
	g.logger.Info().
		Strs("documents", models.Filenames(docs)).
		Int("requested", n).
		Int("generated", len(items)).
		Msg("Generated comparison test cases")
	return items
}

func (g *Generator) generate(ctx context.Context, text string) []models.QuestionItem {
	session := g.sessions.Session(ctx)

	raw, ok := session.Generate(ctx, text, true)
	if !ok {
		g.logger.Error().Str("provider", session.Label()).Msg("Question generation returned no output")
		return []models.QuestionItem{}
	}

	return g.parser.ParseQuestions(raw)
}
