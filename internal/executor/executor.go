package executor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/rag"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

//go:generate mockgen -destination=mocks/mock_executor.go -package=mocks . DocumentReader,QuestionGenerator,AnswerEvaluator,RAGQuerier,Authenticator,Publisher

// DocumentReader extracts text from a file on disk
type DocumentReader interface {
	Read(path string) (string, bool)
}

// QuestionGenerator produces test questions from documents
type QuestionGenerator interface {
	Single(ctx context.Context, doc models.DocumentRecord, n int) []models.QuestionItem
	Comparison(ctx context.Context, docs []models.DocumentRecord, n int) []models.QuestionItem
}

// AnswerEvaluator grades a RAG answer
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question string, expected string, actual string) models.Verdict
}

// RAGQuerier sends a question to the system under test
type RAGQuerier interface {
	Query(ctx context.Context, question string, uris []string, token string) rag.Response
}

// Authenticator obtains the bearer token for RAG queries
type Authenticator interface {
	Login(ctx context.Context) (string, bool)
}

// Publisher streams finished records to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, runID string, record models.ResultRecord) error
}

// StorageVerifier checks that a derived storage URI exists.
type StorageVerifier interface {
	Verify(ctx context.Context, uri string) bool
}

// VerdictRecorder counts verdicts as they are produced.
type VerdictRecorder interface {
	Verdict(v models.Verdict)
}

var ErrTooFewDocuments = errors.New("comparison mode requires at least 2 readable documents")

type Options struct {
	// StorageBasePath is prefixed to a filename to form its storage URI.
	StorageBasePath string
	// Delay is the minimum spacing between RAG requests.
	Delay   time.Duration
	Workers int
}

// Executor drives a run: read documents, generate questions, query the RAG
// system, grade the answers and assemble result records.
type Executor struct {
	reader    DocumentReader
	generator QuestionGenerator
	evaluator AnswerEvaluator
	rag       RAGQuerier
	auth      Authenticator
	publisher Publisher
	verifier  StorageVerifier
	recorder  VerdictRecorder

	opts    Options
	limiter *rate.Limiter
	runID   string
	logger  *zerolog.Logger

	tokenOnce sync.Once
	token     string
	hasToken  bool
}

func NewExecutor(
	reader DocumentReader,
	generator QuestionGenerator,
	evaluator AnswerEvaluator,
	ragClient RAGQuerier,
	auth Authenticator,
	opts Options,
	logger *zerolog.Logger,
) *Executor {
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	limit := rate.Inf
	if opts.Delay > 0 {
		limit = rate.Every(opts.Delay)
	}

	return &Executor{
		reader:    reader,
		generator: generator,
		evaluator: evaluator,
		rag:       ragClient,
		auth:      auth,
		opts:      opts,
		limiter:   rate.NewLimiter(limit, 1),
		runID:     uuid.NewString(),
		logger:    logger,
	}
}

func (e *Executor) WithPublisher(p Publisher) *Executor {
	e.publisher = p
	return e
}

func (e *Executor) WithStorageVerifier(v StorageVerifier) *Executor {
	e.verifier = v
	return e
}

func (e *Executor) WithRecorder(r VerdictRecorder) *Executor {
	e.recorder = r
	return e
}

func (e *Executor) RunID() string {
	return e.runID
}

// RunDocuments processes each document on its own. Unreadable documents are
// skipped. On cancellation the records finished so far are returned along
// with the context error.
func (e *Executor) RunDocuments(ctx context.Context, paths []string, n int) ([]models.ResultRecord, error) {
	e.logger.Info().Str("runID", e.runID).Int("documents", len(paths)).Msg("starting direct run")

	records := []models.ResultRecord{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		doc, ok := e.load(ctx, path)
		if !ok {
			continue
		}

		items := e.generator.Single(ctx, doc, n)
		if len(items) == 0 {
			e.logger.Warn().Str("file", doc.Filename).Msg("No questions generated, skipping document")
			continue
		}
		uris := []string{doc.StorageURI}

		processed := e.process(ctx, items, uris, func(item models.QuestionItem, answer string, verdict models.Verdict) models.ResultRecord {
			return models.ResultRecord{
				Filename:       doc.Filename,
				StorageURI:     doc.StorageURI,
				Question:       item.Question,
				ExpectedAnswer: item.ExpectedAnswer,
				RAGResponse:    answer,
				Status:         verdict,
				Location:       SingleLocation(item.Metadata),
			}
		})
		records = append(records, processed...)
	}

	e.logger.Info().Str("runID", e.runID).Int("records", len(records)).Msg("direct run complete")
	return records, ctx.Err()
}

// RunComparison generates one shared question set across all readable
// documents and queries the RAG system with every document's URI.
func (e *Executor) RunComparison(ctx context.Context, paths []string, n int) ([]models.ResultRecord, error) {
	e.logger.Info().Str("runID", e.runID).Int("documents", len(paths)).Msg("starting comparison run")

	docs := make([]models.DocumentRecord, 0, len(paths))
	for _, path := range paths {
		if doc, ok := e.load(ctx, path); ok {
			docs = append(docs, doc)
		}
	}

	if len(docs) < 2 {
		e.logger.Error().Int("readable", len(docs)).Msg("Comparison mode requires at least 2 files")
		return []models.ResultRecord{}, ErrTooFewDocuments
	}

	items := e.generator.Comparison(ctx, docs, n)
	if len(items) == 0 {
		e.logger.Warn().Msg("No comparison questions generated")
		return []models.ResultRecord{}, ctx.Err()
	}
	filenames := models.Filenames(docs)
	uris := models.StorageURIs(docs)

	records := e.process(ctx, items, uris, func(item models.QuestionItem, answer string, verdict models.Verdict) models.ResultRecord {
		documents := item.Metadata.Documents
		if len(documents) == 0 {
			documents = filenames
		}
		return models.ResultRecord{
			Filename:       models.JoinList(documents),
			StorageURI:     models.JoinList(uris),
			Question:       item.Question,
			ExpectedAnswer: item.ExpectedAnswer,
			RAGResponse:    answer,
			Status:         verdict,
			Location:       ComparisonLocation(item.Metadata),
			ComparisonType: item.Metadata.ComparisonType,
		}
	})

	e.logger.Info().Str("runID", e.runID).Int("records", len(records)).Msg("comparison run complete")
	return records, ctx.Err()
}

func (e *Executor) load(ctx context.Context, path string) (models.DocumentRecord, bool) {
	filename := filepath.Base(path)

	text, ok := e.reader.Read(path)
	if !ok || text == "" {
		e.logger.Warn().Str("path", path).Msg("Skipping unreadable document")
		return models.DocumentRecord{}, false
	}

	doc := models.DocumentRecord{
		Filename:   filename,
		Path:       path,
		Text:       text,
		StorageURI: e.opts.StorageBasePath + filename,
	}

	if e.verifier != nil && !e.verifier.Verify(ctx, doc.StorageURI) {
		e.logger.Warn().Str("uri", doc.StorageURI).Msg("Document not found in storage")
	}
	return doc, true
}

type assembleFunc func(item models.QuestionItem, answer string, verdict models.Verdict) models.ResultRecord

// process queries and grades every item. Output order follows item order
// regardless of the worker count.
func (e *Executor) process(ctx context.Context, items []models.QuestionItem, uris []string, assemble assembleFunc) []models.ResultRecord {
	token, hasToken := e.authenticate(ctx)

	results := make([]*models.ResultRecord, len(items))

	g := new(errgroup.Group)
	g.SetLimit(e.opts.Workers)

	for i, item := range items {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			e.logger.Info().Int("question", i+1).Str("text", preview(item.Question)).Msg("processing question")

			answer := models.SkippedResponse
			verdict := models.VerdictNotAnswered

			if hasToken {
				if err := e.limiter.Wait(ctx); err != nil {
					return nil
				}
				answer = e.rag.Query(ctx, item.Question, uris, token).Answer()
				verdict = e.evaluator.Evaluate(ctx, item.Question, item.ExpectedAnswer, answer)
			}

			record := assemble(item, answer, verdict)
			results[i] = &record

			if e.recorder != nil {
				e.recorder.Verdict(verdict)
			}
			if e.publisher != nil {
				if err := e.publisher.Publish(ctx, e.runID, record); err != nil {
					e.logger.Error().Err(err).Str("runID", e.runID).Msg("Failed to publish result")
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	records := make([]models.ResultRecord, 0, len(items))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records
}

// authenticate logs in once per executor.
func (e *Executor) authenticate(ctx context.Context) (string, bool) {
	e.tokenOnce.Do(func() {
		if e.auth == nil {
			return
		}
		e.token, e.hasToken = e.auth.Login(ctx)
		if !e.hasToken {
			e.logger.Warn().Msg("No RAG token, queries will be skipped and marked not answered")
		}
	})
	return e.token, e.hasToken
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= 60 {
		return s
	}
	return fmt.Sprintf("%s...", string(runes[:60]))
}
