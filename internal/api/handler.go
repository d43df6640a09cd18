package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks . QuestionGenerator,AnswerEvaluator

type QuestionGenerator interface {
	Single(ctx context.Context, doc models.DocumentRecord, n int) []models.QuestionItem
	Comparison(ctx context.Context, docs []models.DocumentRecord, n int) []models.QuestionItem
}

type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question string, expected string, actual string) models.Verdict
}

type Handler struct {
	generator QuestionGenerator
	evaluator AnswerEvaluator
	logger    *zerolog.Logger
}

func NewHandler(generator QuestionGenerator, evaluator AnswerEvaluator, logger *zerolog.Logger) *Handler {
	return &Handler{
		generator: generator,
		evaluator: evaluator,
		logger:    logger,
	}
}

// POST /api/v1/generate
// Body: GenerateRequest
// Returns: QuestionsResponse
func (h *Handler) Generate(req *restful.Request, resp *restful.Response) {
	var genRequest GenerateRequest
	if err := req.ReadEntity(&genRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(genRequest.Text) == "" {
		middleware.HandleError(resp, errors.New("text is required"), http.StatusBadRequest)
		return
	}

	doc := models.DocumentRecord{Filename: genRequest.Filename, Text: genRequest.Text}
	count := questionCount(genRequest.Count)

	h.logger.Info().
		Str("filename", doc.Filename).
		Int("count", count).
		Msg("Start generation")

	questions := h.generator.Single(req.Request.Context(), doc, count)

	h.logger.Info().
		Str("filename", doc.Filename).
		Int("generated", len(questions)).
		Msg("Generation complete")

	_ = resp.WriteHeaderAndEntity(http.StatusOK, QuestionsResponse{Questions: nonNil(questions)})
}

// POST /api/v1/generate/comparison
func (h *Handler) GenerateComparison(req *restful.Request, resp *restful.Response) {
	var cmpRequest ComparisonRequest
	if err := req.ReadEntity(&cmpRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	docs := make([]models.DocumentRecord, 0, len(cmpRequest.Documents))
	for _, d := range cmpRequest.Documents {
		if strings.TrimSpace(d.Text) == "" {
			continue
		}
		docs = append(docs, models.DocumentRecord{Filename: d.Filename, Text: d.Text})
	}
	if len(docs) < 2 {
		middleware.HandleError(resp, errors.New("at least two documents with text are required"), http.StatusBadRequest)
		return
	}

	count := questionCount(cmpRequest.Count)
	h.logger.Info().
		Strs("filenames", models.Filenames(docs)).
		Int("count", count).
		Msg("Start comparison generation")

	questions := h.generator.Comparison(req.Request.Context(), docs, count)

	_ = resp.WriteHeaderAndEntity(http.StatusOK, QuestionsResponse{Questions: nonNil(questions)})
}

// POST /api/v1/evaluate
func (h *Handler) Evaluate(req *restful.Request, resp *restful.Response) {
	var evalRequest EvaluateRequest
	if err := req.ReadEntity(&evalRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(evalRequest.Question) == "" || strings.TrimSpace(evalRequest.ExpectedAnswer) == "" {
		middleware.HandleError(resp, errors.New("question and expected_answer are required"), http.StatusBadRequest)
		return
	}

	verdict := h.evaluator.Evaluate(req.Request.Context(), evalRequest.Question, evalRequest.ExpectedAnswer, evalRequest.ActualAnswer)

	h.logger.Info().
		Str("verdict", string(verdict)).
		Msg("Evaluation complete")

	_ = resp.WriteHeaderAndEntity(http.StatusOK, EvaluateResponse{Verdict: verdict})
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	_ = resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func questionCount(n int) int {
	if n <= 0 {
		return DefaultQuestionCount
	}
	return n
}

func nonNil(items []models.QuestionItem) []models.QuestionItem {
	if items == nil {
		return []models.QuestionItem{}
	}
	return items
}
