package api

import "github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"

const DefaultQuestionCount = 10

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type GenerateRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Count    int    `json:"count"`
}

type ComparisonDocument struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

type ComparisonRequest struct {
	Documents []ComparisonDocument `json:"documents"`
	Count     int                  `json:"count"`
}

type QuestionsResponse struct {
	Questions []models.QuestionItem `json:"questions"`
}

type EvaluateRequest struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	ActualAnswer   string `json:"actual_answer"`
}

type EvaluateResponse struct {
	Verdict models.Verdict `json:"verdict"`
}
