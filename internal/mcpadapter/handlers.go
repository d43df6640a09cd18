package mcpadapter

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

const defaultCount = 10

type QuestionGenerator interface {
	Single(ctx context.Context, doc models.DocumentRecord, n int) []models.QuestionItem
	Comparison(ctx context.Context, docs []models.DocumentRecord, n int) []models.QuestionItem
}

type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question string, expected string, actual string) models.Verdict
}

// GenerateInput is the MCP tool input schema for single-document generation.
type GenerateInput struct {
	Filename string `json:"filename" jsonschema:"document name used in the prompt"`
	Text     string `json:"text" jsonschema:"full document text"`
	Count    int    `json:"count,omitempty" jsonschema:"requested number of questions (default 10)"`
}

type ComparisonDocument struct {
	Filename string `json:"filename" jsonschema:"document name"`
	Text     string `json:"text" jsonschema:"full document text"`
}

// GenerateComparisonInput is the MCP tool input schema for cross-document generation.
type GenerateComparisonInput struct {
	Documents []ComparisonDocument `json:"documents" jsonschema:"two or more documents to compare"`
	Count     int                  `json:"count,omitempty" jsonschema:"requested number of questions (default 10)"`
}

type QuestionsOutput struct {
	Questions []models.QuestionItem `json:"questions"`
}

// EvaluateInput is the MCP tool input schema for answer grading.
type EvaluateInput struct {
	Question       string `json:"question" jsonschema:"test question"`
	ExpectedAnswer string `json:"expected_answer" jsonschema:"gold standard answer"`
	ActualAnswer   string `json:"actual_answer" jsonschema:"answer produced by the RAG system"`
}

type EvaluateOutput struct {
	Verdict models.Verdict `json:"verdict" jsonschema:"Fully Correct, Partially correct, Wrongly answered, not answered or Error"`
}

// NewGenerateHandler returns a tool handler that generates questions for one document.
// Pass the returned function to mcp.AddTool.
func NewGenerateHandler(gen QuestionGenerator) func(context.Context, *mcp.CallToolRequest, GenerateInput) (*mcp.CallToolResult, QuestionsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, QuestionsOutput, error) {
		if strings.TrimSpace(input.Text) == "" {
			return nil, QuestionsOutput{}, errors.New("text is required")
		}

		doc := models.DocumentRecord{Filename: input.Filename, Text: input.Text}
		questions := gen.Single(ctx, doc, count(input.Count))
		return nil, QuestionsOutput{Questions: nonNil(questions)}, nil
	}
}

// NewGenerateComparisonHandler returns a tool handler for comparison questions.
func NewGenerateComparisonHandler(gen QuestionGenerator) func(context.Context, *mcp.CallToolRequest, GenerateComparisonInput) (*mcp.CallToolResult, QuestionsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateComparisonInput) (*mcp.CallToolResult, QuestionsOutput, error) {
		docs := make([]models.DocumentRecord, 0, len(input.Documents))
		for _, d := range input.Documents {
			if strings.TrimSpace(d.Text) == "" {
				continue
			}
			docs = append(docs, models.DocumentRecord{Filename: d.Filename, Text: d.Text})
		}
		if len(docs) < 2 {
			return nil, QuestionsOutput{}, errors.New("at least two documents with text are required")
		}

		questions := gen.Comparison(ctx, docs, count(input.Count))
		return nil, QuestionsOutput{Questions: nonNil(questions)}, nil
	}
}

// NewEvaluateHandler returns a tool handler that grades one answer.
func NewEvaluateHandler(eval AnswerEvaluator) func(context.Context, *mcp.CallToolRequest, EvaluateInput) (*mcp.CallToolResult, EvaluateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, EvaluateOutput, error) {
		if strings.TrimSpace(input.Question) == "" || strings.TrimSpace(input.ExpectedAnswer) == "" {
			return nil, EvaluateOutput{}, errors.New("question and expected_answer are required")
		}

		verdict := eval.Evaluate(ctx, input.Question, input.ExpectedAnswer, input.ActualAnswer)
		return nil, EvaluateOutput{Verdict: verdict}, nil
	}
}

func count(n int) int {
	if n <= 0 {
		return defaultCount
	}
	return n
}

func nonNil(items []models.QuestionItem) []models.QuestionItem {
	if items == nil {
		return []models.QuestionItem{}
	}
	return items
}
