package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/rs/zerolog"
)

// Parser turns raw LLM output into structured values. It never fails:
// malformed input is logged and yields an empty result.
type Parser struct {
	logger *zerolog.Logger
}

func New(logger *zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// StripCodeFence removes markdown code block formatting if present.
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	// Opening fence with a language tag runs to the first newline.
	firstNewline := strings.Index(content, "\n")
	if firstNewline == -1 {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		return strings.TrimSpace(content)
	}

	body := content[firstNewline+1:]
	if closing := strings.LastIndex(body, "```"); closing != -1 {
		body = body[:closing]
	}
	return strings.TrimSpace(body)
}

// ParseJSON decodes s after stripping code fences. On failure it returns an
// empty []any.
func (p *Parser) ParseJSON(s string) any {
	value, err := decode(s)
	if err != nil {
		p.logger.Error().Err(err).Str("content", preview(s)).Msg("Failed to decode JSON")
		return []any{}
	}
	return value
}

// ParseQuestions decodes a list of generated questions. It accepts a bare
// array or an object wrapping one, and drops items without a question.
func (p *Parser) ParseQuestions(s string) []models.QuestionItem {
	value, err := decode(s)
	if err != nil {
		p.logger.Error().Err(err).Str("content", preview(s)).Msg("Failed to decode questions")
		return []models.QuestionItem{}
	}

	raw, ok := questionList(value)
	if !ok {
		p.logger.Error().Str("content", preview(s)).Msg("Response does not contain a question list")
		return []models.QuestionItem{}
	}

	items := make([]models.QuestionItem, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		item := toQuestionItem(obj)
		if item.Question == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) < len(raw) {
		p.logger.Warn().
			Int("received", len(raw)).
			Int("kept", len(items)).
			Msg("Dropped malformed question items")
	}
	return items
}

func decode(s string) (any, error) {
	body := StripCodeFence(s)
	if body == "" {
		return nil, fmt.Errorf("empty response")
	}

	decoder := json.NewDecoder(bytes.NewReader([]byte(body)))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return value, nil
}

// questionList finds the array of question objects in a decoded response.
func questionList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case map[string]any:
		if list, ok := v["questions"].([]any); ok {
			return list, true
		}
		if _, ok := v["question"]; ok {
			return []any{v}, true
		}
		for _, key := range slices.Sorted(maps.Keys(v)) {
			if list, ok := v[key].([]any); ok && holdsQuestions(list) {
				return list, true
			}
		}
	}
	return nil, false
}

// holdsQuestions reports whether list contains at least one object with a
// question field.
func holdsQuestions(list []any) bool {
	for _, e := range list {
		if obj, ok := e.(map[string]any); ok {
			if _, ok := obj["question"]; ok {
				return true
			}
		}
	}
	return false
}

func toQuestionItem(obj map[string]any) models.QuestionItem {
	item := models.QuestionItem{
		Question:       strings.TrimSpace(scalar(obj["question"])),
		ExpectedAnswer: scalar(obj["expected_answer"]),
	}

	meta, _ := obj["metadata"].(map[string]any)
	if meta == nil {
		return item
	}

	item.Metadata = models.Metadata{
		Page:           scalar(meta["page"]),
		Section:        scalar(meta["section"]),
		Quote:          scalar(meta["quote"]),
		ComparisonType: scalar(meta["comparison_type"]),
		Documents:      list(meta["documents"]),
	}
	return item
}

// scalar renders a JSON value as text. Lists are joined with ", ".
func scalar(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case []any:
		return models.JoinList(list(v))
	default:
		out, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(out)
	}
}

func list(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s := scalar(e); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := scalar(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

func preview(s string) string {
	const limit = 200
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
