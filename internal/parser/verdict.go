package parser

import (
	"strings"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

var verdictPatterns = []struct {
	substring string
	verdict   models.Verdict
}{
	{"fully correct", models.VerdictFullyCorrect},
	{"partially correct", models.VerdictPartiallyCorrect},
	{"wrong", models.VerdictWrong},
	{"not answered", models.VerdictNotAnswered},
}

// MatchVerdict maps free-form grader output to a verdict. The first pattern
// found wins, so "not fully correct" reads as Fully Correct.
func MatchVerdict(s string) (models.Verdict, bool) {
	text := strings.ToLower(strings.TrimSpace(s))
	if text == "" {
		return "", false
	}
	for _, p := range verdictPatterns {
		if strings.Contains(text, p.substring) {
			return p.verdict, true
		}
	}
	return "", false
}
