package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

const (
	// SingleDocumentLimit caps the document text sent in a generation prompt.
	SingleDocumentLimit = 40000
	// ComparisonDocumentLimit caps each document in a comparison prompt.
	ComparisonDocumentLimit = 15000
)

var (
	generationTemplate = template.Must(template.New("generation").Parse(generationText))
	comparisonTemplate = template.Must(template.New("comparison").Parse(comparisonText))
	evaluationTemplate = template.Must(template.New("evaluation").Parse(evaluationText))
)

type generationData struct {
	Filename string
	Count    int
	Text     string
}

type comparisonDocument struct {
	Filename string
	Text     string
}

type comparisonData struct {
	DocumentCount int
	Count         int
	Documents     []comparisonDocument
}

type evaluationData struct {
	Question string
	Expected string
	Actual   string
}

// Generation builds the single-document question generation prompt.
func Generation(filename string, text string, n int) (string, error) {
	return render(generationTemplate, generationData{
		Filename: filename,
		Count:    n,
		Text:     Truncate(text, SingleDocumentLimit),
	})
}

// Comparison builds the cross-document question generation prompt.
func Comparison(docs []models.DocumentRecord, n int) (string, error) {
	data := comparisonData{
		DocumentCount: len(docs),
		Count:         n,
		Documents:     make([]comparisonDocument, 0, len(docs)),
	}
	for _, d := range docs {
		data.Documents = append(data.Documents, comparisonDocument{
			Filename: d.Filename,
			Text:     Truncate(d.Text, ComparisonDocumentLimit),
		})
	}
	return render(comparisonTemplate, data)
}

// Evaluation builds the grading prompt for one RAG answer.
func Evaluation(question string, expected string, actual string) (string, error) {
	return render(evaluationTemplate, evaluationData{
		Question: question,
		Expected: expected,
		Actual:   actual,
	})
}

// Truncate keeps the first limit characters of s.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template %s execution failed: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
