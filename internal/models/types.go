package models

import (
	"strings"
)

type Verdict string

const (
	VerdictFullyCorrect     Verdict = "Fully Correct"
	VerdictPartiallyCorrect Verdict = "Partially correct"
	VerdictWrong            Verdict = "Wrongly answered"
	VerdictNotAnswered      Verdict = "not answered"
	VerdictError            Verdict = "Error"
)

// Verdicts lists the values an evaluation may produce, in matching priority order.
var Verdicts = []Verdict{
	VerdictFullyCorrect,
	VerdictPartiallyCorrect,
	VerdictWrong,
	VerdictNotAnswered,
	VerdictError,
}

// GradedVerdicts are the four verdicts a judge is allowed to emit.
var GradedVerdicts = Verdicts[:4]

// SkippedResponse is recorded instead of a RAG answer when no token was obtained.
const SkippedResponse = "Skipped (No Token)"

type ProviderName string

const (
	ProviderGemini     ProviderName = "gemini"
	ProviderMistral    ProviderName = "mistral"
	ProviderGroq       ProviderName = "groq"
	ProviderOpenRouter ProviderName = "openrouter"
)

type Mode string

const (
	ModeDirect     Mode = "direct"
	ModeComparison Mode = "comparison"
)

type Metadata struct {
	Page           string   `json:"page"`
	Section        string   `json:"section"`
	Quote          string   `json:"quote"`
	Documents      []string `json:"documents,omitempty"`
	ComparisonType string   `json:"comparison_type,omitempty"`
}

// QuestionItem is one generated test question with its gold answer.
type QuestionItem struct {
	Question       string   `json:"question" jsonschema:"generated test question"`
	ExpectedAnswer string   `json:"expected_answer" jsonschema:"gold standard answer"`
	Metadata       Metadata `json:"metadata"`
}

type DocumentRecord struct {
	Filename   string `json:"filename"`
	Path       string `json:"path,omitempty"`
	Text       string `json:"text"`
	StorageURI string `json:"storage_uri"`
}

// ResultRecord is one flattened row handed to the output sinks.
type ResultRecord struct {
	Filename       string  `json:"filename"`
	StorageURI     string  `json:"s3_uri"`
	Question       string  `json:"question"`
	ExpectedAnswer string  `json:"expected_answer"`
	RAGResponse    string  `json:"rag_response"`
	Status         Verdict `json:"status"`
	Location       string  `json:"page_section"`
	ComparisonType string  `json:"comparison_type,omitempty"`
}

// Columns is the header used by the tabular sinks.
var Columns = []string{
	"Filename",
	"S3_URI",
	"Question",
	"Expected Answer",
	"RAG Response",
	"Status",
	"Page/Section",
	"Comparison Type",
}

// Row returns the record's cells in Columns order.
func (r ResultRecord) Row() []string {
	return []string{
		r.Filename,
		r.StorageURI,
		r.Question,
		r.ExpectedAnswer,
		r.RAGResponse,
		string(r.Status),
		r.Location,
		r.ComparisonType,
	}
}

func (v Verdict) Valid() bool {
	for _, known := range Verdicts {
		if v == known {
			return true
		}
	}
	return false
}

// Filenames returns the filenames of docs in order.
func Filenames(docs []DocumentRecord) []string {
	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Filename)
	}
	return names
}

// StorageURIs returns the storage URIs of docs in order.
func StorageURIs(docs []DocumentRecord) []string {
	uris := make([]string, 0, len(docs))
	for _, d := range docs {
		uris = append(uris, d.StorageURI)
	}
	return uris
}

// JoinList joins values with ", " the way multi-document rows are reported.
func JoinList(values []string) string {
	return strings.Join(values, ", ")
}
