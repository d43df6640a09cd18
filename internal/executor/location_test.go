package executor

import (
	"testing"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
)

func TestComparisonLocation(t *testing.T) {
	tests := []struct {
		name string
		meta models.Metadata
		want string
	}{
		{name: "both absent", meta: models.Metadata{Page: "", Section: "Unknown"}, want: ""},
		{name: "page and section", meta: models.Metadata{Page: "12", Section: "Intro"}, want: "Page 12, Intro"},
		{name: "page only", meta: models.Metadata{Page: "3", Section: "N/A"}, want: "Page 3"},
		{name: "section only", meta: models.Metadata{Page: "na", Section: "Results"}, want: "Results"},
		{name: "joined list", meta: models.Metadata{Page: "4, 9", Section: " Outlook "}, want: "Page 4, 9, Outlook"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComparisonLocation(tt.meta); got != tt.want {
				t.Errorf("ComparisonLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSingleLocation(t *testing.T) {
	tests := []struct {
		name string
		meta models.Metadata
		want string
	}{
		{name: "page and section", meta: models.Metadata{Page: "5", Section: "Risks"}, want: "Page 5 / Risks"},
		{name: "na page", meta: models.Metadata{Page: "NA", Section: "Risks"}, want: "Risks"},
		{name: "empty", meta: models.Metadata{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SingleLocation(tt.meta); got != tt.want {
				t.Errorf("SingleLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}
