package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func records(verdicts ...models.Verdict) []models.ResultRecord {
	out := make([]models.ResultRecord, 0, len(verdicts))
	for _, v := range verdicts {
		out = append(out, models.ResultRecord{Status: v})
	}
	return out
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name         string
		records      []models.ResultRecord
		wantTotal    int
		wantCorrect  int
		wantAccuracy float64
	}{
		{
			name:         "empty run",
			records:      nil,
			wantTotal:    0,
			wantAccuracy: 0,
		},
		{
			name:         "all correct",
			records:      records(models.VerdictFullyCorrect, models.VerdictFullyCorrect),
			wantTotal:    2,
			wantCorrect:  2,
			wantAccuracy: 1,
		},
		{
			name: "mixed",
			records: records(
				models.VerdictFullyCorrect,
				models.VerdictPartiallyCorrect,
				models.VerdictWrong,
				models.VerdictNotAnswered,
			),
			wantTotal:    4,
			wantCorrect:  1,
			wantAccuracy: 0.25,
		},
	}

	agg := NewAggregator(newTestLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := agg.Aggregate(tt.records)
			if s.Total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, s.Total)
			}
			if s.Counts[models.VerdictFullyCorrect] != tt.wantCorrect {
				t.Errorf("expected %d fully correct, got %d", tt.wantCorrect, s.Counts[models.VerdictFullyCorrect])
			}
			if s.Accuracy != tt.wantAccuracy {
				t.Errorf("expected accuracy %v, got %v", tt.wantAccuracy, s.Accuracy)
			}
		})
	}
}

func TestRender(t *testing.T) {
	s := NewAggregator(newTestLogger()).Aggregate(records(
		models.VerdictFullyCorrect,
		models.VerdictFullyCorrect,
		models.VerdictWrong,
		models.VerdictError,
	))

	var buf bytes.Buffer
	if err := Render(&buf, s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Verdict", "Fully Correct", "Wrongly answered", "Total", "50.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "|") {
		t.Errorf("expected markdown table, got:\n%s", out)
	}
}
