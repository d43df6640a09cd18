package judge

import (
	"context"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm/mocks"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/provider"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type fixedSession struct {
	session *provider.Session
}

func (f fixedSession) Session(context.Context) *provider.Session {
	return f.session
}

func newTestEvaluator(client *mocks.MockGenerator) *Evaluator {
	logger := zerolog.Nop()
	session := &provider.Session{
		Identity: provider.Identity{Name: models.ProviderGroq, Label: "llama-3.3-70b"},
		Client:   client,
	}
	return NewEvaluator(fixedSession{session}, &logger)
}

func TestEvaluate_Verdicts(t *testing.T) {
	tests := []struct {
		name   string
		output string
		ok     bool
		want   models.Verdict
	}{
		{name: "fully correct", output: "Fully Correct", ok: true, want: models.VerdictFullyCorrect},
		{name: "lowercase with punctuation", output: "partially correct.", ok: true, want: models.VerdictPartiallyCorrect},
		{name: "wrong", output: "Wrongly answered", ok: true, want: models.VerdictWrong},
		{name: "not answered", output: "NOT ANSWERED", ok: true, want: models.VerdictNotAnswered},
		{name: "unrecognised", output: "I think it's fine", ok: true, want: models.VerdictError},
		{name: "backend failure", output: "", ok: false, want: models.VerdictError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockGenerator(ctrl)
			client.EXPECT().
				Generate(gomock.Any(), gomock.Any(), false).
				DoAndReturn(func(_ context.Context, p string, _ bool) (string, bool) {
					if !strings.Contains(p, "Question: What is Go?") {
						t.Errorf("expected question in evaluation prompt")
					}
					return tt.output, tt.ok
				})

			got := newTestEvaluator(client).Evaluate(context.Background(), "What is Go?", "A language", "Go is a language")
			if got != tt.want {
				t.Errorf("Evaluate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluate_SkippedResponseShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any backend call fails the test.
	client := mocks.NewMockGenerator(ctrl)

	got := newTestEvaluator(client).Evaluate(context.Background(), "Q", "E", models.SkippedResponse)
	if got != models.VerdictNotAnswered {
		t.Errorf("expected not answered, got %q", got)
	}
}
