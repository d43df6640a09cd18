package provider

import (
	"context"
	"testing"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/llm/mocks"
	"go.uber.org/mock/gomock"
)

func TestPromptOnly_ClearsJSONMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockLLMClient(ctrl)
	backend.EXPECT().
		InvokeModel(gomock.Any(), llm.LLMRequest{Prompt: "p", JSONMode: false}).
		Return(&llm.LLMResponse{Content: "[]"}, nil)

	resp, err := promptOnly{backend}.InvokeModel(context.Background(), llm.LLMRequest{Prompt: "p", JSONMode: true})
	if err != nil {
		t.Fatalf("InvokeModel() failed: %v", err)
	}
	if resp.Content != "[]" {
		t.Errorf("unexpected content %q", resp.Content)
	}
}
