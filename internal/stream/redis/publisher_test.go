package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type fakeStream struct {
	calls []*redis.XAddArgs
	err   error
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.calls = append(f.calls, a)
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	return redis.NewStringResult("1-0", nil)
}

func TestPublish(t *testing.T) {
	fake := &fakeStream{}
	p := NewPublisher(fake, "rag-eval-results", 0, newTestLogger())

	record := models.ResultRecord{
		Filename: "A.pdf",
		Question: "q?",
		Status:   models.VerdictFullyCorrect,
	}
	if err := p.Publish(context.Background(), "run-1", record); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("expected 1 XAdd, got %d", len(fake.calls))
	}
	args := fake.calls[0]
	if args.Stream != "rag-eval-results" {
		t.Errorf("expected stream rag-eval-results, got %s", args.Stream)
	}
	if args.MaxLen != 0 {
		t.Errorf("expected no trimming, got MaxLen %d", args.MaxLen)
	}

	values := args.Values.(map[string]any)
	if values["run_id"] != "run-1" {
		t.Errorf("expected run_id run-1, got %v", values["run_id"])
	}

	var decoded models.ResultRecord
	if err := json.Unmarshal([]byte(values["payload"].(string)), &decoded); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}
	if decoded != record {
		t.Errorf("expected %+v, got %+v", record, decoded)
	}
}

func TestPublish_MaxLen(t *testing.T) {
	fake := &fakeStream{}
	p := NewPublisher(fake, "s", 1000, newTestLogger())

	if err := p.Publish(context.Background(), "run", models.ResultRecord{}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if fake.calls[0].MaxLen != 1000 || !fake.calls[0].Approx {
		t.Errorf("expected approximate trim to 1000, got %+v", fake.calls[0])
	}
}

func TestPublish_Error(t *testing.T) {
	fake := &fakeStream{err: errors.New("connection refused")}
	p := NewPublisher(fake, "s", 0, newTestLogger())

	if err := p.Publish(context.Background(), "run", models.ResultRecord{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestClose_NonCloser(t *testing.T) {
	p := NewPublisher(&fakeStream{}, "s", 0, newTestLogger())
	if err := p.Close(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
