package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// StreamWriter is the part of the redis client the publisher needs.
type StreamWriter interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type Publisher struct {
	client StreamWriter
	stream string
	maxLen int64
	logger *zerolog.Logger
}

func NewPublisher(client StreamWriter, stream string, maxLen int64, logger *zerolog.Logger) *Publisher {
	return &Publisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
		logger: logger,
	}
}

// Publish appends record to the stream as a JSON payload tagged with runID.
func (p *Publisher) Publish(ctx context.Context, runID string, record models.ResultRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"payload": string(payload),
			"run_id":  runID,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.stream, err)
	}

	p.logger.Debug().
		Str("stream", p.stream).
		Str("id", id).
		Str("run_id", runID).
		Msg("Result published")
	return nil
}

func (p *Publisher) Close() error {
	if c, ok := p.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
