package stream

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/models"
	red "github.com/povarna/generative-ai-agents/rag-evaluator/internal/redis"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/stream/redis"
	"github.com/rs/zerolog"
)

// ResultPublisher forwards result records to a stream.
type ResultPublisher interface {
	Publish(ctx context.Context, runID string, record models.ResultRecord) error
	Close() error
}

func NewResultPublisher(ctx context.Context, cfg *StreamConfig, logger *zerolog.Logger) (ResultPublisher, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil || cfg.RedisConfig.RedisAddr == "" {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(ctx, cfg.RedisConfig.RedisAddr, cfg.RedisConfig.RedisPassword, 3, logger)
		if err != nil {
			return nil, err
		}

		return redis.NewPublisher(client, cfg.RedisConfig.Stream, cfg.RedisConfig.MaxLen, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
