package setup

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/config"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/executor"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/generator"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/judge"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/metrics"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/parser"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/provider"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/rag"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/reader"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/report"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/sink/excel"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/sink/sheets"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/storage"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/stream"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/stream/redis"
	"github.com/rs/zerolog"
)

// Options toggles the optional collaborators of a run.
type Options struct {
	VerifyStorage bool
	// Stream enables the results stream when REDIS_ADDR is set.
	Stream bool
}

type Dependencies struct {
	Config     *config.Config
	Metrics    *metrics.Metrics
	Selector   *provider.Selector
	Generator  *generator.Generator
	Evaluator  *judge.Evaluator
	Executor   *executor.Executor
	Uploader   *sheets.Uploader
	Excel      *excel.Writer
	Aggregator *report.Aggregator
	Publisher  stream.ResultPublisher
	Logger     *zerolog.Logger
}

// Wire builds every component from cfg. Only an invalid provider catalogue
// is fatal; optional collaborators that fail to start are logged and left out.
func Wire(ctx context.Context, cfg *config.Config, opts Options, logger *zerolog.Logger) (*Dependencies, error) {
	catalogue, err := config.LoadProvidersConfig(cfg.ProvidersConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load providers config: %w", err)
	}
	if err := catalogue.Validate(); err != nil {
		return nil, fmt.Errorf("invalid providers config: %w", err)
	}

	m := metrics.New()

	// LLM session
	factory := provider.NewFactory(catalogue.MaxRetries, m, logger)
	selector := provider.NewSelector(provider.Identities(cfg, catalogue), factory, logger)

	uploader := sheets.NewUploader(cfg.GoogleSheetID, cfg.GoogleCredentialsFile, cfg.UserName, logger)
	selector.OnPin(uploader.SetModelLabel)

	gen := generator.New(selector, parser.New(logger), logger)
	eval := judge.NewEvaluator(selector, logger)

	// RAG system under test
	ragClient := rag.NewClient(cfg.RAGQueryURL, cfg.RAGTeamID, m, logger)
	auth := rag.NewAuthenticator(cfg.AuthURL, cfg.AuthEmail, cfg.AuthPassword, logger)

	exec := executor.NewExecutor(
		reader.New(logger),
		gen,
		eval,
		ragClient,
		auth,
		executor.Options{
			StorageBasePath: cfg.StorageBasePath,
			Delay:           cfg.RAGDelay,
			Workers:         cfg.Workers,
		},
		logger,
	).WithRecorder(m)

	deps := &Dependencies{
		Config:     cfg,
		Metrics:    m,
		Selector:   selector,
		Generator:  gen,
		Evaluator:  eval,
		Executor:   exec,
		Uploader:   uploader,
		Excel:      excel.NewWriter(cfg.OutputFile),
		Aggregator: report.NewAggregator(logger),
		Logger:     logger,
	}

	if opts.VerifyStorage {
		verifier, err := storage.NewS3Verifier(ctx, cfg.AWSRegion, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Storage verification disabled")
		} else {
			exec.WithStorageVerifier(verifier)
		}
	}

	if opts.Stream && cfg.RedisAddr != "" {
		streamCfg := stream.NewStreamConfig("redis", redis.NewRedisStreamConfig(cfg.RedisAddr, cfg.RedisPassword, cfg.ResultsStream))
		publisher, err := stream.NewResultPublisher(ctx, streamCfg, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("Results stream disabled")
		} else {
			deps.Publisher = publisher
			exec.WithPublisher(publisher)
		}
	}

	return deps, nil
}

// Close releases the connections opened by Wire.
func (d *Dependencies) Close() error {
	if d.Publisher != nil {
		return d.Publisher.Close()
	}
	return nil
}
