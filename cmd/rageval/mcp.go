package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/rag-evaluator/internal/setup"
)

func runMCP(ctx context.Context) error {
	cfg, logger, err := loadConfig(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	deps, err := setup.Wire(ctx, cfg, setup.Options{}, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		return err
	}
	defer deps.Close()

	server := mcpadapter.NewServer(deps.Generator, deps.Evaluator)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return nil
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		return err
	}
	return nil
}
