package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Load reads the process configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

func LoadFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}
