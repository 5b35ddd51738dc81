package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/achievement-card/internal/cache"
	"github.com/jonathan/achievement-card/internal/card"
	"github.com/jonathan/achievement-card/internal/config"
	"github.com/jonathan/achievement-card/internal/fetch"
	"github.com/jonathan/achievement-card/internal/ingestion"
	"github.com/jonathan/achievement-card/internal/observability"
	"github.com/jonathan/achievement-card/internal/types"
)

// loadConfig resolves the config file, environment, and flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return observability.NewLogger(cfg.LogLevel, devLogs)
}

// newSource builds the acquisition strategy named by cfg.Mode.
func newSource(cfg config.Config, logger *zap.Logger) (ingestion.Source, error) {
	opts := fetch.DefaultOptions()
	switch cfg.Mode {
	case types.ModeStructured:
		return ingestion.NewStructuredSource(cfg.UpstreamBaseURL, opts, logger), nil
	case types.ModePage:
		var browser ingestion.BrowserFunc
		if cfg.UseBrowser {
			browser = ingestion.ChromeBrowser(logger)
		}
		return ingestion.NewPageSource(cfg.UpstreamBaseURL, opts, browser, logger), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

// newRenderer wires the pipeline. store may be nil for one-shot renders.
func newRenderer(cfg config.Config, store cache.Store, logger *zap.Logger) (*card.Renderer, error) {
	source, err := newSource(cfg, logger)
	if err != nil {
		return nil, err
	}
	return card.NewRenderer(source, store, logger), nil
}

func newStore(cfg config.Config) *cache.Memory {
	return cache.NewMemory(time.Duration(cfg.CacheTTL), cfg.CacheCapacity)
}
