package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/episode-flow/internal/config"
	"github.com/nguyentantai21042004/episode-flow/internal/events"
	"github.com/nguyentantai21042004/episode-flow/internal/export"
	"github.com/nguyentantai21042004/episode-flow/internal/generator"
	"github.com/nguyentantai21042004/episode-flow/internal/logger"
	"github.com/nguyentantai21042004/episode-flow/internal/pipeline"
	"github.com/nguyentantai21042004/episode-flow/internal/processor"
	"github.com/nguyentantai21042004/episode-flow/internal/store"
)

// commandContext lazily loads configuration shared by every subcommand.
type commandContext struct {
	configPath *string
	cfg        *config.Config
	log        logger.Logger
}

func newCommandContext(configPath *string) *commandContext {
	return &commandContext{configPath: configPath}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.log = logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	return cfg, nil
}

func (c *commandContext) openStore(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(ctx, c.cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildProcessor wires generator, orchestrator, store and exporter. Task
// metrics are registered on reg when it is not nil.
func (c *commandContext) buildProcessor(ctx context.Context, reg prometheus.Registerer) (processor.Processor, *store.Store, error) {
	cfg := c.cfg

	gen, err := generator.New(ctx, generator.Config{
		APIKeys:    cfg.Gemini.APIKeys,
		Model:      cfg.Gemini.Model,
		Timeout:    cfg.Gemini.Timeout,
		MaxRetries: *cfg.Gemini.MaxRetries,
	}, c.log)
	if err != nil {
		return nil, nil, fmt.Errorf("create generator: %w", err)
	}

	emitter := events.Multi{events.NewLogEmitter(c.log)}
	if reg != nil {
		prom, err := events.NewPrometheusEmitter(reg)
		if err != nil {
			return nil, nil, fmt.Errorf("register metrics: %w", err)
		}
		emitter = append(emitter, prom)
	}

	orch := pipeline.NewOrchestrator(gen, emitter,
		pipeline.WithMaxParallel(cfg.Pipeline.MaxParallel),
		pipeline.WithTaskTimeout(cfg.Pipeline.TaskTimeout),
	)

	st, err := c.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	proc := processor.New(cfg, orch, st, export.New(cfg.Paths.Exports, c.log), c.log)
	return proc, st, nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Archived,
		cfg.Paths.Failed,
		cfg.Paths.Exports,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
