package main

import (
	"fmt"
	"strings"
	"sync"

	"lyricsync/internal/aligner"
	"lyricsync/internal/config"
	"lyricsync/internal/deps"
	"lyricsync/internal/logging"
	"lyricsync/internal/pipeline"
	"lyricsync/internal/runlog"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// withPipeline builds the full run stack and hands it to fn. The history
// store, when enabled, is closed after fn returns.
func (c *commandContext) withPipeline(fn func(*config.Config, *pipeline.Pipeline) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	statuses := deps.CheckBinaries(deps.Requirements(cfg.Aligner.Command))
	if err := deps.Missing(statuses); err != nil {
		return fmt.Errorf("%w; run `lyricsync deps` for details", err)
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}

	var history *runlog.Store
	if cfg.History.Enabled {
		history, err = runlog.Open(cfg.Paths.LogDir)
		if err != nil {
			return fmt.Errorf("open run history: %w", err)
		}
		defer history.Close()
	}

	engine := aligner.NewService(aligner.Config{
		Command: cfg.Aligner.Command,
		Model:   cfg.Aligner.Model,
	}, "")

	return fn(cfg, pipeline.New(cfg, logger, engine, history))
}
