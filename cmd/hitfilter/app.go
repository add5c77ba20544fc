package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/hitfilter/internal/config"
	"github.com/kailas-cloud/hitfilter/internal/domain/pattern"
	"github.com/kailas-cloud/hitfilter/internal/fixture"
	logpkg "github.com/kailas-cloud/hitfilter/internal/logger"
	"github.com/kailas-cloud/hitfilter/internal/metrics"
	"github.com/kailas-cloud/hitfilter/internal/version"
)

// app is the composition root shared by subcommands.
type app struct {
	env        string
	configPath string
	worldPath  string

	cfg      config.Config
	logger   *zap.Logger
	patterns pattern.Set
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.env == "" {
		a.env = config.GetEnv()
	}

	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.Load(a.env)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.logger, err = logpkg.NewLogger(a.env, a.cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	// Compiled once; read-only for the rest of the process.
	a.patterns, err = pattern.Compile(a.cfg.Patterns.Sources())
	if err != nil {
		return fmt.Errorf("compile patterns: %w", err)
	}

	// Register metrics explicitly (no init())
	metrics.Register()

	a.logger.Debug("hitfilter starting",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", a.env),
		zap.String("command", cmd.Name()),
	)
	ctx := logpkg.ContextWithLogger(contextOf(cmd), a.logger)
	cmd.SetContext(logpkg.With(ctx, zap.String("command", cmd.Name())))
	return nil
}

// run wraps a command body so teardown happens whether or not it fails.
// cobra skips PostRun hooks when RunE returns an error.
func (a *app) run(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		defer a.teardown()
		return fn(cmd)
	}
}

func (a *app) teardown() {
	if a.logger == nil {
		return
	}
	if path := a.cfg.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			a.logger.Error("Failed to write metrics textfile", zap.String("path", path), zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

func (a *app) loadWorld() (*fixture.World, error) {
	w, err := fixture.Load(a.worldPath)
	if err != nil {
		return nil, fmt.Errorf("load world: %w", err)
	}
	return w, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
