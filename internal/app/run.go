package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/flowgridgo/internal/bench"
	"github.com/specialistvlad/flowgridgo/internal/builder"
	"github.com/specialistvlad/flowgridgo/internal/ctxlog"
	"github.com/specialistvlad/flowgridgo/internal/flow"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.HTTPPort > 0 {
		a.startHTTPServer(appConfig.HTTPPort)
	}

	if appConfig.Bench {
		return a.runBench(ctx, appConfig)
	}
	return a.runFlows(ctx, appConfig)
}

func (a *App) runBench(ctx context.Context, appConfig *Config) error {
	opts := bench.Options{
		Copies:      appConfig.Copies,
		Samples:     appConfig.Samples,
		Seed:        appConfig.Seed,
		Repeat:      appConfig.Repeat,
		Verify:      appConfig.Verify,
		BufferItems: appConfig.BufferItems,
	}

	a.logger.Info("🚀 Starting copy-chain benchmark...",
		"copies", opts.Copies, "samples", opts.Samples, "repeat", opts.Repeat)
	if err := bench.Run(ctx, a.outW, a.errW, opts); err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	a.logger.Info("🏁 Benchmark finished.")
	return nil
}

func (a *App) runFlows(ctx context.Context, appConfig *Config) error {
	if a.model == nil || len(a.model.Flows) == 0 {
		a.logger.Warn("No flows found in configuration, execution not required.")
		return nil
	}

	for _, f := range a.model.Flows {
		g, err := builder.Build(ctx, f, a.registry, a.converter)
		if err != nil {
			return fmt.Errorf("failed to build flowgraph: %w", err)
		}

		a.logger.Info("🚀 Starting flow...", "flow", f.Name, "blocks", len(g.Blocks()))
		if err := g.Run(ctx, flow.RunOptions{BufferItems: appConfig.BufferItems}); err != nil {
			return fmt.Errorf("flow %q: %w", f.Name, err)
		}
		a.logger.Info("🏁 Flow finished.", "flow", f.Name)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
