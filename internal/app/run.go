package app

import (
	"context"
	"fmt"

	"github.com/vk/gengridgo/internal/ctxlog"
	"github.com/vk/gengridgo/internal/generator"
	"github.com/vk/gengridgo/internal/memhost"
	"github.com/vk/gengridgo/internal/orchestrator"
	"github.com/vk/gengridgo/internal/session"
)

// Run executes the main application logic: apply the orchestrator to a fresh
// in-memory host session, then either render the resulting plan or execute it.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var runner generator.Runner
	if a.model.Generator != "" {
		runner = &generator.ExecRunner{Command: a.model.Generator}
	} else {
		runner = &generator.LogRunner{}
	}

	host := memhost.New()
	sess := session.New()
	orch := orchestrator.New(a.catalog, host, sess, orchestrator.Options{Runner: runner})

	a.logger.Debug("Applying orchestrator...", "session", sess.ID())
	graph, err := orch.Apply(ctx, a.model)
	if err != nil {
		return fmt.Errorf("failed to apply orchestrator: %w", err)
	}
	a.logger.Debug("Orchestrator applied.", "task_count", graph.Len())

	a.renderPlan(host)

	if appConfig.Execute {
		a.logger.Info("Executing task graph...")
		if err := host.Run(ctx); err != nil {
			return fmt.Errorf("execution failed: %w", err)
		}
		a.logger.Info("Execution finished.")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
