package memhost

import (
	"context"
	"fmt"

	"github.com/vk/gengridgo/internal/ctxlog"
)

// Run executes every registered task in a topological order: a task runs
// only after all of its predecessors have run. Among ready tasks,
// registration order decides; tasks with no edge between them have no
// ordering contract. Anchor tasks without an action are treated as no-ops.
func (h *Host) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	order, err := h.topoOrder()
	if err != nil {
		return err
	}
	logger.Debug("Run order computed.", "task_count", len(order))

	for _, name := range order {
		h.mu.RLock()
		def := h.tasks[name]
		h.mu.RUnlock()

		if def.Action == nil {
			logger.Debug("Skipping actionless task.", "task", name)
			continue
		}

		logger.Info("Running task.", "task", name)
		if err := def.Action(ctx); err != nil {
			return fmt.Errorf("task %s failed: %w", name, err)
		}
	}

	return nil
}

// topoOrder computes a deterministic topological order of all registered
// tasks using Kahn's algorithm, or an error if the edges form a cycle.
func (h *Host) topoOrder() ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	remaining := make(map[string]int, len(h.tasks))
	for name, set := range h.preds {
		remaining[name] = len(set)
	}

	order := make([]string, 0, len(h.tasks))
	done := make(map[string]struct{}, len(h.tasks))

	for len(order) < len(h.tasks) {
		progressed := false
		for _, name := range h.order {
			if _, ok := done[name]; ok {
				continue
			}
			if remaining[name] > 0 {
				continue
			}

			order = append(order, name)
			done[name] = struct{}{}
			progressed = true

			// Release everything that was waiting on this task.
			for other, set := range h.preds {
				if _, ok := set[name]; ok {
					remaining[other]--
				}
			}
		}
		if !progressed {
			return nil, fmt.Errorf("task dependencies contain a cycle")
		}
	}

	return order, nil
}
