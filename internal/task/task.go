// Package task defines the immutable task model shared by the catalog, the
// dependency graph, and the host registries. A Definition is created during
// orchestration setup and never mutated after insertion into a graph.
package task

import "context"

// Well-known task names owned by this orchestrator.
const (
	// CleanSourcesDir removes the generated-sources output directory.
	CleanSourcesDir = "cleanQuerydslSourcesDir"

	// InitSourcesDir creates the generated-sources output directory. It is a
	// prerequisite of every backend compile task.
	InitSourcesDir = "initQuerydslSourcesDir"
)

// Action is the opaque work a task performs when the host scheduler runs it.
// Defining an Action has no side effects; only running it does.
type Action func(ctx context.Context) error

// Definition describes a single task: a unique name, the names of the tasks
// that must run before it, and the action to run.
type Definition struct {
	// Name uniquely identifies the task within a graph and within the host's
	// task registry.
	Name string

	// Predecessors lists the task names this task depends on, in declaration
	// order.
	Predecessors []string

	// Action performs the task's work. A nil Action marks a placeholder for a
	// task owned by the host (an anchor), present only for graph validation.
	Action Action

	// Description is a short human-readable summary used in plan output.
	Description string
}

// Anchor reports whether the definition stands in for a host-owned task.
func (d *Definition) Anchor() bool {
	return d.Action == nil
}
