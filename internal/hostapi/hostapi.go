// Package hostapi defines the interfaces a host build engine implements so
// the orchestrator can register tasks, source roots, and dependencies into
// it. The host owns scheduling, execution, and its own anchor tasks; the
// orchestrator only declares work and wiring.
package hostapi

import (
	"context"

	"github.com/vk/gengridgo/internal/task"
)

// Names of the host-owned anchor tasks the orchestrator wires into.
const (
	// TaskClean is the host's global clean task.
	TaskClean = "clean"

	// TaskCompileMain is the host's main compilation task. Every backend
	// compile task is declared as one of its prerequisites.
	TaskCompileMain = "compileMain"
)

// TaskRegistry accepts task registrations and dependency declarations.
// Implementations are externally synchronized with respect to the host's
// apply lifecycle.
type TaskRegistry interface {
	// RegisterTask adds a task to the host's registry, including the
	// dependency edges declared by the definition's predecessors.
	RegisterTask(ctx context.Context, def *task.Definition) error

	// AddTaskDependency declares that the task `name` depends on the task
	// `dependsOn`. Both tasks must already be registered.
	AddTaskDependency(ctx context.Context, name, dependsOn string) error
}

// SourceSetRegistry accepts additional source roots for the host's
// compilation step.
type SourceSetRegistry interface {
	AddSourceRoot(ctx context.Context, path string) error
}

// DependencyRegistry accepts compile-scope dependency coordinates needed by
// generated sources.
type DependencyRegistry interface {
	AddCompileDependency(ctx context.Context, coordinate string) error
}

// Host is the full surface the orchestrator produces into.
type Host interface {
	Tasks() TaskRegistry
	Sources() SourceSetRegistry
	Dependencies() DependencyRegistry
}
