package memhost

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/gengridgo/internal/ctxlog"
	"github.com/vk/gengridgo/internal/hostapi"
	"github.com/vk/gengridgo/internal/task"
)

// Host is an in-memory implementation of hostapi.Host.
type Host struct {
	mu sync.RWMutex

	// tasks maps task name to its definition; order preserves registration
	// order for deterministic listings and runs.
	tasks map[string]*task.Definition
	order []string

	// preds maps task name to the set of task names it depends on.
	preds map[string]map[string]struct{}

	sourceRoots []string
	compileDeps []string
}

// New creates a Host pre-seeded with the host-owned anchor tasks.
func New() *Host {
	h := &Host{
		tasks: make(map[string]*task.Definition),
		preds: make(map[string]map[string]struct{}),
	}
	// Anchors carry no action; a real build engine supplies their behavior.
	h.add(&task.Definition{Name: hostapi.TaskClean, Description: "Host global clean task."})
	h.add(&task.Definition{Name: hostapi.TaskCompileMain, Description: "Host main compilation task."})
	return h
}

// Tasks implements hostapi.Host.
func (h *Host) Tasks() hostapi.TaskRegistry { return h }

// Sources implements hostapi.Host.
func (h *Host) Sources() hostapi.SourceSetRegistry { return h }

// Dependencies implements hostapi.Host.
func (h *Host) Dependencies() hostapi.DependencyRegistry { return h }

// add inserts a definition without locking. The caller must hold the lock or
// have exclusive access.
func (h *Host) add(def *task.Definition) {
	h.tasks[def.Name] = def
	h.order = append(h.order, def.Name)
	h.preds[def.Name] = make(map[string]struct{})
}

// RegisterTask implements hostapi.TaskRegistry. The definition's declared
// predecessors become dependency edges; they must already be registered.
func (h *Host) RegisterTask(ctx context.Context, def *task.Definition) error {
	if def == nil || def.Name == "" {
		return fmt.Errorf("invalid task definition")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.tasks[def.Name]; exists {
		return fmt.Errorf("task %s already registered", def.Name)
	}
	for _, pred := range def.Predecessors {
		if _, ok := h.tasks[pred]; !ok {
			return fmt.Errorf("task %s depends on unregistered task %s", def.Name, pred)
		}
	}

	h.add(def)
	for _, pred := range def.Predecessors {
		h.preds[def.Name][pred] = struct{}{}
	}

	ctxlog.FromContext(ctx).Debug("Task registered.", "task", def.Name, "predecessors", def.Predecessors)
	return nil
}

// AddTaskDependency implements hostapi.TaskRegistry.
func (h *Host) AddTaskDependency(ctx context.Context, name, dependsOn string) error {
	if name == dependsOn {
		return fmt.Errorf("self-referential dependency not allowed: %s", name)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.tasks[name]; !ok {
		return fmt.Errorf("task not registered: %s", name)
	}
	if _, ok := h.tasks[dependsOn]; !ok {
		return fmt.Errorf("task not registered: %s", dependsOn)
	}

	h.preds[name][dependsOn] = struct{}{}
	ctxlog.FromContext(ctx).Debug("Task dependency added.", "task", name, "depends_on", dependsOn)
	return nil
}

// AddSourceRoot implements hostapi.SourceSetRegistry.
func (h *Host) AddSourceRoot(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("source root path is empty")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sourceRoots = append(h.sourceRoots, path)

	ctxlog.FromContext(ctx).Debug("Source root added.", "path", path)
	return nil
}

// AddCompileDependency implements hostapi.DependencyRegistry.
func (h *Host) AddCompileDependency(ctx context.Context, coordinate string) error {
	if coordinate == "" {
		return fmt.Errorf("dependency coordinate is empty")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.compileDeps = append(h.compileDeps, coordinate)

	ctxlog.FromContext(ctx).Debug("Compile dependency added.", "coordinate", coordinate)
	return nil
}

// Task returns the registered definition with the given name.
func (h *Host) Task(name string) (*task.Definition, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	def, ok := h.tasks[name]
	return def, ok
}

// TaskNames returns all registered task names in registration order.
func (h *Host) TaskNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.order...)
}

// Predecessors returns the dependency set of the given task in lexical order.
func (h *Host) Predecessors(name string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set, ok := h.preds[name]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for pred := range set {
		names = append(names, pred)
	}
	sort.Strings(names)
	return names
}

// SourceRoots returns the registered source roots in registration order.
func (h *Host) SourceRoots() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.sourceRoots...)
}

// CompileDependencies returns the registered dependency coordinates in
// registration order.
func (h *Host) CompileDependencies() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.compileDeps...)
}
