// Package orchestrator transforms a static configuration and a catalog of
// backend templates into a validated task dependency graph and registers it
// into a host build engine. Registration is all-or-nothing: the graph is
// built and validated privately first, and the host sees nothing unless
// every check passes. Applying twice in one session is a silent no-op.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/afero"

	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
	"github.com/vk/gengridgo/internal/ctxlog"
	"github.com/vk/gengridgo/internal/dag"
	"github.com/vk/gengridgo/internal/fsutil"
	"github.com/vk/gengridgo/internal/generator"
	"github.com/vk/gengridgo/internal/hostapi"
	"github.com/vk/gengridgo/internal/session"
	"github.com/vk/gengridgo/internal/task"
)

// Orchestrator wires code-generation tasks into a host build engine based on
// a configuration model. One Orchestrator serves one build session.
type Orchestrator struct {
	catalog *catalog.Catalog
	host    hostapi.Host
	session *session.Session
	fs      afero.Fs
	runner  generator.Runner

	mu    sync.Mutex
	graph *dag.Graph
}

// Options carries the injectable collaborators of an Orchestrator. Zero
// values select the OS file system and the logging generator runner.
type Options struct {
	FS     afero.Fs
	Runner generator.Runner
}

// New creates an orchestrator for the given catalog, host, and session.
func New(cat *catalog.Catalog, host hostapi.Host, sess *session.Session, opts Options) *Orchestrator {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	if opts.Runner == nil {
		opts.Runner = &generator.LogRunner{}
	}
	return &Orchestrator{
		catalog: cat,
		host:    host,
		session: sess,
		fs:      opts.FS,
		runner:  opts.Runner,
	}
}

// Apply builds, validates, and registers the task graph for the given model.
// On the second and later calls within the same session it returns the
// previously built graph without touching the host. All failures surface
// before any host registration; a failed apply leaves the host unchanged
// and the guard unset.
func (o *Orchestrator) Apply(ctx context.Context, model *config.Model) (*dag.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session.Applied() {
		logger.Debug("Already applied to this session, skipping.", "session", o.session.ID())
		return o.graph, nil
	}

	outputDir, err := o.resolveOutputDir(model)
	if err != nil {
		return nil, err
	}
	logger.Debug("Output directory resolved.", "path", outputDir)

	graph, owned, err := o.buildGraph(ctx, model, outputDir)
	if err != nil {
		return nil, err
	}
	if err := graph.Validate(ctx); err != nil {
		return nil, fmt.Errorf("task graph validation failed: %w", err)
	}
	logger.Debug("Task graph built and validated.", "task_count", graph.Len())

	if err := o.register(ctx, model, owned, outputDir); err != nil {
		return nil, err
	}

	o.session.MarkApplied()
	o.graph = graph
	logger.Info("Orchestrator applied.",
		"session", o.session.ID(),
		"backends", model.Enabled(),
		"output_dir", outputDir)

	return graph, nil
}

// Graph returns the graph built by a previous successful Apply, if any.
func (o *Orchestrator) Graph() *dag.Graph {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.graph
}

// resolveOutputDir checks the configured output path. Resolution is pure;
// the directory itself is created by the init task at execution time.
func (o *Orchestrator) resolveOutputDir(model *config.Model) (string, error) {
	if model.OutputDirectory == "" {
		return "", fmt.Errorf("%w: output directory is not configured", ErrInvalidOutputPath)
	}
	resolved, err := fsutil.ResolveOutputDir(o.fs, model.OutputDirectory)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidOutputPath, err)
	}
	return resolved, nil
}

// buildGraph assembles the private graph: the clean/init scaffold pair, one
// compile task per enabled backend, and actionless placeholders for the
// host-owned anchors so anchor wiring is validated too. It returns the
// graph together with the definitions the orchestrator owns, in
// registration order.
func (o *Orchestrator) buildGraph(ctx context.Context, model *config.Model, outputDir string) (*dag.Graph, []*task.Definition, error) {
	graph := dag.New()

	cleanDef := &task.Definition{
		Name:        task.CleanSourcesDir,
		Description: "Deletes the generated-sources output directory.",
		Action: func(ctx context.Context) error {
			return fsutil.RemoveDir(o.fs, outputDir)
		},
	}
	initDef := &task.Definition{
		Name:        task.InitSourcesDir,
		Description: "Creates the generated-sources output directory.",
		Action: func(ctx context.Context) error {
			return fsutil.EnsureDir(o.fs, outputDir)
		},
	}
	owned := []*task.Definition{cleanDef, initDef}

	for _, backend := range model.Enabled() {
		tpl, ok := o.catalog.Template(backend)
		if !ok {
			return nil, nil, fmt.Errorf("%w: flag %q is enabled but no template is registered", ErrUnknownBackend, backend)
		}
		owned = append(owned, o.compileTask(tpl, model, outputDir))
	}

	// Host-owned anchors, present only so the full wiring is validated
	// before the host sees any of it.
	anchors := []*task.Definition{
		{Name: hostapi.TaskClean, Predecessors: []string{task.CleanSourcesDir}},
		{Name: hostapi.TaskCompileMain, Predecessors: compileTaskNames(owned[2:])},
	}

	for _, def := range owned {
		if err := graph.Add(def); err != nil {
			return nil, nil, fmt.Errorf("task graph construction failed: %w", err)
		}
	}
	for _, def := range anchors {
		if err := graph.Add(def); err != nil {
			return nil, nil, fmt.Errorf("task graph construction failed: %w", err)
		}
	}
	ctxlog.FromContext(ctx).Debug("Graph nodes created.",
		"owned", len(owned), "anchors", len(anchors))

	return graph, owned, nil
}

// compileTask instantiates a backend template into a concrete task
// definition. Every backend task shares the init task as its only declared
// predecessor; sibling backends stay independent of each other.
func (o *Orchestrator) compileTask(tpl *catalog.Template, model *config.Model, outputDir string) *task.Definition {
	inv := generator.Invocation{
		Processor: tpl.Processor,
		OutputDir: outputDir,
		Args:      model.GeneratorArgs,
	}
	return &task.Definition{
		Name:         tpl.TaskName,
		Predecessors: []string{task.InitSourcesDir},
		Description:  tpl.Description,
		Action: func(ctx context.Context) error {
			return o.runner.Run(ctx, inv)
		},
	}
}

// register commits the validated graph to the host: owned tasks, anchor
// wiring, the extra source root, and the support library.
func (o *Orchestrator) register(ctx context.Context, model *config.Model, owned []*task.Definition, outputDir string) error {
	logger := ctxlog.FromContext(ctx)

	tasks := o.host.Tasks()
	for _, def := range owned {
		if err := tasks.RegisterTask(ctx, def); err != nil {
			return fmt.Errorf("host task registration failed: %w", err)
		}
	}

	if err := tasks.AddTaskDependency(ctx, hostapi.TaskClean, task.CleanSourcesDir); err != nil {
		return fmt.Errorf("host task wiring failed: %w", err)
	}
	for _, name := range compileTaskNames(owned[2:]) {
		if err := tasks.AddTaskDependency(ctx, hostapi.TaskCompileMain, name); err != nil {
			return fmt.Errorf("host task wiring failed: %w", err)
		}
	}

	if err := o.host.Sources().AddSourceRoot(ctx, outputDir); err != nil {
		return fmt.Errorf("host source root registration failed: %w", err)
	}

	if model.Library != "" {
		if err := o.host.Dependencies().AddCompileDependency(ctx, model.Library); err != nil {
			return fmt.Errorf("host dependency registration failed: %w", err)
		}
	} else {
		logger.Debug("No support library configured, skipping dependency registration.")
	}

	return nil
}

// compileTaskNames extracts the names of backend compile definitions.
func compileTaskNames(defs []*task.Definition) []string {
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	return names
}
