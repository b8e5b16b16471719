package orchestrator

import (
	"context"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
	"github.com/vk/gengridgo/internal/generator"
	"github.com/vk/gengridgo/internal/hostapi"
	"github.com/vk/gengridgo/internal/memhost"
	"github.com/vk/gengridgo/internal/session"
	"github.com/vk/gengridgo/internal/task"
)

// recordingRunner captures generator invocations instead of executing them.
type recordingRunner struct {
	mu          sync.Mutex
	invocations []generator.Invocation
}

func (r *recordingRunner) Run(ctx context.Context, inv generator.Invocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invocations = append(r.invocations, inv)
	return nil
}

// testCatalog returns a catalog with templates for jpa and hibernate only.
func testCatalog() *catalog.Catalog {
	c := catalog.New()
	c.RegisterTemplate(&catalog.Template{
		Backend:   config.BackendJPA,
		TaskName:  "compileQuerydslJpa",
		Processor: "com.querydsl.apt.jpa.JPAAnnotationProcessor",
	})
	c.RegisterTemplate(&catalog.Template{
		Backend:   config.BackendHibernate,
		TaskName:  "compileQuerydslHibernate",
		Processor: "com.querydsl.apt.hibernate.HibernateAnnotationProcessor",
	})
	return c
}

func newOrchestrator(cat *catalog.Catalog) (*Orchestrator, *memhost.Host) {
	host := memhost.New()
	orch := New(cat, host, session.New(), Options{FS: afero.NewMemMapFs()})
	return orch, host
}

func TestApplyScaffoldOnly(t *testing.T) {
	ctx := context.Background()
	orch, host := newOrchestrator(testCatalog())

	graph, err := orch.Apply(ctx, config.NewModel())
	require.NoError(t, err)

	// Scaffold plus the two anchors, nothing else.
	assert.Equal(t, 4, graph.Len())
	for _, name := range host.TaskNames() {
		assert.NotContains(t, name, "compileQuerydsl")
	}

	_, ok := host.Task(task.CleanSourcesDir)
	assert.True(t, ok)
	_, ok = host.Task(task.InitSourcesDir)
	assert.True(t, ok)
	assert.Equal(t, []string{task.CleanSourcesDir}, host.Predecessors(hostapi.TaskClean))
	assert.Empty(t, host.Predecessors(hostapi.TaskCompileMain))
}

func TestApplySingleBackend(t *testing.T) {
	ctx := context.Background()
	orch, host := newOrchestrator(testCatalog())

	model := config.NewModel()
	model.Backends[config.BackendJPA] = true

	_, err := orch.Apply(ctx, model)
	require.NoError(t, err)

	def, ok := host.Task("compileQuerydslJpa")
	require.True(t, ok)
	assert.Equal(t, []string{task.InitSourcesDir}, def.Predecessors)
	assert.Equal(t, []string{"compileQuerydslJpa"}, host.Predecessors(hostapi.TaskCompileMain))
}

func TestApplyWorkedExample(t *testing.T) {
	ctx := context.Background()
	orch, host := newOrchestrator(testCatalog())

	model := config.NewModel()
	model.Backends[config.BackendJPA] = true
	model.Backends[config.BackendHibernate] = true
	model.OutputDirectory = "gen/querydsl"
	model.Library = "org.querydsl:querydsl-core:4.1"

	_, err := orch.Apply(ctx, model)
	require.NoError(t, err)

	assert.Equal(t, []string{
		hostapi.TaskClean,
		hostapi.TaskCompileMain,
		task.CleanSourcesDir,
		task.InitSourcesDir,
		"compileQuerydslJpa",
		"compileQuerydslHibernate",
	}, host.TaskNames())

	for _, name := range []string{"compileQuerydslJpa", "compileQuerydslHibernate"} {
		assert.Equal(t, []string{task.InitSourcesDir}, host.Predecessors(name))
	}
	assert.ElementsMatch(t,
		[]string{"compileQuerydslJpa", "compileQuerydslHibernate"},
		host.Predecessors(hostapi.TaskCompileMain))

	assert.Equal(t, []string{"gen/querydsl"}, host.SourceRoots())
	assert.Equal(t, []string{"org.querydsl:querydsl-core:4.1"}, host.CompileDependencies())
}

func TestApplyAllBackendsAreIndependent(t *testing.T) {
	ctx := context.Background()

	cat := catalog.New()
	taskNames := map[string]string{
		config.BackendJPA:             "compileQuerydslJpa",
		config.BackendJDO:             "compileQuerydslJdo",
		config.BackendHibernate:       "compileQuerydslHibernate",
		config.BackendMorphia:         "compileQuerydslMorphia",
		config.BackendRoo:             "compileQuerydslRoo",
		config.BackendSpringDataMongo: "compileQuerydslSpringDataMongo",
	}
	for backend, name := range taskNames {
		cat.RegisterTemplate(&catalog.Template{Backend: backend, TaskName: name, Processor: "p"})
	}
	orch, host := newOrchestrator(cat)

	model := config.NewModel()
	for _, backend := range config.AllBackends {
		model.Backends[backend] = true
	}

	_, err := orch.Apply(ctx, model)
	require.NoError(t, err)

	compileTasks := 0
	for _, name := range host.TaskNames() {
		if name == task.CleanSourcesDir || name == task.InitSourcesDir {
			continue
		}
		if name == hostapi.TaskClean || name == hostapi.TaskCompileMain {
			continue
		}
		compileTasks++
		// The only declared predecessor is the init task: no edge touches a
		// sibling backend task.
		assert.Equal(t, []string{task.InitSourcesDir}, host.Predecessors(name))
	}
	assert.Equal(t, 6, compileTasks)
}

func TestApplyUnknownBackend(t *testing.T) {
	ctx := context.Background()
	orch, host := newOrchestrator(testCatalog())

	model := config.NewModel()
	model.Backends[config.BackendJPA] = true
	model.Backends[config.BackendMorphia] = true // no template registered

	_, err := orch.Apply(ctx, model)
	require.ErrorIs(t, err, ErrUnknownBackend)
	assert.ErrorContains(t, err, "morphia")

	// The failed apply left the host exactly as seeded.
	assert.Equal(t, []string{hostapi.TaskClean, hostapi.TaskCompileMain}, host.TaskNames())
	assert.Empty(t, host.SourceRoots())
	assert.Empty(t, host.CompileDependencies())

	// And the guard stays unset: a corrected apply succeeds.
	model.Backends[config.BackendMorphia] = false
	_, err = orch.Apply(ctx, model)
	require.NoError(t, err)
	_, ok := host.Task("compileQuerydslJpa")
	assert.True(t, ok)
}

func TestApplyInvalidOutputPath(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path", func(t *testing.T) {
		orch, host := newOrchestrator(testCatalog())
		model := config.NewModel()
		model.OutputDirectory = ""

		_, err := orch.Apply(ctx, model)
		require.ErrorIs(t, err, ErrInvalidOutputPath)
		assert.Equal(t, []string{hostapi.TaskClean, hostapi.TaskCompileMain}, host.TaskNames())
	})

	t.Run("path occupied by a file", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "gen/querydsl", []byte("x"), 0o644))

		orch := New(testCatalog(), memhost.New(), session.New(), Options{FS: fsys})
		model := config.NewModel()
		model.OutputDirectory = "gen/querydsl"

		_, err := orch.Apply(ctx, model)
		assert.ErrorIs(t, err, ErrInvalidOutputPath)
	})
}

func TestApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	orch, host := newOrchestrator(testCatalog())

	model := config.NewModel()
	model.Backends[config.BackendJPA] = true
	model.Library = "org.querydsl:querydsl-core:4.1"

	first, err := orch.Apply(ctx, model)
	require.NoError(t, err)

	second, err := orch.Apply(ctx, model)
	require.NoError(t, err)
	assert.Same(t, first, second)

	// No duplicate registrations of any kind.
	assert.Len(t, host.TaskNames(), 5)
	assert.Len(t, host.SourceRoots(), 1)
	assert.Len(t, host.CompileDependencies(), 1)
}

func TestApplyIsPureUntilExecution(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	host := memhost.New()
	orch := New(testCatalog(), host, session.New(), Options{FS: fsys})

	model := config.NewModel()
	model.Backends[config.BackendJPA] = true
	model.OutputDirectory = "gen/querydsl"

	_, err := orch.Apply(ctx, model)
	require.NoError(t, err)

	// Apply never touches the file system; only running the scaffold does.
	exists, err := afero.DirExists(fsys, "gen/querydsl")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, host.Run(ctx))
	exists, err = afero.DirExists(fsys, "gen/querydsl")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestApplyWiresGeneratorInvocations(t *testing.T) {
	ctx := context.Background()
	runner := &recordingRunner{}
	host := memhost.New()

	orch := New(testCatalog(), host, session.New(), Options{
		FS:     afero.NewMemMapFs(),
		Runner: runner,
	})

	model := config.NewModel()
	model.Backends[config.BackendJPA] = true
	model.OutputDirectory = "gen/querydsl"
	model.GeneratorArgs = map[string]string{"encoding": "UTF-8"}

	_, err := orch.Apply(ctx, model)
	require.NoError(t, err)
	require.NoError(t, host.Run(ctx))

	require.Len(t, runner.invocations, 1)
	inv := runner.invocations[0]
	assert.Equal(t, "com.querydsl.apt.jpa.JPAAnnotationProcessor", inv.Processor)
	assert.Equal(t, "gen/querydsl", inv.OutputDir)
	assert.Equal(t, map[string]string{"encoding": "UTF-8"}, inv.Args)
}
