// Package catalog holds the registry of optional backend task templates.
// Hosts compile in the backend modules they support; the orchestrator looks
// templates up by the backend's configuration flag key.
package catalog

import (
	"fmt"
	"log/slog"
	"sort"
)

// Module is the interface a backend package implements to be registered.
type Module interface {
	Register(c *Catalog)
}

// Template describes one backend's compile task: the concrete task name, the
// annotation processor the generator must run, and a short description for
// plan output. Templates are inert data; defining one runs nothing.
type Template struct {
	// Backend is the configuration flag key this template answers to.
	Backend string

	// TaskName is the concrete task identifier, e.g. "compileQuerydslJpa".
	TaskName string

	// Processor is the fully qualified annotation processor handed to the
	// external generator.
	Processor string

	// Description summarizes the task for plan output.
	Description string
}

// Catalog maps backend flag keys to their task templates for a single
// application instance.
type Catalog struct {
	templates map[string]*Template
}

// New creates and initializes a new, empty Catalog instance.
func New() *Catalog {
	return &Catalog{
		templates: make(map[string]*Template),
	}
}

// RegisterTemplate adds a backend template to the catalog. Registering two
// templates for the same backend is a programmer error and panics.
func (c *Catalog) RegisterTemplate(t *Template) {
	if t == nil || t.Backend == "" || t.TaskName == "" {
		panic(fmt.Sprintf("invalid backend template: %+v", t))
	}
	if _, exists := c.templates[t.Backend]; exists {
		panic(fmt.Sprintf("backend template '%s' already registered", t.Backend))
	}
	slog.Debug("Registering backend template.", "backend", t.Backend, "task", t.TaskName)
	c.templates[t.Backend] = t
}

// Template returns the template registered for the given backend key.
func (c *Catalog) Template(backend string) (*Template, bool) {
	t, ok := c.templates[backend]
	return t, ok
}

// Backends returns the registered backend keys in lexical order.
func (c *Catalog) Backends() []string {
	keys := make([]string, 0, len(c.templates))
	for key := range c.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
