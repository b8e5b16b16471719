package dag

import (
	"fmt"

	"github.com/vk/gengridgo/internal/task"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// Add inserts a task definition into the graph. An error is returned if a
// definition with the same name is already present.
func (g *Graph) Add(def *task.Definition) error {
	if def == nil {
		return fmt.Errorf("nil task definition")
	}
	if def.Name == "" {
		return fmt.Errorf("task definition has empty name")
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[def.Name]; ok {
		return fmt.Errorf("duplicate task name: %s", def.Name)
	}

	g.nodes[def.Name] = &node{
		def:        def,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	g.order = append(g.order, def.Name)

	return nil
}

// Task returns the definition stored under the given name.
func (g *Graph) Task(name string) (*task.Definition, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return nil, false
	}
	return n.def, true
}

// Tasks returns all definitions in insertion order.
func (g *Graph) Tasks() []*task.Definition {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	defs := make([]*task.Definition, 0, len(g.order))
	for _, name := range g.order {
		defs = append(defs, g.nodes[name].def)
	}
	return defs
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// addEdge creates a directed edge from the `fromName` node to the `toName`
// node, meaning `toName` depends on `fromName`. The caller must hold the
// write lock.
func (g *Graph) addEdge(fromName, toName string) error {
	if fromName == toName {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromName, fromName)
	}

	fromNode, ok := g.nodes[fromName]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromName)
	}

	toNode, ok := g.nodes[toName]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toName)
	}

	toNode.deps[fromName] = fromNode
	fromNode.dependents[toName] = toNode

	return nil
}

// Dependencies returns the names of the tasks the given task depends on.
func (g *Graph) Dependencies(name string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", name)
	}

	deps := make([]string, 0, len(n.deps))
	for depName := range n.deps {
		deps = append(deps, depName)
	}
	return deps, nil
}

// Dependents returns the names of the tasks that depend on the given task.
func (g *Graph) Dependents(name string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", name)
	}

	dependents := make([]string, 0, len(n.dependents))
	for depName := range n.dependents {
		dependents = append(dependents, depName)
	}
	return dependents, nil
}
