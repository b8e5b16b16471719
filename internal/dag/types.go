package dag

import (
	"sync"

	"github.com/vk/gengridgo/internal/task"
)

// Graph is a collection of task definitions and their dependency edges,
// representing a DAG. All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the node maps during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by task name.
	nodes map[string]*node
	// order records insertion order so listings stay deterministic.
	order []string
	// linked is set once Validate has resolved predecessor edges.
	linked bool
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using task names),
// not by direct struct manipulation.
type node struct {
	// def is the immutable task definition carried by this vertex.
	def *task.Definition
	// deps holds the set of nodes this node depends on (predecessors).
	deps map[string]*node
	// dependents holds the set of nodes that depend on this node (successors).
	dependents map[string]*node
}
