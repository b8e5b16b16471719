package dag

import (
	"context"
	"fmt"

	"github.com/vk/gengridgo/internal/ctxlog"
)

// Validate completes the graph. It links every definition's declared
// predecessors into edges and then checks for cycles. A graph is not
// considered complete until Validate has returned nil: a predecessor name
// that resolves to no node is an error, as is any cycle.
func (g *Graph) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	g.mutex.Lock()
	defer g.mutex.Unlock()

	if !g.linked {
		for _, name := range g.order {
			n := g.nodes[name]
			for _, pred := range n.def.Predecessors {
				if _, ok := g.nodes[pred]; !ok {
					return fmt.Errorf("task %s references unknown predecessor %s", name, pred)
				}
				if err := g.addEdge(pred, name); err != nil {
					return fmt.Errorf("linking task %s: %w", name, err)
				}
			}
		}
		g.linked = true
	}
	logger.Debug("Graph linking complete.", "node_count", len(g.nodes))

	if err := g.detectCycles(); err != nil {
		return err
	}
	logger.Debug("Cycle detection passed.")

	return nil
}

// detectCycles checks the graph for any cycles. It returns a non-nil error
// if a cycle is found, indicating the first node involved in the detected
// cycle. The caller must hold the lock.
func (g *Graph) detectCycles() error {
	// Use classic depth-first search with three sets of nodes:
	// permanent: nodes that have been fully visited and are not part of a cycle.
	// temporary: nodes currently in the recursion stack for the current traversal.
	// unvisited: all other nodes.
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.def.Name] {
			return nil // Already visited and known to be safe.
		}
		if temporary[n.def.Name] {
			// We've hit a node that's already in our recursion stack, so we have a cycle.
			return fmt.Errorf("cycle detected involving task '%s'", n.def.Name)
		}

		temporary[n.def.Name] = true

		for _, dependent := range n.dependents {
			if err := visit(dependent); err != nil {
				return err // Propagate the error up.
			}
		}

		// All dependents have been visited, so we can move this node from temporary to permanent.
		delete(temporary, n.def.Name)
		permanent[n.def.Name] = true

		return nil
	}

	// Visit every node in the graph. Iterate in insertion order so the
	// reported cycle is stable across runs.
	for _, name := range g.order {
		n := g.nodes[name]
		if !permanent[n.def.Name] {
			if err := visit(n); err != nil {
				return err
			}
		}
	}

	return nil
}
