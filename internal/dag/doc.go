// Package dag holds the task dependency graph. The orchestrator builds a
// private Graph from task definitions, links predecessor edges, and validates
// it (unique names, no dangling predecessors, no cycles) before anything is
// registered with a host. A validated Graph is the unit handed to the host
// scheduler; siblings with no edge between them may run in any order.
package dag
