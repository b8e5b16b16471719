// Package memhost provides an ephemeral, thread-safe, in-memory
// implementation of the hostapi interfaces, plus a topological runner.
//
// It is a reference host, not a build system: it exists so the registered
// task graph is observable in tests and executable from the CLI without a
// real build engine. It seeds the two host-owned anchor tasks (clean,
// compileMain) the way a real host would own them.
//
// The runner executes tasks strictly after their predecessors, one at a
// time, in registration order among ready tasks. Real hosts are free to run
// independent tasks in parallel; nothing registered here prevents that,
// since sibling backend tasks carry no edges between each other.
package memhost
