// Package config defines the format-agnostic configuration model for the
// orchestrator, along with the Loader interface for reading it from various
// sources.
//
// The config.Model is the single source of truth for the orchestrator: which
// persistence backends are enabled, where generated sources go, and which
// support library the generated code needs. Concrete Loader implementations,
// such as for HCL and YAML, live in separate packages.
package config
