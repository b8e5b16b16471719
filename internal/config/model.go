package config

import "sort"

// Canonical backend flag keys. These are the names used in configuration
// files and as catalog lookup keys.
const (
	BackendJPA             = "jpa"
	BackendJDO             = "jdo"
	BackendHibernate       = "hibernate"
	BackendMorphia         = "morphia"
	BackendRoo             = "roo"
	BackendSpringDataMongo = "springDataMongo"
)

// AllBackends lists the canonical backend keys in their fixed, documented
// order. Plan output and backend iteration follow this order; it carries no
// execution-ordering meaning.
var AllBackends = []string{
	BackendJPA,
	BackendJDO,
	BackendHibernate,
	BackendMorphia,
	BackendRoo,
	BackendSpringDataMongo,
}

// DefaultOutputDirectory is the output path used when the configuration does
// not name one.
const DefaultOutputDirectory = "generated/querydsl"

// Model is the unified, format-agnostic representation of the orchestrator
// configuration. It is immutable once handed to the orchestrator.
type Model struct {
	// Backends maps a backend flag key to its enabled state. Absent keys are
	// treated as false.
	Backends map[string]bool

	// OutputDirectory is where generated sources are written. Loaders fill in
	// DefaultOutputDirectory when the configuration leaves it out.
	OutputDirectory string

	// Library is the dependency coordinate of the support library needed by
	// generated sources, e.g. "com.querydsl:querydsl-core:5.0.0". Empty means
	// no dependency registration.
	Library string

	// Generator is the external code-generator command to invoke. Empty means
	// invocations are logged instead of executed.
	Generator string

	// GeneratorArgs holds extra key/value arguments passed through to the
	// generator on every backend invocation.
	GeneratorArgs map[string]string
}

// NewModel returns a Model with defaults applied and no backends enabled.
func NewModel() *Model {
	return &Model{
		Backends:        make(map[string]bool),
		OutputDirectory: DefaultOutputDirectory,
	}
}

// Enabled returns the keys of all enabled backends: canonical backends first
// in their fixed order, then any non-canonical keys in lexical order. The
// result order is stable so graph construction is deterministic.
func (m *Model) Enabled() []string {
	var enabled []string
	canonical := make(map[string]bool, len(AllBackends))
	for _, key := range AllBackends {
		canonical[key] = true
		if m.Backends[key] {
			enabled = append(enabled, key)
		}
	}

	var extra []string
	for key, on := range m.Backends {
		if on && !canonical[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)

	return append(enabled, extra...)
}
