package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given path and translates it into
	// the format-agnostic model, with defaults applied.
	Load(ctx context.Context, path string) (*Model, error)
}
