package orchestrator

import "errors"

// ErrUnknownBackend means a backend flag is enabled but no template for it
// is registered in the catalog. The apply aborts before any host mutation.
var ErrUnknownBackend = errors.New("unknown backend")

// ErrInvalidOutputPath means the configured output directory path is empty
// or cannot be resolved. The apply aborts before any host mutation.
var ErrInvalidOutputPath = errors.New("invalid output path")
