// Package testutil provides shared helpers for integration-style tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/gengridgo/internal/app"
	"github.com/vk/gengridgo/internal/catalog"
	"github.com/vk/gengridgo/internal/config"
	"github.com/vk/gengridgo/internal/hclcfg"
	"github.com/vk/gengridgo/internal/yamlcfg"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// RunAppTest writes the given config file content to a temp file, builds an
// App around it, and runs it. filename decides the loader (.hcl or .yaml).
// modules defaults to the compiled-in backend set when empty. Panics from
// config loading are converted into the returned error.
func RunAppTest(t *testing.T, filename, content string, appCfg app.Config, modules ...catalog.Module) *HarnessResult {
	t.Helper()

	path := filepath.Join(t.TempDir(), filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	appCfg.ConfigPath = path
	if appCfg.LogLevel == "" {
		appCfg.LogLevel = "debug"
	}

	cfg, err := app.NewConfig(appCfg)
	require.NoError(t, err)

	var loader config.Loader
	switch filepath.Ext(filename) {
	case ".hcl":
		loader = hclcfg.NewLoader()
	case ".yaml", ".yml":
		loader = yamlcfg.NewLoader()
	default:
		t.Fatalf("unsupported config extension: %s", filename)
	}

	out := &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("startup panic: %v", r)
			}
		}()
		result.App = app.NewApp(out, cfg, loader, modules...)
		result.Err = result.App.Run(context.Background(), cfg)
	}()

	result.Output = out.String()
	return result
}
