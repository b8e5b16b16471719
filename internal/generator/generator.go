// Package generator abstracts the external code generators behind a Runner
// interface. The orchestrator treats generators as opaque executables: a
// backend task's action is one Run call, nothing more.
package generator

import (
	"context"
	"fmt"
	"os/exec"
	"sort"

	"github.com/vk/gengridgo/internal/ctxlog"
)

// Invocation carries everything a generator needs for one backend run.
type Invocation struct {
	// Processor is the fully qualified annotation processor to run.
	Processor string

	// OutputDir is where generated sources are written.
	OutputDir string

	// Args holds extra key/value arguments from the configuration.
	Args map[string]string
}

// CommandArgs renders the invocation as generator command-line arguments.
// Extra args are emitted in lexical key order so invocations are stable.
func (inv Invocation) CommandArgs() []string {
	args := []string{"-processor", inv.Processor, "-d", inv.OutputDir}

	keys := make([]string, 0, len(inv.Args))
	for key := range inv.Args {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		args = append(args, fmt.Sprintf("-A%s=%s", key, inv.Args[key]))
	}

	return args
}

// Runner executes generator invocations.
type Runner interface {
	Run(ctx context.Context, inv Invocation) error
}

// ExecRunner invokes a generator command as an external process.
type ExecRunner struct {
	// Command is the generator executable to invoke.
	Command string
}

// Run executes the generator and surfaces its combined output on failure.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	logger := ctxlog.FromContext(ctx)
	args := inv.CommandArgs()
	logger.Info("Invoking generator.", "command", r.Command, "processor", inv.Processor)

	cmd := exec.CommandContext(ctx, r.Command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("generator %s failed: %w: %s", r.Command, err, out)
	}

	logger.Debug("Generator finished.", "processor", inv.Processor)
	return nil
}

// LogRunner records invocations instead of executing them. It backs dry
// runs and configurations with no generator command.
type LogRunner struct{}

// Run logs the invocation that would have been executed.
func (r *LogRunner) Run(ctx context.Context, inv Invocation) error {
	ctxlog.FromContext(ctx).Info("No generator configured, skipping invocation.",
		"processor", inv.Processor, "output_dir", inv.OutputDir)
	return nil
}
