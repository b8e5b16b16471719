package app

import (
	"fmt"
	"strings"

	"github.com/vk/gengridgo/internal/cliout"
	"github.com/vk/gengridgo/internal/memhost"
)

// renderPlan writes the registered task graph, source roots, and compile
// dependencies to the app's output writer.
func (a *App) renderPlan(host *memhost.Host) {
	table := cliout.NewTable([]string{"TASK", "DEPENDS ON", "DESCRIPTION"})
	for _, name := range host.TaskNames() {
		def, _ := host.Task(name)
		deps := "-"
		if preds := host.Predecessors(name); len(preds) > 0 {
			deps = strings.Join(preds, ", ")
		}
		table.AddRow([]string{name, deps, def.Description})
	}
	table.Render(a.outW)

	if roots := host.SourceRoots(); len(roots) > 0 {
		fmt.Fprintf(a.outW, "\nsource roots: %s\n", strings.Join(roots, ", "))
	}
	if deps := host.CompileDependencies(); len(deps) > 0 {
		fmt.Fprintf(a.outW, "compile dependencies: %s\n", strings.Join(deps, ", "))
	}
}
