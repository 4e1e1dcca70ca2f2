// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface usage and the fetch summary layout.
package command

import (
	"fmt"
	"io"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/module"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/ui"
	"github.com/aserranoni/kda-module-fetcher/internal/usecase/fetch"
)

func consoleUI(out io.Writer, emoji bool) ui.UserInterface {
	return ui.NewConsoleUI(out, emoji)
}

func printFetchSummary(console ui.UserInterface, req fetch.Request, result fetch.Result) {
	console.Block("🔗", "Fetch", []ui.KeyValue{
		{Key: "Network", Value: req.NetworkURL},
		{Key: "Chain", Value: req.Chain},
		{Key: "Namespace", Value: req.Namespace},
		{Key: "Output", Value: result.OutputDir},
	})

	if len(result.Modules) == 0 {
		console.Warn(fmt.Sprintf("No modules found in namespace %s", req.Namespace))
		return
	}

	if req.DryRun {
		console.List("📝", "Dry run, would write", plannedPaths(req, result.Modules))
		console.Success(fmt.Sprintf("Found %d module(s); nothing written", len(result.Modules)))
		return
	}

	console.List("📦", "Written modules", result.Written)
	if len(result.Published) > 0 {
		console.List("☁️", "Published", result.Published)
	}
	console.Success(fmt.Sprintf("Fetched %d module(s) into %s", len(result.Written), result.OutputDir))
}

func plannedPaths(req fetch.Request, modules []module.Module) []string {
	root := req.OutputRoot
	if root == "" {
		root = "."
	}
	seen := map[string]struct{}{}
	paths := make([]string, 0, len(modules))
	for _, mod := range modules {
		path := mod.Path(root, req.Namespace)
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return paths
}
