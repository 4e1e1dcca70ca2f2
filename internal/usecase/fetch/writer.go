package fetch

import (
	"fmt"
	"path/filepath"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/module"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/fileops"
)

// WriteModules writes each module to <root>/<namespace>/<name>.pact and returns
// the distinct paths written, in first-seen order. Later modules with the same
// name overwrite earlier ones. The first failure aborts the write.
func WriteModules(root, namespace string, modules []module.Module) ([]string, error) {
	dir := filepath.Join(root, namespace)
	if err := fileops.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}

	seen := map[string]struct{}{}
	paths := make([]string, 0, len(modules))
	for _, mod := range modules {
		path := mod.Path(root, namespace)
		if err := fileops.WriteFileAtomic(path, mod.Code, fileops.OutputMode); err != nil {
			return paths, fmt.Errorf("write module %s: %w", path, err)
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return paths, nil
}
