// Where: internal/usecase/fetch/workspace.go
// What: Per-run temporary workspace for intermediate documents.
// Why: Give every run unique temp paths and a single idempotent cleanup.
package fetch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aserranoni/kda-module-fetcher/internal/infra/fileops"
	"github.com/aserranoni/kda-module-fetcher/internal/meta"
)

// Workspace holds the rendered template and compiled request for one run.
type Workspace struct {
	Dir          string
	RenderedPath string
	RequestPath  string
}

// NewWorkspace creates a unique directory under base (the system temp dir when
// base is empty).
func NewWorkspace(base string) (*Workspace, error) {
	base = strings.TrimSpace(base)
	if base != "" {
		if err := fileops.EnsureDir(base); err != nil {
			return nil, err
		}
	}
	dir, err := os.MkdirTemp(base, meta.WorkspacePattern)
	if err != nil {
		return nil, err
	}
	return &Workspace{
		Dir:          dir,
		RenderedPath: filepath.Join(dir, meta.RenderedFile),
		RequestPath:  filepath.Join(dir, meta.RequestFile),
	}, nil
}

// Cleanup removes both intermediate files and the workspace directory.
// Missing paths are ignored, so Cleanup may run any number of times.
func (w *Workspace) Cleanup() error {
	if w == nil {
		return nil
	}
	return errors.Join(
		fileops.RemoveFile(w.RenderedPath),
		fileops.RemoveFile(w.RequestPath),
		fileops.RemoveDir(w.Dir),
	)
}
