// Where: internal/domain/module/module.go
// What: Module value type and output file naming.
// Why: Map a deployed module to its <root>/<namespace>/<name>.pact artifact.
package module

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aserranoni/kda-module-fetcher/internal/meta"
)

// Module is one deployed contract module returned by the query.
type Module struct {
	// QualifiedName is the name as reported, e.g. "n_abc.coin".
	QualifiedName string
	// Namespace is the prefix before the last "." (empty for root modules).
	Namespace string
	// Name is the bare module name used for the output file.
	Name string
	Code string
	Hash string
}

// SplitName separates a qualified module name at its last ".".
func SplitName(qualified string) (namespace, name string) {
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		return qualified[:idx], qualified[idx+1:]
	}
	return "", qualified
}

// ValidateName rejects names that cannot be used as a single file name.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty name", ErrUnsafeModuleName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrUnsafeModuleName, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q", ErrUnsafeModuleName, name)
	}
	return nil
}

// FileName returns the output file name for the module.
func (m Module) FileName() string {
	return m.Name + meta.ModuleExt
}

// Path returns <root>/<namespace>/<name>.pact.
func (m Module) Path(root, namespace string) string {
	return filepath.Join(root, namespace, m.FileName())
}

// Duplicates returns bare names that appear more than once, in first-seen order.
func Duplicates(modules []Module) []string {
	counts := map[string]int{}
	var order []string
	for _, m := range modules {
		if counts[m.Name] == 0 {
			order = append(order, m.Name)
		}
		counts[m.Name]++
	}
	var out []string
	for _, name := range order {
		if counts[name] > 1 {
			out = append(out, name)
		}
	}
	return out
}
