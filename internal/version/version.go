// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the module version or VCS revision baked in by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version string for the running binary.
// Tagged module builds report their module version; local builds report the
// short VCS revision with "(dirty)" appended for modified trees, and "dev"
// when neither is available.
func GetVersion() string {
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
