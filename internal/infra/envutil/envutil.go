// Package envutil provides helper functions for KDA_FETCH_* environment variables.
package envutil

import (
	"os"
	"strings"

	"github.com/aserranoni/kda-module-fetcher/internal/meta"
)

// HostEnvKey constructs an environment variable name from the binary prefix.
// Example: HostEnvKey("S3_ACCESS_KEY") returns "KDA_FETCH_S3_ACCESS_KEY".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + strings.TrimPrefix(suffix, "_")
}

// GetHostEnv returns the trimmed value of the prefixed variable.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}
