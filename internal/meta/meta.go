// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep binary identity, defaults, and file layout names in one place.
package meta

const (
	// Project Identity
	AppName   = "kda-fetch"
	EnvPrefix = "KDA_FETCH"

	// Defaults
	DefaultNetworkURL = "https://testnet.mindsend.xyz"
	DefaultChain      = "0"
	DefaultNamespace  = "n_9b079bebc8a0d688e4b2f4279a114148d6760edf"
	DefaultTemplate   = "fetch-modules.ktpl"
	DefaultTool       = "kda"
	DefaultConfigFile = "kda-fetch.yaml"

	// Workspace Layout
	WorkspacePattern = "kda-fetch-*"
	RenderedFile     = "substituted_config.ktpl"
	RequestFile      = "fetch_module_code.json"

	// Output Layout
	ModuleExt = ".pact"
)
