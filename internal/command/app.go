// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/aserranoni/kda-module-fetcher/internal/infra/config"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/kda"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/publish"
	"github.com/aserranoni/kda-module-fetcher/internal/meta"
	"github.com/aserranoni/kda-module-fetcher/internal/version"
)

const envFileFlag = "--env-file"

// Dependencies holds all injected dependencies required for CLI command execution.
// Tests swap the runner and S3 factory to avoid real processes and network calls.
type Dependencies struct {
	Out    io.Writer
	ErrOut io.Writer
	Fetch  FetchDeps
}

// FetchDeps holds the collaborators of the fetch command.
type FetchDeps struct {
	Runner kda.CommandRunner
	NewS3  func(context.Context, publish.ClientOptions) (publish.S3API, error)
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile string          `name:"env-file" help:"Path to .env file (default: .env when present)"`
	Config  kong.ConfigFlag `name:"config" help:"Path to YAML config file (default: ${config_file} when present)"`
	Fetch   FetchCmd        `cmd:"" default:"withargs" help:"Fetch module sources into <output>/<namespace> (default)"`
	Version VersionCmd      `cmd:"" help:"Show version information"`
}

type (
	// FetchCmd defines the fetch command flags.
	FetchCmd struct {
		NetworkURL string        `name:"network-url" short:"n" env:"KDA_FETCH_NETWORK_URL" default:"${network_url}" help:"Chainweb node URL"`
		Chain      string        `name:"chain" env:"KDA_FETCH_CHAIN" default:"${chain}" help:"Chain id to query"`
		Namespace  string        `name:"namespace" env:"KDA_FETCH_NAMESPACE" default:"${namespace}" help:"Namespace whose modules are fetched"`
		Template   string        `name:"template" short:"t" env:"KDA_FETCH_TEMPLATE" default:"${template}" help:"Path to the query template"`
		Output     string        `name:"output" short:"o" env:"KDA_FETCH_OUTPUT" default:"." help:"Output root directory"`
		Kda        string        `name:"kda" env:"KDA_FETCH_KDA" default:"${tool}" help:"kda executable"`
		Timeout    time.Duration `name:"timeout" env:"KDA_FETCH_TIMEOUT" default:"0s" help:"Timeout per kda invocation (0 disables)"`
		WorkDir    string        `name:"work-dir" env:"KDA_FETCH_WORK_DIR" help:"Directory for temporary files (default: system temp dir)"`
		DryRun     bool          `name:"dry-run" help:"Query and parse, but write nothing"`
		Verbose    bool          `short:"v" help:"Verbose output"`
		NoEmoji    bool          `name:"no-emoji" help:"Disable emoji output"`
		S3Bucket   string        `name:"s3-bucket" env:"KDA_FETCH_S3_BUCKET" help:"Mirror written modules to this S3 bucket"`
		S3Prefix   string        `name:"s3-prefix" env:"KDA_FETCH_S3_PREFIX" help:"Key prefix inside the S3 bucket"`
		S3Region   string        `name:"s3-region" env:"KDA_FETCH_S3_REGION" help:"S3 region (default: AWS_REGION)"`
		S3Endpoint string        `name:"s3-endpoint" env:"KDA_FETCH_S3_ENDPOINT" help:"Custom endpoint for S3-compatible stores"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. The return value is the process
// exit code.
func Run(ctx context.Context, args []string, deps Dependencies) int {
	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	out := deps.Out

	// Env files must be loaded before parsing so env-tagged flags can see them.
	loadEnvFile(out, envFileArg(args))

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Fetch Pact module sources deployed under a Kadena namespace."),
		kong.Writers(deps.Out, deps.ErrOut),
		kong.Configuration(config.LoadYAML, meta.DefaultConfigFile),
		kong.Vars{
			"config_file": meta.DefaultConfigFile,
			"network_url": meta.DefaultNetworkURL,
			"chain":       meta.DefaultChain,
			"namespace":   meta.DefaultNamespace,
			"template":    meta.DefaultTemplate,
			"tool":        meta.DefaultTool,
		},
	)
	if err != nil {
		return exitWithError(out, err)
	}

	parsed, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	command := parsed.Command()
	if exitCode, handled := dispatchCommand(ctx, command, cli, deps); handled {
		return exitCode
	}

	consoleUI(out, true).Warn("unknown command")
	return exitCodeUsage
}

type commandHandler func(context.Context, CLI, Dependencies) int

func dispatchCommand(ctx context.Context, command string, cli CLI, deps Dependencies) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"fetch":   runFetch,
		"version": runVersion,
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(ctx, cli, deps), true
	}

	return exitCodeUsage, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ context.Context, _ CLI, deps Dependencies) int {
	consoleUI(deps.Out, true).Info(version.GetVersion())
	return exitCodeOK
}

// envFileArg returns the value of --env-file from raw args, or "".
func envFileArg(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return ""
		case arg == envFileFlag:
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		case strings.HasPrefix(arg, envFileFlag+"="):
			return strings.TrimPrefix(arg, envFileFlag+"=")
		}
	}
	return ""
}

// loadEnvFile loads path, or .env in the current directory when path is empty.
// Existing environment variables are never overridden.
func loadEnvFile(out io.Writer, path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			consoleUI(out, true).Warn(fmt.Sprintf("failed to load env file %s: %v", path, err))
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			consoleUI(out, true).Warn(fmt.Sprintf("failed to load .env: %v", err))
		}
	}
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		console := consoleUI(out, true)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--template"):
			console.Warn("`-t/--template` expects a value. Provide a path to a .ktpl file.")
			console.Info(fmt.Sprintf("Example: %s -t ./fetch-modules.ktpl", cmd))
			return exitCodeUsage
		case strings.Contains(msg, "--network-url"):
			console.Warn("`-n/--network-url` expects a value. Provide a Chainweb node URL.")
			console.Info(fmt.Sprintf("Example: %s -n %s", cmd, meta.DefaultNetworkURL))
			return exitCodeUsage
		case strings.Contains(msg, "--namespace"):
			console.Warn("`--namespace` expects a value. Provide a namespace name.")
			console.Info(fmt.Sprintf("Example: %s --namespace n_abc123", cmd))
			return exitCodeUsage
		case strings.Contains(msg, envFileFlag):
			console.Warn("`--env-file` expects a value. Provide a file path.")
			console.Info(fmt.Sprintf("Example: %s --env-file .env.testnet", cmd))
			return exitCodeUsage
		}
	}
	return exitWithError(out, err)
}
