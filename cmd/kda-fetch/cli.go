// Where: cmd/kda-fetch/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/aserranoni/kda-module-fetcher/internal/command"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/kda"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/publish"
)

// buildDependencies constructs the runtime dependencies required by the CLI:
// the real process runner for kda and the AWS-backed S3 factory.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		Fetch: command.FetchDeps{
			Runner: kda.ExecRunner{},
			NewS3:  publish.NewS3,
		},
	}
}
