// Where: internal/command/fetch.go
// What: fetch command adapter.
// Why: Translate CLI flags into a workflow request and wire its collaborators.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/failure"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/kda"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/logging"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/publish"
	"github.com/aserranoni/kda-module-fetcher/internal/usecase/fetch"
)

var errS3FactoryNil = errors.New("s3 client factory is not configured")

func runFetch(ctx context.Context, cli CLI, deps Dependencies) int {
	cmd := cli.Fetch
	console := consoleUI(deps.Out, !cmd.NoEmoji)
	logger := logging.New(deps.ErrOut, cmd.Verbose)

	client := kda.Client{
		Runner:  deps.Fetch.Runner,
		Binary:  cmd.Kda,
		Timeout: cmd.Timeout,
		Logger:  logger,
	}
	workflow := fetch.Workflow{
		Compiler: client,
		Querier:  client,
		Logger:   logger,
	}

	if bucket := strings.TrimSpace(cmd.S3Bucket); bucket != "" && !cmd.DryRun {
		if deps.Fetch.NewS3 == nil {
			return reportError(console, failure.Configuration(fetch.StagePublish, errS3FactoryNil))
		}
		s3Client, err := deps.Fetch.NewS3(ctx, publish.ClientOptions{
			Region:   cmd.S3Region,
			Endpoint: cmd.S3Endpoint,
		})
		if err != nil {
			return reportError(console, failure.Configuration(fetch.StagePublish, fmt.Errorf("configure s3 client: %w", err)))
		}
		workflow.Publisher = publish.S3Publisher{
			Client: s3Client,
			Bucket: bucket,
			Prefix: cmd.S3Prefix,
		}
	}

	req := fetch.Request{
		NetworkURL:   cmd.NetworkURL,
		Chain:        cmd.Chain,
		Namespace:    cmd.Namespace,
		TemplatePath: cmd.Template,
		OutputRoot:   cmd.Output,
		WorkDir:      cmd.WorkDir,
		DryRun:       cmd.DryRun,
	}
	result, err := workflow.Run(ctx, req)
	if err != nil {
		return reportError(console, err)
	}

	printFetchSummary(console, req, result)
	return exitCodeOK
}
