// Where: cmd/kda-fetch/main.go
// What: CLI entrypoint.
// Why: Execute kda-fetch commands with configured dependencies.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aserranoni/kda-module-fetcher/internal/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := command.Run(ctx, os.Args[1:], buildDependencies())
	stop()
	os.Exit(code)
}
