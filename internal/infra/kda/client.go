// Where: internal/infra/kda/client.go
// What: Adapter over the `kda` command line tool.
// Why: Expose compile and query as narrow calls the workflow can fake.
package kda

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Client runs `kda gen` and `kda local`.
type Client struct {
	Runner  CommandRunner
	Binary  string
	Dir     string
	Timeout time.Duration
	Logger  *log.Logger
}

// Compile runs `kda gen -t <templatePath> -o <outputPath>` and checks the
// request document exists afterwards.
func (c Client) Compile(ctx context.Context, templatePath, outputPath string) error {
	if _, err := c.run(ctx, "gen", "-t", templatePath, "-o", outputPath); err != nil {
		return err
	}
	info, err := os.Stat(outputPath)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRequestNotCreated, outputPath)
	}
	return nil
}

// Query runs `kda local <requestPath> -n <networkURL>` and returns stdout
// unparsed; empty output is left for the response parser to reject.
func (c Client) Query(ctx context.Context, requestPath, networkURL string) ([]byte, error) {
	return c.run(ctx, "local", requestPath, "-n", networkURL)
}

func (c Client) run(ctx context.Context, args ...string) ([]byte, error) {
	if c.Runner == nil {
		return nil, errCommandRunnerNil
	}
	binary := strings.TrimSpace(c.Binary)
	if binary == "" {
		return nil, errBinaryRequired
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	started := time.Now()
	c.logger().Debug("running tool", "cmd", binary+" "+strings.Join(args, " "), "dir", c.Dir)
	output, err := c.Runner.RunOutput(ctx, c.Dir, binary, args...)
	c.logger().Debug("tool finished", "cmd", binary+" "+args[0], "elapsed", time.Since(started), "bytes", len(output))
	return output, err
}

func (c Client) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}
