package kda

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Wait blocks on inherited pipes after the process is killed.
const waitDelay = 2 * time.Second

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	// RunOutput runs name with args in dir and returns its stdout.
	// Failures are reported as *ToolError carrying the captured stderr.
	RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
type ExecRunner struct{}

func (r ExecRunner) RunOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), newToolError(ctx, name, args, stderr.String(), err)
	}
	return stdout.Bytes(), nil
}

// ToolError describes a failed external command.
type ToolError struct {
	Command  string
	ExitCode int
	Stderr   string
	NotFound bool
	TimedOut bool
	Canceled bool
	Err      error
}

func newToolError(ctx context.Context, name string, args []string, stderr string, err error) *ToolError {
	toolErr := &ToolError{
		Command:  strings.TrimSpace(name + " " + strings.Join(args, " ")),
		ExitCode: -1,
		Stderr:   strings.TrimSpace(stderr),
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		toolErr.ExitCode = exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		toolErr.NotFound = true
	}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		toolErr.TimedOut = true
	case errors.Is(ctx.Err(), context.Canceled):
		toolErr.Canceled = true
	}
	return toolErr
}

func (e *ToolError) Error() string {
	switch {
	case e.NotFound:
		return fmt.Sprintf("%s: executable not found: %v", e.Command, e.Err)
	case e.TimedOut:
		return fmt.Sprintf("%s: timed out", e.Command)
	case e.Canceled:
		return fmt.Sprintf("%s: canceled", e.Command)
	case e.Stderr != "":
		return fmt.Sprintf("%s: exit status %d\n%s", e.Command, e.ExitCode, e.Stderr)
	default:
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
