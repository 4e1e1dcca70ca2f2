// Where: internal/command/error_helpers.go
// What: Shared CLI error reporting and exit codes.
// Why: Map failure kinds onto stable process exit codes.
package command

import (
	"io"

	"github.com/aserranoni/kda-module-fetcher/internal/domain/failure"
	"github.com/aserranoni/kda-module-fetcher/internal/infra/ui"
)

const (
	exitCodeOK = iota
	exitCodeUsage
	exitCodeConfiguration
	exitCodeExternalTool
	exitCodeResponseFormat
	exitCodeFilesystem
	exitCodePublish
)

// exitWithError prints an error message to the output writer and returns
// the exit code for its failure kind.
func exitWithError(out io.Writer, err error) int {
	return reportError(consoleUI(out, true), err)
}

func reportError(console ui.UserInterface, err error) int {
	console.Error(err.Error())
	return exitCode(err)
}

// exitCode maps a failure kind to a process exit code. Unclassified errors
// (including kong parse errors) exit with 1.
func exitCode(err error) int {
	if err == nil {
		return exitCodeOK
	}
	switch failure.KindOf(err) {
	case failure.KindConfiguration:
		return exitCodeConfiguration
	case failure.KindExternalTool:
		return exitCodeExternalTool
	case failure.KindResponseFormat:
		return exitCodeResponseFormat
	case failure.KindFilesystem:
		return exitCodeFilesystem
	case failure.KindPublish:
		return exitCodePublish
	default:
		return exitCodeUsage
	}
}
