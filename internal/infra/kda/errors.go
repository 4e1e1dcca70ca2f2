// Where: internal/infra/kda/errors.go
// What: Shared error definitions for kda tool infra.
// Why: Ensure consistent error wrapping without dynamic error creation.
package kda

import "errors"

var (
	errCommandRunnerNil  = errors.New("command runner is nil")
	errBinaryRequired    = errors.New("kda binary is required")
	ErrRequestNotCreated = errors.New("request document was not created")
)
