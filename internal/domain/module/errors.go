// Where: internal/domain/module/errors.go
// What: Shared error definitions for response parsing.
// Why: Keep response format failures matchable with errors.Is.
package module

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyResponse    = errors.New("response document is empty")
	ErrUnexpectedShape  = errors.New("unexpected response shape")
	ErrNetworkNotFound  = errors.New("network url not found in response")
	ErrMissingField     = errors.New("missing expected field")
	ErrInvalidModule    = errors.New("invalid module entry")
	ErrUnsafeModuleName = errors.New("module name is not a safe file name")
)

// QueryFailureError is returned when the node reports a failed local call.
type QueryFailureError struct {
	Message string
}

func (e *QueryFailureError) Error() string {
	if e.Message == "" {
		return "query reported failure"
	}
	return fmt.Sprintf("query reported failure: %s", e.Message)
}
