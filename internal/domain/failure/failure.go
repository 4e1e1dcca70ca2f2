// Where: internal/domain/failure/failure.go
// What: Error taxonomy for the fetch pipeline.
// Why: Let the CLI map any stage failure to a diagnostic and an exit code.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindExternalTool
	KindResponseFormat
	KindFilesystem
	KindPublish
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration error"
	case KindExternalTool:
		return "external tool error"
	case KindResponseFormat:
		return "response format error"
	case KindFilesystem:
		return "filesystem error"
	case KindPublish:
		return "publish error"
	default:
		return "error"
	}
}

// Error records which stage failed and why.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind and stage. A nil err yields nil.
func New(kind Kind, stage string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Stage: stage, Err: err}
}

func Configuration(stage string, err error) error {
	return New(KindConfiguration, stage, err)
}

func ExternalTool(stage string, err error) error {
	return New(KindExternalTool, stage, err)
}

func ResponseFormat(stage string, err error) error {
	return New(KindResponseFormat, stage, err)
}

func Filesystem(stage string, err error) error {
	return New(KindFilesystem, stage, err)
}

func Publish(stage string, err error) error {
	return New(KindPublish, stage, err)
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
