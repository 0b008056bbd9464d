// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrToolNotFound indicates a required external tool is missing from PATH
	ErrToolNotFound = errors.New("required tool not found")

	// ErrFetchFailed indicates the pinned source tree could not be retrieved
	ErrFetchFailed = errors.New("source fetch failed")

	// ErrConfigureFailed indicates the configure step exited non-zero
	ErrConfigureFailed = errors.New("configure failed")

	// ErrCompileFailed indicates the compile step exited non-zero
	ErrCompileFailed = errors.New("compile failed")

	// ErrInstallFailed indicates the install step exited non-zero
	ErrInstallFailed = errors.New("install failed")

	// ErrMissingLinker indicates the cross linker is not configured or unusable
	ErrMissingLinker = errors.New("missing cross-compile linker")

	// ErrBindingGenerationFailed indicates the binding generator reported failure
	ErrBindingGenerationFailed = errors.New("binding generation failed")

	// ErrArtifactNotFound indicates a probe miss. It drives fallback between
	// acquisition strategies and is never surfaced to the caller.
	ErrArtifactNotFound = errors.New("artifact not found")
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Tool   string // External tool involved, if applicable
	Output string // Captured stderr of the failing subprocess, if any
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Tool != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Tool)
	}
	if e.Output != "" {
		return fmt.Sprintf("%s: %v: %s", msg, e.Err, e.Output)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
