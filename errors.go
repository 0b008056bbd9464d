// errors.go
package opusbuild

import "github.com/opuskit/opusbuild/pkg/core"

// Error wraps an error with operation, tool and captured-output context
type Error = core.Error

// Re-export the error taxonomy for convenience. Everything except
// ErrArtifactNotFound aborts the pipeline; ErrArtifactNotFound only drives
// fallback between acquisition strategies and never reaches the caller.
var (
	ErrToolNotFound            = core.ErrToolNotFound
	ErrFetchFailed             = core.ErrFetchFailed
	ErrConfigureFailed         = core.ErrConfigureFailed
	ErrCompileFailed           = core.ErrCompileFailed
	ErrInstallFailed           = core.ErrInstallFailed
	ErrMissingLinker           = core.ErrMissingLinker
	ErrBindingGenerationFailed = core.ErrBindingGenerationFailed
	ErrArtifactNotFound        = core.ErrArtifactNotFound
)
