// pkg/acquire/resolver.go
package acquire

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/layout"
	"github.com/opuskit/opusbuild/pkg/platform"
)

// SystemProbe queries system package metadata for an installed library
type SystemProbe interface {
	Library(ctx context.Context, name string) (layout.Paths, error)
}

// Fetcher makes the pinned source tree available
type Fetcher interface {
	Ensure(ctx context.Context) error
}

// Builder runs the platform build driver against the fetched source
type Builder interface {
	Build(ctx context.Context) error
}

// Resolver produces the final Paths value through a priority-ordered
// fallback chain with at most one side-effecting build: system-installed
// library, previously built artifact, build from source. Exactly one
// strategy supplies the result.
type Resolver struct {
	Layout  layout.Layout
	Env     platform.Env
	System  SystemProbe
	Fetcher Fetcher
	Builder Builder
	Logger  *logrus.Logger
}

// Resolve runs the strategy chain. Directives are non-empty only for the
// from-source strategy, which emits exactly one link-search path and one
// static-link declaration for the freshly installed artifact.
func (r *Resolver) Resolve(ctx context.Context) (layout.Paths, []Directive, error) {
	logger := r.Logger
	if logger == nil {
		logger = logrus.New()
	}

	// 1. System-installed library, reported paths used directly
	if r.System != nil {
		if paths, err := r.System.Library(ctx, layout.LibName); err == nil {
			logger.Debugf("acquire: using system %s", layout.LibName)
			return paths, nil, nil
		}
	}

	// 2. Artifact left behind by a previous build in the fixed prefix
	if paths, err := r.ProbePrebuilt(); err == nil {
		logger.Debugf("acquire: reusing prebuilt %s", r.Layout.ArtifactPath(r.Env))
		return paths, nil, nil
	}

	// 3. Fetch and build from source
	logger.Debugf("acquire: building %s %s from source", layout.LibName, layout.Version)
	if err := os.MkdirAll(r.Layout.Root(), 0755); err != nil {
		return layout.Paths{}, nil, fmt.Errorf("creating build directory: %w", err)
	}
	if err := r.Fetcher.Ensure(ctx); err != nil {
		return layout.Paths{}, nil, err
	}
	if err := r.Builder.Build(ctx); err != nil {
		return layout.Paths{}, nil, err
	}

	directives := []Directive{
		{Kind: KindLinkSearch, Value: r.Layout.LibDir()},
		{Kind: KindLinkLib, Value: layout.LibName},
	}
	return r.Layout.DefaultPaths(), directives, nil
}

// ProbePrebuilt checks the fixed prefix for the platform's expected static
// artifact. A miss is core.ErrArtifactNotFound, the control-flow signal for
// falling through to the next strategy.
func (r *Resolver) ProbePrebuilt() (layout.Paths, error) {
	if _, err := os.Stat(r.Layout.ArtifactPath(r.Env)); err != nil {
		return layout.Paths{}, &core.Error{Op: "probe", Err: core.ErrArtifactNotFound}
	}
	return r.Layout.DefaultPaths(), nil
}
