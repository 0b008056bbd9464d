// pkg/pkgconf/probe.go
package pkgconf

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/layout"
)

// Probe queries the system package-metadata registry through pkg-config.
// A hit is the zero-cost acquisition path: no tool checks, no build.
type Probe struct {
	runner execx.Runner
	logger *logrus.Logger
}

// New creates a pkg-config probe
func New(runner execx.Runner, logger *logrus.Logger) *Probe {
	if logger == nil {
		logger = logrus.New()
	}
	return &Probe{runner: runner, logger: logger}
}

// Library looks up name in the system registry and returns its reported
// include/link paths. Any miss or pkg-config failure maps to
// core.ErrArtifactNotFound so the caller falls through to the next strategy.
func (p *Probe) Library(ctx context.Context, name string) (layout.Paths, error) {
	cflags, err := p.runner.Run(ctx, execx.Command{
		Name: "pkg-config",
		Args: []string{"--cflags-only-I", name},
	})
	if err != nil || !cflags.Success() {
		p.logger.Debugf("pkg-config: no system %s", name)
		return layout.Paths{}, &core.Error{Op: "probe", Tool: "pkg-config", Err: core.ErrArtifactNotFound}
	}

	libs, err := p.runner.Run(ctx, execx.Command{
		Name: "pkg-config",
		Args: []string{"--libs-only-L", name},
	})
	if err != nil || !libs.Success() {
		return layout.Paths{}, &core.Error{Op: "probe", Tool: "pkg-config", Err: core.ErrArtifactNotFound}
	}

	paths := layout.Paths{
		IncludePaths: parseFlagPaths(cflags.Stdout, "-I"),
		LinkPaths:    parseFlagPaths(libs.Stdout, "-L"),
	}
	p.logger.Debugf("pkg-config: system %s at %v", name, paths.IncludePaths)
	return paths, nil
}

// parseFlagPaths extracts the directory operands of repeated -I/-L flags
// from pkg-config output.
func parseFlagPaths(out, flag string) []string {
	var paths []string
	for _, tok := range strings.Fields(out) {
		if strings.HasPrefix(tok, flag) && len(tok) > len(flag) {
			paths = append(paths, tok[len(flag):])
		}
	}
	return paths
}
