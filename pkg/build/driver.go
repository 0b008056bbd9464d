// pkg/build/driver.go
package build

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/layout"
	"github.com/opuskit/opusbuild/pkg/platform"
	"github.com/opuskit/opusbuild/pkg/toolchain"
)

// Driver captures the shared lifecycle of the platform build systems:
// configure the fetched source, compile it, install the artifacts into the
// resolved prefix. Implementations add nothing beyond argument construction,
// so each can be unit-tested independently of the host OS.
type Driver interface {
	// Name returns the driver name (e.g. "autotools", "cmake")
	Name() string

	// Requirements returns the tools that must be available before any
	// step of this driver runs
	Requirements() []toolchain.Requirement

	// Configure runs the configure sequence in the source tree
	Configure(ctx context.Context) error

	// Compile builds the static library
	Compile(ctx context.Context) error

	// Install installs the artifacts into the prefix
	Install(ctx context.Context) error
}

// Options configures a build driver
type Options struct {
	Layout     layout.Layout
	Runner     execx.Runner
	Logger     *logrus.Logger
	Env        platform.Env
	HostTriple string // configure host argument, set only when cross-compiling
	Jobs       int    // compile parallelism (0 = logical CPU count)
}

// ForPlatform selects the driver for the detected target platform. Windows
// targets build with cmake and the platform make variant; everything else
// uses the autotools path.
func ForPlatform(p *platform.Platform, opts Options) Driver {
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	if p.TargetOS() == "windows" {
		return NewCMake(opts)
	}
	return NewAutotools(opts)
}

// Run executes the driver's linear step sequence, fail-fast, no retries:
// tool check, configure, compile, install.
func Run(ctx context.Context, d Driver, runner execx.Runner) error {
	if err := toolchain.Check(ctx, runner, d.Requirements()); err != nil {
		return err
	}
	if err := d.Configure(ctx); err != nil {
		return err
	}
	if err := d.Compile(ctx); err != nil {
		return err
	}
	return d.Install(ctx)
}

// runStep executes one build step and maps any failure to its step-specific
// fatal error, carrying captured stderr.
func runStep(ctx context.Context, r execx.Runner, op string, sentinel error, cmd execx.Command) error {
	res, err := r.Run(ctx, cmd)
	if err != nil {
		return &core.Error{Op: op, Tool: cmd.Name, Output: err.Error(), Err: sentinel}
	}
	if !res.Success() {
		return &core.Error{Op: op, Tool: cmd.Name, Output: strings.TrimSpace(res.Stderr), Err: sentinel}
	}
	return nil
}
