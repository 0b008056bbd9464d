// pkg/build/cmake.go
package build

import (
	"context"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/platform"
	"github.com/opuskit/opusbuild/pkg/toolchain"
)

// CMake drives the cmake/(n)make build on Windows targets. The generator
// and make variant follow the target environment: GNU toolchains use GNU
// make, everything else goes through nmake.
type CMake struct {
	opts Options
}

// NewCMake creates the cmake driver
func NewCMake(opts Options) *CMake {
	return &CMake{opts: opts}
}

// Name returns the driver name
func (d *CMake) Name() string {
	return "cmake"
}

// Requirements returns the windows tool table for the target environment
func (d *CMake) Requirements() []toolchain.Requirement {
	return toolchain.WindowsRequirements(d.opts.Env)
}

// Generator returns the cmake generator matching the toolchain family
func (d *CMake) Generator() string {
	if d.opts.Env == platform.EnvGNU {
		return "Unix Makefiles"
	}
	return "NMake Makefiles"
}

// MakeProgram returns the make variant matching the toolchain family
func (d *CMake) MakeProgram() string {
	if d.opts.Env == platform.EnvGNU {
		return "make"
	}
	return "nmake"
}

// ConfigureArgs builds the cmake generation arguments: release build type,
// the resolved install prefix as destination, stack protection disabled.
func (d *CMake) ConfigureArgs() []string {
	return []string{
		"-G", d.Generator(),
		"-DCMAKE_BUILD_TYPE=Release",
		"-DCMAKE_INSTALL_PREFIX=" + d.opts.Layout.Prefix(),
		"-DOPUS_STACK_PROTECTOR=OFF",
		".",
	}
}

// Configure generates the build files in the source tree
func (d *CMake) Configure(ctx context.Context) error {
	d.opts.Logger.Debugf("build: cmake -G %q", d.Generator())
	return runStep(ctx, d.opts.Runner, "configure", core.ErrConfigureFailed, execx.Command{
		Name: "cmake",
		Args: d.ConfigureArgs(),
		Dir:  d.opts.Layout.SourceDir(),
	})
}

// Compile builds with the selected make variant
func (d *CMake) Compile(ctx context.Context) error {
	return runStep(ctx, d.opts.Runner, "compile", core.ErrCompileFailed, execx.Command{
		Name: d.MakeProgram(),
		Dir:  d.opts.Layout.SourceDir(),
	})
}

// Install installs with the selected make variant
func (d *CMake) Install(ctx context.Context) error {
	return runStep(ctx, d.opts.Runner, "install", core.ErrInstallFailed, execx.Command{
		Name: d.MakeProgram(),
		Args: []string{"install"},
		Dir:  d.opts.Layout.SourceDir(),
	})
}
