// pkg/build/autotools.go
package build

import (
	"context"
	"runtime"
	"strconv"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/toolchain"
)

// Autotools drives the bootstrap/configure/make/install sequence of the
// library's autotools build on unix targets.
type Autotools struct {
	opts Options
}

// NewAutotools creates the autotools driver
func NewAutotools(opts Options) *Autotools {
	return &Autotools{opts: opts}
}

// Name returns the driver name
func (d *Autotools) Name() string {
	return "autotools"
}

// Requirements returns the unix tool table
func (d *Autotools) Requirements() []toolchain.Requirement {
	return toolchain.UnixRequirements()
}

// ConfigureArgs builds the fixed configure argument set: static-only,
// position-independent, no docs, no extra programs, installed to the
// resolved prefix. The host triple is appended only when cross-compiling.
func (d *Autotools) ConfigureArgs() []string {
	args := []string{"--prefix=" + d.opts.Layout.Prefix()}
	if d.opts.HostTriple != "" {
		args = append(args, "--host="+d.opts.HostTriple)
	}
	args = append(args,
		"--enable-static",
		"--disable-shared",
		"--disable-doc",
		"--disable-extra-programs",
		"--with-pic",
	)
	return args
}

// Configure bootstraps the source tree and runs its configure script
func (d *Autotools) Configure(ctx context.Context) error {
	src := d.opts.Layout.SourceDir()

	d.opts.Logger.Debugf("build: running autogen.sh in %s", src)
	if err := runStep(ctx, d.opts.Runner, "configure", core.ErrConfigureFailed, execx.Command{
		Name: "./autogen.sh",
		Dir:  src,
	}); err != nil {
		return err
	}

	d.opts.Logger.Debugf("build: configuring with %v", d.ConfigureArgs())
	return runStep(ctx, d.opts.Runner, "configure", core.ErrConfigureFailed, execx.Command{
		Name: "./configure",
		Args: d.ConfigureArgs(),
		Dir:  src,
	})
}

// Compile runs make with a job count equal to the logical CPU count
func (d *Autotools) Compile(ctx context.Context) error {
	jobs := d.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	return runStep(ctx, d.opts.Runner, "compile", core.ErrCompileFailed, execx.Command{
		Name: "make",
		Args: []string{"-j", strconv.Itoa(jobs)},
		Dir:  d.opts.Layout.SourceDir(),
	})
}

// Install runs the make install target
func (d *Autotools) Install(ctx context.Context) error {
	return runStep(ctx, d.opts.Runner, "install", core.ErrInstallFailed, execx.Command{
		Name: "make",
		Args: []string{"install"},
		Dir:  d.opts.Layout.SourceDir(),
	})
}
