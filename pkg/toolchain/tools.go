// pkg/toolchain/tools.go
package toolchain

import (
	"context"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/platform"
)

// Requirement describes one external executable a build step depends on
type Requirement struct {
	Name      string   // Executable name
	ProbeArgs []string // Arguments for the availability probe
	Step      string   // Build step that requires the tool
}

// UnixRequirements returns the tool table for the autotools driver
func UnixRequirements() []Requirement {
	return []Requirement{
		{Name: "make", ProbeArgs: []string{"--version"}, Step: "configure"},
		{Name: "autoreconf", ProbeArgs: []string{"--version"}, Step: "configure"},
		{Name: "libtool", ProbeArgs: []string{"--version"}, Step: "configure"},
	}
}

// WindowsRequirements returns the tool table for the cmake driver. The make
// variant follows the target environment: GNU make for gnu targets, nmake
// for everything else.
func WindowsRequirements(env platform.Env) []Requirement {
	make := Requirement{Name: "make", ProbeArgs: []string{"--version"}, Step: "configure"}
	if env != platform.EnvGNU {
		make = Requirement{Name: "nmake", ProbeArgs: []string{"/?"}, Step: "configure"}
	}
	return []Requirement{
		make,
		{Name: "cmake", ProbeArgs: []string{"--version"}, Step: "configure"},
	}
}

// Available probes a single tool. Any execution error counts as unavailable,
// never as a crash.
func Available(ctx context.Context, runner execx.Runner, req Requirement) bool {
	res, err := runner.Run(ctx, execx.Command{Name: req.Name, Args: req.ProbeArgs})
	if err != nil {
		return false
	}
	return res.Success()
}

// Check verifies every requirement before the build driver runs. The first
// missing tool aborts with an error naming it.
func Check(ctx context.Context, runner execx.Runner, reqs []Requirement) error {
	for _, req := range reqs {
		if !Available(ctx, runner, req) {
			return &core.Error{Op: "toolcheck", Tool: req.Name, Err: core.ErrToolNotFound}
		}
	}
	return nil
}
