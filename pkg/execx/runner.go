// pkg/execx/runner.go
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Command describes a single external process invocation
type Command struct {
	Name string   // Executable name or path
	Args []string // Arguments, without the executable name
	Dir  string   // Working directory ("" = inherit)
}

// Result carries the aggregate outcome of a finished process
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited zero
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes external commands. The whole pipeline talks to toolchains
// through this interface so it can be driven by a fake in tests.
type Runner interface {
	// Run executes cmd to completion and returns its captured outcome.
	// A returned error means the process could not be started at all;
	// a non-zero exit is reported through Result, not the error.
	Run(ctx context.Context, cmd Command) (Result, error)
}

// System is the Runner used in production, backed by os/exec
type System struct {
	logger *logrus.Logger
}

// NewSystem creates a system runner
func NewSystem(logger *logrus.Logger) *System {
	if logger == nil {
		logger = logrus.New()
	}
	return &System{logger: logger}
}

// Run executes the command, capturing both output streams
func (s *System) Run(ctx context.Context, cmd Command) (Result, error) {
	s.logger.Debugf("exec: %s %v (dir=%s)", cmd.Name, cmd.Args, cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			s.logger.Debugf("exec: %s exited %d", cmd.Name, res.ExitCode)
			return res, nil
		}
		return res, err
	}

	return res, nil
}
