package build

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/layout"
	"github.com/opuskit/opusbuild/pkg/platform"
)

func quietOpts(t *testing.T, runner execx.Runner) Options {
	t.Helper()
	return Options{
		Layout: layout.New(t.TempDir()),
		Runner: runner,
		Logger: core.NewLogger(false),
		Env:    platform.EnvGNU,
	}
}

func TestAutotools_ConfigureArgs(t *testing.T) {
	t.Parallel()

	opts := quietOpts(t, &execx.Fake{})
	d := NewAutotools(opts)
	args := d.ConfigureArgs()

	if !strings.HasPrefix(args[0], "--prefix=") {
		t.Errorf("first configure arg = %q, want --prefix=...", args[0])
	}
	for _, want := range []string{"--enable-static", "--disable-shared", "--disable-doc", "--disable-extra-programs", "--with-pic"} {
		if !containsArg(args, want) {
			t.Errorf("configure args missing %q: %v", want, args)
		}
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "--host=") {
			t.Errorf("configure args include %q without cross-compiling", arg)
		}
	}
}

func TestAutotools_ConfigureArgs_Cross(t *testing.T) {
	t.Parallel()

	opts := quietOpts(t, &execx.Fake{})
	opts.HostTriple = "arm-linux-gnueabihf"
	args := NewAutotools(opts).ConfigureArgs()

	if !containsArg(args, "--host=arm-linux-gnueabihf") {
		t.Errorf("configure args missing host triple: %v", args)
	}
}

func TestAutotools_RunSequence(t *testing.T) {
	t.Parallel()

	runner := &execx.Fake{}
	opts := quietOpts(t, runner)
	d := NewAutotools(opts)

	if err := Run(context.Background(), d, runner); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Tool probes, bootstrap, configure, compile, install, in that order
	want := []string{"make", "autoreconf", "libtool", "./autogen.sh", "./configure", "make", "make"}
	names := runner.Names()
	if len(names) != len(want) {
		t.Fatalf("Run() executed %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, names[i], want[i])
		}
	}

	compile := runner.Calls[5]
	if len(compile.Args) != 2 || compile.Args[0] != "-j" {
		t.Errorf("compile args = %v, want -j <jobs>", compile.Args)
	}
	if compile.Dir != opts.Layout.SourceDir() {
		t.Errorf("compile dir = %q, want source dir %q", compile.Dir, opts.Layout.SourceDir())
	}

	install := runner.Calls[6]
	if len(install.Args) != 1 || install.Args[0] != "install" {
		t.Errorf("install args = %v, want [install]", install.Args)
	}
}

func TestAutotools_JobsOverride(t *testing.T) {
	t.Parallel()

	runner := &execx.Fake{}
	opts := quietOpts(t, runner)
	opts.Jobs = 3
	d := NewAutotools(opts)

	if err := d.Compile(context.Background()); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if args := runner.Calls[0].Args; args[1] != "3" {
		t.Errorf("compile jobs = %q, want 3", args[1])
	}
}

func TestRun_ToolCheckBeforeConfigure(t *testing.T) {
	t.Parallel()

	runner := &execx.Fake{Handler: func(cmd execx.Command) (execx.Result, error) {
		if cmd.Name == "libtool" {
			return execx.Result{ExitCode: 127}, nil
		}
		return execx.Result{}, nil
	}}
	d := NewAutotools(quietOpts(t, runner))

	err := Run(context.Background(), d, runner)
	if !errors.Is(err, core.ErrToolNotFound) {
		t.Fatalf("Run() error = %v, want ErrToolNotFound", err)
	}

	for _, c := range runner.Calls {
		if c.Name == "./configure" || c.Name == "./autogen.sh" {
			t.Errorf("configure step %q executed despite missing tool", c.Name)
		}
	}
}

func TestRun_CompileFailureStopsPipeline(t *testing.T) {
	t.Parallel()

	runner := &execx.Fake{Handler: func(cmd execx.Command) (execx.Result, error) {
		if cmd.Name == "make" && len(cmd.Args) > 0 && cmd.Args[0] == "-j" {
			return execx.Result{ExitCode: 2, Stderr: "opus_encoder.c: error"}, nil
		}
		return execx.Result{}, nil
	}}
	d := NewAutotools(quietOpts(t, runner))

	err := Run(context.Background(), d, runner)
	if !errors.Is(err, core.ErrCompileFailed) {
		t.Fatalf("Run() error = %v, want ErrCompileFailed", err)
	}
	if !strings.Contains(err.Error(), "opus_encoder.c") {
		t.Errorf("Run() error %q does not carry captured stderr", err)
	}

	last := runner.Calls[len(runner.Calls)-1]
	if len(last.Args) == 1 && last.Args[0] == "install" {
		t.Error("install executed after compile failure")
	}
}

func TestRun_ConfigureFailure(t *testing.T) {
	t.Parallel()

	runner := &execx.Fake{Handler: func(cmd execx.Command) (execx.Result, error) {
		if cmd.Name == "./configure" {
			return execx.Result{ExitCode: 1, Stderr: "missing libtool macros"}, nil
		}
		return execx.Result{}, nil
	}}
	d := NewAutotools(quietOpts(t, runner))

	err := Run(context.Background(), d, runner)
	if !errors.Is(err, core.ErrConfigureFailed) {
		t.Fatalf("Run() error = %v, want ErrConfigureFailed", err)
	}
}

func containsArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}
