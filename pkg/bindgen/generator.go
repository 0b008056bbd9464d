// pkg/bindgen/generator.go
package bindgen

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/layout"
)

// Request parameterizes one binding-generation run: the synthesized
// translation-unit header, one include-search flag per include path, and
// the public-symbol allowlist.
type Request struct {
	Header      string
	IncludeDirs []string
	Allow       Allowlist
	Output      string
}

// Args renders the request as the generator's command line. Clang include
// flags follow the `--` separator, one per include path.
func (r Request) Args() []string {
	args := []string{
		r.Header,
		"-o", r.Output,
		"--use-core",
		"--default-macro-constant-type", "signed",
		"--default-enum-style", "rust",
	}
	for _, p := range r.Allow.Functions {
		args = append(args, "--allowlist-function", p.String())
	}
	for _, p := range r.Allow.Types {
		args = append(args, "--allowlist-type", p.String())
	}
	for _, p := range r.Allow.Constants {
		args = append(args, "--allowlist-var", p.String())
	}
	args = append(args, "--")
	for _, dir := range r.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	return args
}

// Invoker synthesizes the wrapper header and submits the generation request
// to the external generator, persisting the artifact once per build.
type Invoker struct {
	layout  layout.Layout
	runner  execx.Runner
	command string
	logger  *logrus.Logger
}

// NewInvoker creates a binding generation invoker. An empty command falls
// back to the default generator executable.
func NewInvoker(l layout.Layout, runner execx.Runner, command string, logger *logrus.Logger) *Invoker {
	if command == "" {
		command = core.DefaultGenerator
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Invoker{layout: l, runner: runner, command: command, logger: logger}
}

// Generate writes the umbrella wrapper header, runs the generator with the
// final include paths and the public-symbol allowlist, and leaves the
// artifact at the fixed bindings location.
func (i *Invoker) Generate(ctx context.Context, paths layout.Paths) error {
	if err := os.MkdirAll(i.layout.Root(), 0755); err != nil {
		return &core.Error{Op: "bindgen", Output: err.Error(), Err: core.ErrBindingGenerationFailed}
	}

	wrapper := i.layout.WrapperPath()
	if err := os.WriteFile(wrapper, []byte("#include <opus.h>\n"), 0644); err != nil {
		return &core.Error{Op: "bindgen", Output: err.Error(), Err: core.ErrBindingGenerationFailed}
	}

	req := Request{
		Header:      wrapper,
		IncludeDirs: paths.IncludePaths,
		Allow:       Default(),
		Output:      i.layout.BindingsPath(),
	}

	i.logger.Debugf("bindgen: %s %v", i.command, req.Args())
	res, err := i.runner.Run(ctx, execx.Command{Name: i.command, Args: req.Args()})
	if err != nil {
		return &core.Error{Op: "bindgen", Tool: i.command, Output: err.Error(), Err: core.ErrBindingGenerationFailed}
	}
	if !res.Success() {
		return &core.Error{Op: "bindgen", Tool: i.command, Output: strings.TrimSpace(res.Stderr), Err: core.ErrBindingGenerationFailed}
	}
	return nil
}
