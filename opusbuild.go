// opusbuild.go
package opusbuild

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/opuskit/opusbuild/pkg/acquire"
	"github.com/opuskit/opusbuild/pkg/bindgen"
	"github.com/opuskit/opusbuild/pkg/build"
	"github.com/opuskit/opusbuild/pkg/core"
	"github.com/opuskit/opusbuild/pkg/cross"
	"github.com/opuskit/opusbuild/pkg/execx"
	"github.com/opuskit/opusbuild/pkg/fetch"
	"github.com/opuskit/opusbuild/pkg/layout"
	"github.com/opuskit/opusbuild/pkg/pkgconf"
	"github.com/opuskit/opusbuild/pkg/platform"
)

// Re-export configuration for convenience
type Config = core.Config

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Pipeline resolves, acquires and builds the pinned native library and
// produces its filtered binding surface. It runs once per build invocation,
// strictly sequentially; the only internal parallelism is delegated to the
// external compiler.
type Pipeline struct {
	config   *core.Config
	platform *platform.Platform
	layout   layout.Layout
	runner   execx.Runner
	logger   *logrus.Logger
}

// NewPipeline creates a pipeline from the configuration, detecting the
// platform once at startup.
func NewPipeline(cfg *core.Config) (*Pipeline, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	logger := core.NewLogger(cfg.Debug)

	plat, err := platform.Detect(cfg.Target, cfg.Host)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		config:   cfg,
		platform: plat,
		layout:   layout.New(cfg.OutputRoot),
		runner:   execx.NewSystem(logger),
		logger:   logger,
	}, nil
}

// Platform returns the detected platform
func (p *Pipeline) Platform() *platform.Platform {
	return p.platform
}

// Layout returns the resolved build layout
func (p *Pipeline) Layout() layout.Layout {
	return p.layout
}

// Acquire produces the final include/link paths through the acquisition
// strategy chain, together with the link directives the invoking build
// system must consume. Directives are non-empty only after a from-source
// build.
func (p *Pipeline) Acquire(ctx context.Context) (layout.Paths, []acquire.Directive, error) {
	return p.resolver().Resolve(ctx)
}

// Generate runs the full pipeline: acquire the library, then invoke the
// binding generator against the resolved include paths.
func (p *Pipeline) Generate(ctx context.Context) ([]acquire.Directive, error) {
	paths, directives, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	invoker := bindgen.NewInvoker(p.layout, p.runner, p.config.Generator, p.logger)
	if err := invoker.Generate(ctx, paths); err != nil {
		return nil, err
	}
	return directives, nil
}

// Fetch ensures the pinned source tree is available without building
func (p *Pipeline) Fetch(ctx context.Context) error {
	return p.fetcher().Ensure(ctx)
}

// ProbeSystem runs the system package-metadata probe only
func (p *Pipeline) ProbeSystem(ctx context.Context) (layout.Paths, error) {
	return pkgconf.New(p.runner, p.logger).Library(ctx, layout.LibName)
}

// ProbePrebuilt checks the local prefix for a previously built artifact
func (p *Pipeline) ProbePrebuilt() (layout.Paths, error) {
	resolver := &acquire.Resolver{Layout: p.layout, Env: p.platform.TargetEnv()}
	return resolver.ProbePrebuilt()
}

func (p *Pipeline) fetcher() *fetch.Fetcher {
	return fetch.New(p.layout, p.platform, p.config.GitURL, p.logger)
}

func (p *Pipeline) resolver() *acquire.Resolver {
	return &acquire.Resolver{
		Layout:  p.layout,
		Env:     p.platform.TargetEnv(),
		System:  pkgconf.New(p.runner, p.logger),
		Fetcher: p.fetcher(),
		Builder: &driverBuilder{pipeline: p},
		Logger:  p.logger,
	}
}

// driverBuilder adapts the pipeline to the resolver's Builder interface.
// The build driver is constructed only when the from-source strategy runs,
// so a cross linker is required only for an actual build.
type driverBuilder struct {
	pipeline *Pipeline
}

func (b *driverBuilder) Build(ctx context.Context) error {
	p := b.pipeline

	var hostTriple string
	if p.platform.CrossCompiling() {
		target, err := cross.Resolve(p.platform.Target, p.config.Linker)
		if err != nil {
			return err
		}
		hostTriple = target.Host
	}

	driver := build.ForPlatform(p.platform, build.Options{
		Layout:     p.layout,
		Runner:     p.runner,
		Logger:     p.logger,
		Env:        p.platform.TargetEnv(),
		HostTriple: hostTriple,
		Jobs:       p.config.Jobs,
	})
	return build.Run(ctx, driver, p.runner)
}
