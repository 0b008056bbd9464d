// pkg/layout/layout.go
package layout

import (
	"path/filepath"

	"github.com/opuskit/opusbuild/pkg/platform"
)

const (
	// Version is the pinned library release. It determines the fetch tag,
	// the source directory name and the installed artifact name; it is not
	// selectable at runtime.
	Version = "1.3.1"

	// LibName is the link name of the library
	LibName = "opus"
)

// FetchTag returns the upstream release tag for the pinned version
func FetchTag() string {
	return "v" + Version
}

// Layout derives every filesystem location of a build from the output root.
// All paths are pure functions of the root and the pinned version.
type Layout struct {
	root string
}

// New creates a layout rooted at outputRoot. The root is made absolute so
// install prefixes survive the working-directory changes of build steps.
func New(outputRoot string) Layout {
	abs, err := filepath.Abs(outputRoot)
	if err != nil {
		abs = outputRoot
	}
	return Layout{root: abs}
}

// Root returns the output root directory
func (l Layout) Root() string {
	return l.root
}

// SourceDir returns the pinned source directory, <root>/opus-<version>
func (l Layout) SourceDir() string {
	return filepath.Join(l.root, LibName+"-"+Version)
}

// Prefix returns the install/search prefix, <root>/dist
func (l Layout) Prefix() string {
	return filepath.Join(l.root, "dist")
}

// LibDir returns the static library directory under the prefix
func (l Layout) LibDir() string {
	return filepath.Join(l.Prefix(), "lib")
}

// IncludeDir returns the public header directory under the prefix
func (l Layout) IncludeDir() string {
	return filepath.Join(l.Prefix(), "include", LibName)
}

// WrapperPath returns the synthesized translation-unit header location
func (l Layout) WrapperPath() string {
	return filepath.Join(l.root, "wrapper.h")
}

// BindingsPath returns the generated bindings artifact location
func (l Layout) BindingsPath() string {
	return filepath.Join(l.root, "bindings.rs")
}

// StaticLibName returns the installed artifact filename for the target
// environment: a GNU-style archive or an MSVC import-style archive.
func StaticLibName(env platform.Env) string {
	if env == platform.EnvMSVC {
		return LibName + ".lib"
	}
	return "lib" + LibName + ".a"
}

// ArtifactPath returns the expected installed static library location
func (l Layout) ArtifactPath(env platform.Env) string {
	return filepath.Join(l.LibDir(), StaticLibName(env))
}

// Paths is the final include/link path set produced by exactly one
// acquisition strategy. Immutable once constructed.
type Paths struct {
	IncludePaths []string
	LinkPaths    []string
}

// DefaultPaths returns the fixed-layout paths shared by the prebuilt and
// from-source strategies, which both install into the same prefix.
func (l Layout) DefaultPaths() Paths {
	return Paths{
		IncludePaths: []string{l.IncludeDir()},
		LinkPaths:    []string{l.LibDir()},
	}
}
