// pkg/cross/triple.go
package cross

import (
	"path/filepath"
	"strings"

	"github.com/opuskit/opusbuild/pkg/core"
)

// Target describes a cross-compilation setup. It is derived once per build
// and only when the target triple differs from the host triple.
type Target struct {
	Target string // Target triple
	Host   string // Host argument passed to configure
	Linker string // Cross linker path the host triple was derived from
}

// Resolve derives the cross-compilation target from the configured linker.
// An absent linker is fatal.
func Resolve(target, linker string) (*Target, error) {
	host, err := HostTriple(linker, target)
	if err != nil {
		return nil, err
	}
	return &Target{Target: target, Host: host, Linker: linker}, nil
}

// HostTriple infers the configure host triple from the cross linker
// filename. If the filename contains the target triple verbatim the target
// triple is used directly; otherwise the filename up to its last
// hyphen-delimited segment is taken as the triple, assuming conventional
// <triple>-gcc toolchain naming. A filename without any hyphen carries no
// triple at all and is rejected as a missing linker.
func HostTriple(linker, target string) (string, error) {
	if strings.TrimSpace(linker) == "" {
		return "", &core.Error{Op: "cross", Err: core.ErrMissingLinker}
	}

	name := filepath.Base(strings.TrimSpace(linker))
	name = strings.TrimSuffix(name, ".exe")

	if target != "" && strings.Contains(name, target) {
		return target, nil
	}

	idx := strings.LastIndex(name, "-")
	if idx <= 0 {
		return "", &core.Error{Op: "cross", Tool: name, Err: core.ErrMissingLinker}
	}
	return name[:idx], nil
}
