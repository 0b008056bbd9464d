// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os/exec"
	"runtime"
	"slices"
	"strings"
)

// Env represents the C runtime environment of the build target
type Env string

const (
	// EnvGNU selects GNU-flavored toolchains (gcc/mingw, GNU make)
	EnvGNU Env = "gnu"
	// EnvMSVC selects the MSVC toolchain family (cl, nmake)
	EnvMSVC Env = "msvc"
)

// Platform represents the detected system platform
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Host      string   // Host triple
	Target    string   // Target triple (equals Host unless cross-compiling)
	Available []string // Available build toolchains
	Preferred string   // Preferred build toolchain
}

// Detect detects the current platform and available build toolchains.
// Empty target/host fall back to the triple derived from the running system.
func Detect(target, host string) (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	if host == "" {
		derived, err := hostTriple(p.OS, p.Arch)
		if err != nil {
			return nil, err
		}
		host = derived
	}
	p.Host = host

	if target == "" {
		target = host
	}
	p.Target = target

	// Check which build toolchains are available
	if commandExists("autoreconf") && commandExists("make") {
		p.Available = append(p.Available, "autotools")
	}

	if commandExists("cmake") {
		p.Available = append(p.Available, "cmake")
	}

	// Determine preferred toolchain based on the target OS
	switch p.TargetOS() {
	case "windows":
		if slices.Contains(p.Available, "cmake") {
			p.Preferred = "cmake"
		}
	case "linux", "darwin":
		if slices.Contains(p.Available, "autotools") {
			p.Preferred = "autotools"
		} else if slices.Contains(p.Available, "cmake") {
			p.Preferred = "cmake"
		}
	default:
		return nil, fmt.Errorf("unsupported target platform: %s", p.Target)
	}

	if p.Preferred == "" && len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	return p, nil
}

// CrossCompiling reports whether target and host triples differ
func (p *Platform) CrossCompiling() bool {
	return p.Target != p.Host
}

// TargetOS derives the operating system from the target triple
func (p *Platform) TargetOS() string {
	switch {
	case strings.Contains(p.Target, "windows"):
		return "windows"
	case strings.Contains(p.Target, "apple") || strings.Contains(p.Target, "darwin"):
		return "darwin"
	case strings.Contains(p.Target, "linux"):
		return "linux"
	default:
		return p.OS
	}
}

// TargetEnv derives the C environment from the target triple. Only Windows
// targets distinguish GNU from MSVC; everything else is GNU-flavored.
func (p *Platform) TargetEnv() Env {
	if p.TargetOS() == "windows" && !strings.Contains(p.Target, "gnu") {
		return EnvMSVC
	}
	return EnvGNU
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s host=%s target=%s (available: %v, preferred: %s)",
		p.OS, p.Arch, p.Host, p.Target, p.Available, p.Preferred)
}

// commandExists checks if a command is available in PATH
func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// hostTriple maps the running system to a conventional target triple
func hostTriple(goos, goarch string) (string, error) {
	switch goos {
	case "linux":
		switch goarch {
		case "amd64":
			return "x86_64-unknown-linux-gnu", nil
		case "arm64":
			return "aarch64-unknown-linux-gnu", nil
		case "386":
			return "i686-unknown-linux-gnu", nil
		case "arm":
			return "armv7-unknown-linux-gnueabihf", nil
		}
	case "darwin":
		switch goarch {
		case "amd64":
			return "x86_64-apple-darwin", nil
		case "arm64":
			return "aarch64-apple-darwin", nil
		}
	case "windows":
		switch goarch {
		case "amd64":
			return "x86_64-pc-windows-gnu", nil
		case "386":
			return "i686-pc-windows-gnu", nil
		case "arm64":
			return "aarch64-pc-windows-msvc", nil
		}
	}
	return "", fmt.Errorf("unsupported platform: %s/%s", goos, goarch)
}
