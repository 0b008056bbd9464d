package platform

import (
	"testing"
)

func TestTargetOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		triple string
		want   string
	}{
		{"x86_64-unknown-linux-gnu", "linux"},
		{"aarch64-unknown-linux-gnu", "linux"},
		{"arm-linux-gnueabihf", "linux"},
		{"x86_64-apple-darwin", "darwin"},
		{"x86_64-pc-windows-msvc", "windows"},
		{"x86_64-pc-windows-gnu", "windows"},
	}

	for _, tt := range tests {
		p := &Platform{Target: tt.triple}
		if got := p.TargetOS(); got != tt.want {
			t.Errorf("TargetOS(%q) = %q, want %q", tt.triple, got, tt.want)
		}
	}
}

func TestTargetEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		triple string
		want   Env
	}{
		{"x86_64-pc-windows-msvc", EnvMSVC},
		{"x86_64-pc-windows-gnu", EnvGNU},
		{"x86_64-unknown-linux-gnu", EnvGNU},
		{"x86_64-apple-darwin", EnvGNU},
	}

	for _, tt := range tests {
		p := &Platform{Target: tt.triple}
		if got := p.TargetEnv(); got != tt.want {
			t.Errorf("TargetEnv(%q) = %q, want %q", tt.triple, got, tt.want)
		}
	}
}

func TestCrossCompiling(t *testing.T) {
	t.Parallel()

	same := &Platform{Host: "x86_64-unknown-linux-gnu", Target: "x86_64-unknown-linux-gnu"}
	if same.CrossCompiling() {
		t.Error("CrossCompiling() = true for matching triples")
	}

	cross := &Platform{Host: "x86_64-unknown-linux-gnu", Target: "aarch64-unknown-linux-gnu"}
	if !cross.CrossCompiling() {
		t.Error("CrossCompiling() = false for differing triples")
	}
}

func TestHostTriple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos   string
		goarch string
		want   string
	}{
		{"linux", "amd64", "x86_64-unknown-linux-gnu"},
		{"linux", "arm64", "aarch64-unknown-linux-gnu"},
		{"linux", "arm", "armv7-unknown-linux-gnueabihf"},
		{"darwin", "arm64", "aarch64-apple-darwin"},
		{"windows", "amd64", "x86_64-pc-windows-gnu"},
	}

	for _, tt := range tests {
		got, err := hostTriple(tt.goos, tt.goarch)
		if err != nil {
			t.Errorf("hostTriple(%s, %s) error = %v", tt.goos, tt.goarch, err)
			continue
		}
		if got != tt.want {
			t.Errorf("hostTriple(%s, %s) = %q, want %q", tt.goos, tt.goarch, got, tt.want)
		}
	}

	if _, err := hostTriple("plan9", "amd64"); err == nil {
		t.Error("hostTriple(plan9) expected error")
	}
}

func TestDetect_Defaults(t *testing.T) {
	t.Parallel()

	p, err := Detect("", "")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if p.Host == "" {
		t.Error("Detect() host triple is empty")
	}
	if p.Target != p.Host {
		t.Errorf("Detect() target = %q, want host %q", p.Target, p.Host)
	}
	if p.CrossCompiling() {
		t.Error("Detect() with defaults reports cross-compiling")
	}
}

func TestDetect_ExplicitTarget(t *testing.T) {
	t.Parallel()

	p, err := Detect("aarch64-unknown-linux-gnu", "x86_64-unknown-linux-gnu")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !p.CrossCompiling() {
		t.Error("Detect() with differing triples does not report cross-compiling")
	}
}
