package cross

import (
	"errors"
	"testing"

	"github.com/opuskit/opusbuild/pkg/core"
)

func TestHostTriple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		linker string
		target string
		want   string
	}{
		{
			name:   "triple prefix before final segment",
			linker: "arm-linux-gnueabihf-gcc",
			target: "",
			want:   "arm-linux-gnueabihf",
		},
		{
			name:   "linker contains target verbatim",
			linker: "aarch64-unknown-linux-gnu-gcc",
			target: "aarch64-unknown-linux-gnu",
			want:   "aarch64-unknown-linux-gnu",
		},
		{
			name:   "absolute linker path",
			linker: "/opt/cross/bin/arm-linux-gnueabihf-gcc",
			target: "",
			want:   "arm-linux-gnueabihf",
		},
		{
			name:   "windows executable suffix",
			linker: "x86_64-w64-mingw32-gcc.exe",
			target: "",
			want:   "x86_64-w64-mingw32",
		},
		{
			name:   "surrounding whitespace",
			linker: " arm-linux-gnueabihf-gcc ",
			target: "",
			want:   "arm-linux-gnueabihf",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := HostTriple(tt.linker, tt.target)
			if err != nil {
				t.Fatalf("HostTriple(%q, %q) error = %v", tt.linker, tt.target, err)
			}
			if got != tt.want {
				t.Errorf("HostTriple(%q, %q) = %q, want %q", tt.linker, tt.target, got, tt.want)
			}
		})
	}
}

func TestHostTriple_MissingLinker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		linker string
	}{
		{name: "empty linker", linker: ""},
		{name: "whitespace only", linker: "   "},
		{name: "no hyphen carries no triple", linker: "gcc"},
		{name: "leading hyphen only", linker: "-gcc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := HostTriple(tt.linker, "aarch64-unknown-linux-gnu")
			if !errors.Is(err, core.ErrMissingLinker) {
				t.Errorf("HostTriple(%q) error = %v, want ErrMissingLinker", tt.linker, err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	target, err := Resolve("aarch64-unknown-linux-gnu", "aarch64-unknown-linux-gnu-gcc")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if target.Host != "aarch64-unknown-linux-gnu" {
		t.Errorf("Resolve().Host = %q, want %q", target.Host, "aarch64-unknown-linux-gnu")
	}
	if target.Linker != "aarch64-unknown-linux-gnu-gcc" {
		t.Errorf("Resolve().Linker = %q", target.Linker)
	}

	if _, err := Resolve("aarch64-unknown-linux-gnu", ""); !errors.Is(err, core.ErrMissingLinker) {
		t.Errorf("Resolve() without linker error = %v, want ErrMissingLinker", err)
	}
}
