// pkg/acquire/directive.go
package acquire

// Kind identifies a process-wide declarative directive emitted for the
// invoking build system.
type Kind string

const (
	// KindLinkSearch declares a native link-search path
	KindLinkSearch Kind = "link-search"
	// KindLinkLib declares a static library to link
	KindLinkLib Kind = "link-lib"
)

// Directive is one declaration for the invoking build system. Directives
// are returned as plain data and rendered at a single point by the caller,
// never printed from inside the pipeline.
type Directive struct {
	Kind  Kind
	Value string
}

// String renders the directive in the consumer's build-script form
func (d Directive) String() string {
	switch d.Kind {
	case KindLinkSearch:
		return "cargo:rustc-link-search=native=" + d.Value
	case KindLinkLib:
		return "cargo:rustc-link-lib=static=" + d.Value
	default:
		return string(d.Kind) + "=" + d.Value
	}
}
