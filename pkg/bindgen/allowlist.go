// pkg/bindgen/allowlist.go
package bindgen

import "regexp"

// Allowlist restricts the generated symbol surface to the library's public
// naming prefixes. Functions, types and constants each carry their own
// pattern set, compiled once at construction.
type Allowlist struct {
	Functions []*regexp.Regexp
	Types     []*regexp.Regexp
	Constants []*regexp.Regexp
}

// Compiled once; a malformed pattern fails at init, never during a match.
var (
	functionPatterns = []*regexp.Regexp{regexp.MustCompile("^opus_.*")}
	typePatterns     = []*regexp.Regexp{
		regexp.MustCompile("^opus_.*"),
		regexp.MustCompile("^OPUS_.*"),
		regexp.MustCompile("^Opus.*"),
	}
	constantPatterns = []*regexp.Regexp{regexp.MustCompile("^OPUS_.*")}
)

// Default returns the library's public symbol patterns: lowercase-prefixed
// functions, all three public type spellings, uppercase constants.
func Default() Allowlist {
	return Allowlist{
		Functions: functionPatterns,
		Types:     typePatterns,
		Constants: constantPatterns,
	}
}

// AdmitsFunction reports whether a function name passes the allowlist
func (a Allowlist) AdmitsFunction(name string) bool {
	return matchAny(a.Functions, name)
}

// AdmitsType reports whether a type name passes the allowlist
func (a Allowlist) AdmitsType(name string) bool {
	return matchAny(a.Types, name)
}

// AdmitsConstant reports whether a constant name passes the allowlist
func (a Allowlist) AdmitsConstant(name string) bool {
	return matchAny(a.Constants, name)
}

func matchAny(patterns []*regexp.Regexp, name string) bool {
	for _, p := range patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}
