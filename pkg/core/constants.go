// pkg/core/constants.go
package core

const (
	// DefaultGitURL is the canonical upstream location of the library source
	DefaultGitURL = "https://github.com/xiph/opus"

	// DefaultGenerator is the binding generator executable invoked after
	// acquisition
	DefaultGenerator = "bindgen"
)
