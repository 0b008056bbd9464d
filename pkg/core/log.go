// pkg/core/log.go
package core

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the pipeline logger. Unless debug is enabled the logger
// is fully discarded so non-interactive invocations stay quiet.
func NewLogger(debug bool) *logrus.Logger {
	logger := logrus.New()
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetOutput(io.Discard)
	}
	return logger
}
