package renderer

import (
	"fmt"
	"os"

	"github.com/aland/go-weekend-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, keeping
// diagnostics off the image stream on stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewDefaultLogger creates a new stderr logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SilentLogger implements core.Logger by discarding all output, for tests
type SilentLogger struct{}

func (sl *SilentLogger) Printf(format string, args ...interface{}) {}
