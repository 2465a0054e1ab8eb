package core

// Logger interface for renderer progress reporting
type Logger interface {
	Printf(format string, args ...interface{})
}
