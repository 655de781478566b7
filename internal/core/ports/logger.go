// Package ports declares the interfaces between the core and its adapters.
package ports

import "io"

// Logger defines the interface for logging.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetOutput redirects all subsequent log output, e.g. to a build log file.
	SetOutput(w io.Writer)

	// SetColorEnabled switches ANSI color rendering on or off for subsequent output.
	SetColorEnabled(enabled bool)
}
