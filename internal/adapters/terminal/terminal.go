// Package terminal reports host terminal capabilities.
package terminal

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/keel/internal/ui/output"
	"golang.org/x/term"
)

// Detector implements ports.Terminal against the process's real stderr.
type Detector struct{}

// New creates a new Detector.
func New() *Detector {
	return &Detector{}
}

// ColorCapable reports whether stderr is a terminal that can render ANSI
// color. NO_COLOR and non-TTY output both disable color.
func (d *Detector) ColorCapable() bool {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return false
	}
	return output.ColorProfile() != termenv.Ascii
}
