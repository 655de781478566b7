package invocation

import (
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

// StyleColorProperty is the user property that overrides the color decision.
const StyleColorProperty = "style.color"

// ResolveColor decides whether ANSI color output is enabled for this
// invocation. An explicit style.color=always or =never wins over everything
// else; the default "auto" disables color for batch mode or when output is
// redirected to a log file, and otherwise defers to the terminal capability
// signal. Any other explicit value fails with domain.ErrInvalidColorValue.
func ResolveColor(userProps *domain.Properties, batchMode bool, logFile string, terminal ports.Terminal) (bool, error) {
	switch v := userProps.GetDefault(StyleColorProperty, "auto"); v {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if batchMode || logFile != "" {
			return false, nil
		}
		return terminal.ColorCapable(), nil
	default:
		return false, zerr.With(domain.ErrInvalidColorValue, "value", v)
	}
}
