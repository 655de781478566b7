package ports

// Terminal reports capabilities of the host terminal.
type Terminal interface {
	// ColorCapable reports whether the attached terminal can render ANSI color.
	ColorCapable() bool
}
