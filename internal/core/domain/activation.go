package domain

import "sort"

// ActivationClass identifies which selector bucket an identifier belongs to.
type ActivationClass int

const (
	// RequiredActive marks an identifier that must be included.
	RequiredActive ActivationClass = iota
	// OptionalActive marks an identifier that is included when it exists.
	OptionalActive
	// RequiredInactive marks an identifier that must be excluded.
	RequiredInactive
	// OptionalInactive marks an identifier that is excluded when it exists.
	OptionalInactive
)

// Activation records which profiles or projects an invocation force-includes
// or force-excludes. An identifier belongs to at most one bucket at a time;
// reclassifying an identifier moves it, so the last classification wins.
//
// The zero value is ready to use.
type Activation struct {
	classes map[string]ActivationClass
}

// Classify assigns id to the given bucket, removing it from any bucket it was
// previously assigned to.
func (a *Activation) Classify(id string, class ActivationClass) {
	if a.classes == nil {
		a.classes = make(map[string]ActivationClass)
	}
	a.classes[id] = class
}

// IsEmpty reports whether no identifier has been classified.
func (a *Activation) IsEmpty() bool {
	return len(a.classes) == 0
}

// RequiredActiveIDs returns the identifiers that must be included.
func (a *Activation) RequiredActiveIDs() []string {
	return a.ids(RequiredActive)
}

// OptionalActiveIDs returns the identifiers included when present.
func (a *Activation) OptionalActiveIDs() []string {
	return a.ids(OptionalActive)
}

// RequiredInactiveIDs returns the identifiers that must be excluded.
func (a *Activation) RequiredInactiveIDs() []string {
	return a.ids(RequiredInactive)
}

// OptionalInactiveIDs returns the identifiers excluded when present.
func (a *Activation) OptionalInactiveIDs() []string {
	return a.ids(OptionalInactive)
}

func (a *Activation) ids(class ActivationClass) []string {
	var out []string
	for id, c := range a.classes {
		if c == class {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
