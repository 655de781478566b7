package invocation

import (
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/ports"
)

// ResolveProperties applies -D style definitions to props in the order they
// appeared on the merged command line, so a later definition overwrites an
// earlier one for the same key. Every resolved value is also published to the
// process-wide store when one is given.
func ResolveProperties(defs []string, props *domain.Properties, store ports.PropertyStore) {
	for _, def := range defs {
		key, value := SplitDefinition(def)
		props.Set(key, value)
		if store != nil {
			store.Set(key, value)
		}
	}
}

// SplitDefinition splits a property definition at the first '='. Everything
// after it, including further '=' characters and spaces, is the value,
// verbatim. A definition without '=' maps the whole string to "true".
func SplitDefinition(def string) (key, value string) {
	if i := strings.Index(def, "="); i >= 0 {
		return def[:i], def[i+1:]
	}
	return def, "true"
}
