package invocation

import (
	"strings"

	"go.trai.ch/keel/internal/core/domain"
)

// ParseActivation classifies every comma-separated selector token in list and
// records it on act. Per token, an optional polarity sigil ('+' for active,
// '!' or '-' for inactive) and an optional '?' marking the selector as
// non-fatal when absent are stripped from the front, in either order. The
// remainder is the identifier, taken verbatim. Tokens that are empty, or
// empty after sigil removal, are skipped.
//
// There is no reject path: any remaining identifier, however unusual, lands
// in one of the four buckets. Reclassifying an identifier seen earlier moves
// it, so the last occurrence wins.
func ParseActivation(list string, act *domain.Activation) {
	for _, token := range strings.Split(list, ",") {
		active, optional := true, false
		sawPolarity := false

		id := token
		for id != "" {
			if id[0] == '?' && !optional {
				optional = true
				id = id[1:]
				continue
			}
			if (id[0] == '+' || id[0] == '-' || id[0] == '!') && !sawPolarity {
				sawPolarity = true
				active = id[0] == '+'
				id = id[1:]
				continue
			}
			break
		}
		if id == "" {
			continue
		}

		act.Classify(id, classify(active, optional))
	}
}

func classify(active, optional bool) domain.ActivationClass {
	switch {
	case active && optional:
		return domain.OptionalActive
	case active:
		return domain.RequiredActive
	case optional:
		return domain.OptionalInactive
	default:
		return domain.RequiredInactive
	}
}
