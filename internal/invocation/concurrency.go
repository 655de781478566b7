package invocation

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/zerr"
)

// threadSpecRe accepts a plain integer or a decimal followed by a literal 'C'.
// The decimal needs at least one digit and may not end in a bare point.
var threadSpecRe = regexp.MustCompile(`^\d*\.?\d+C?$`)

// DegreeOfConcurrency parses a thread-count spec into a positive thread count.
// A plain integer is used as-is. The form <decimal>C multiplies the decimal by
// processors, truncating toward zero; a product below 1 is clamped to 1, so
// even "0.0001C" yields one thread. Anything else fails with
// domain.ErrInvalidThreadCount.
func DegreeOfConcurrency(spec string, processors int) (int, error) {
	if !threadSpecRe.MatchString(spec) {
		return 0, zerr.With(domain.ErrInvalidThreadCount, "value", spec)
	}

	if strings.HasSuffix(spec, "C") {
		coefficient, err := strconv.ParseFloat(strings.TrimSuffix(spec, "C"), 64)
		if err != nil || coefficient <= 0 {
			return 0, zerr.With(domain.ErrInvalidThreadCount, "value", spec)
		}
		threads := int(coefficient * float64(processors))
		if threads < 1 {
			return 1, nil
		}
		return threads, nil
	}

	threads, err := strconv.Atoi(spec)
	if err != nil || threads < 1 {
		return 0, zerr.With(domain.ErrInvalidThreadCount, "value", spec)
	}
	return threads, nil
}
