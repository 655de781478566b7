package invocation

import "strings"

// Merge produces the final argument vector handed to the option parser:
// persisted argument-file tokens first, live command-line arguments second.
// With the parser's last-wins rule for single-valued options this makes the
// argument file supply defaults that the live invocation overrides, while
// multi-valued options accumulate occurrences from both sources in order.
func Merge(configArgs, liveArgs []string) []string {
	merged := make([]string, 0, len(configArgs)+len(liveArgs))
	merged = append(merged, configArgs...)
	merged = append(merged, CleanArgs(liveArgs)...)
	return merged
}

// CleanArgs strips literal double quotes that survived shell processing from
// live arguments. An argument both starting and ending with '"' loses the
// quotes; an argument starting with an unmatched '"' opens a run that absorbs
// following arguments (joined with single spaces) until one ends with '"'.
// A new opening quote, or the end of the vector, flushes an unterminated run
// as-is. Argument-file tokens never pass through here, their quotes are
// handled by the tokenizer.
func CleanArgs(args []string) []string {
	cleaned := make([]string, 0, len(args))
	var run []string

	for _, arg := range args {
		if strings.HasPrefix(arg, `"`) {
			if run != nil {
				cleaned = append(cleaned, strings.Join(run, " "))
				run = nil
			}
			if len(arg) > 1 && strings.HasSuffix(arg, `"`) {
				cleaned = append(cleaned, arg[1:len(arg)-1])
				continue
			}
			run = []string{arg[1:]}
			continue
		}

		if run != nil {
			run = append(run, arg)
			if strings.HasSuffix(arg, `"`) {
				joined := strings.Join(run, " ")
				cleaned = append(cleaned, strings.TrimSuffix(joined, `"`))
				run = nil
			}
			continue
		}

		cleaned = append(cleaned, arg)
	}

	if run != nil {
		cleaned = append(cleaned, strings.Join(run, " "))
	}

	return cleaned
}
