package config

import (
	"errors"
	"io/fs"
	"strings"

	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/zerr"
)

// LoadArgFile reads .keel/keel.config under root and tokenizes its contents.
// A missing file yields no tokens and no error; a read failure or a
// tokenization failure fails the invocation.
func (l *Loader) LoadArgFile(root string) ([]string, error) {
	path := domain.ArgFilePath(root)

	data, err := l.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArgFileReadFailed.Error()), "path", path)
	}

	tokens, err := Tokenize(string(data))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return tokens, nil
}

// Tokenize splits argument-file contents into tokens using shell-like rules:
// tokens are whitespace-separated, a double-quoted span is one token with the
// quotes stripped and interior whitespace preserved, and quotes attach to the
// token they open in ('-Dlabel="a b"' is one token '-Dlabel=a b'). Lines whose
// first non-blank character is '#' are comments. A quote left open at the end
// of a line fails with domain.ErrArgFileCorrupt.
func Tokenize(contents string) ([]string, error) {
	var tokens []string

	for i, line := range strings.Split(contents, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		lineTokens, err := tokenizeLine(line)
		if err != nil {
			return nil, zerr.With(err, "line", i+1)
		}
		tokens = append(tokens, lineTokens...)
	}

	return tokens, nil
}

func tokenizeLine(line string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inToken, inQuotes := false, false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			inToken = true
		case !inQuotes && (r == ' ' || r == '\t' || r == '\r'):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if inQuotes {
		return nil, zerr.With(domain.ErrArgFileCorrupt, "reason", "unterminated quote")
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
