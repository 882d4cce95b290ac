// Package parser turns a line of the wire command grammar into a parsed
// command (requestv1.NewOrder / Amend / Cancel / Match). It owns no book
// state and never mutates anything; a line that fails to parse is
// reported to the caller and otherwise ignored, matching the original
// reference implementation's silent-reject-on-parse-failure behavior.
package parser

import "strings"

// Tokenize splits a command line on commas, trims surrounding whitespace
// from each token, and strips a trailing carriage return. Empty tokens
// are preserved (a partial Amend field is an empty token, not a missing
// one).
func Tokenize(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
