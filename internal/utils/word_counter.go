package utils

import (
	"strings"
)

// CountWords counts whitespace-delimited non-empty tokens.
// Empty content yields 0. This is the single word-count definition for
// the whole application; stored word counts are always derived from it.
func CountWords(content string) int {
	return len(strings.Fields(content))
}
