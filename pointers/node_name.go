package pointers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Node names are 1-3 lowercase letters optionally followed by digits.
var nodeNamePattern = regexp.MustCompile(`^[a-z]{1,3}[0-9]*$`)

// IsNodeName reports whether token is a short variable name rather than a
// concept or constant.
func IsNodeName(token string) bool {
	return nodeNamePattern.MatchString(token)
}

// isZPrefixVariable reports whether v has the z-prefix shape ("z" followed
// by digits) that carries its own pointer id.
func isZPrefixVariable(v string) bool {
	if len(v) <= 1 || v[0] != 'z' {
		return false
	}
	for i := 1; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	return true
}

// zPrefixToPointer reuses a z-prefix variable's digits as its pointer id.
func zPrefixToPointer(v string) string {
	return fmt.Sprintf("<pointer:%s>", v[1:])
}

// TokenCount counts the whitespace-separated tokens of s after replacing
// every non-alphanumeric rune with a space.
func TokenCount(s string) int {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)
	return len(strings.Fields(mapped))
}
