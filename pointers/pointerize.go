package pointers

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const (
	lowercaseChars  = "abcdefghijklmnopqrstuvwxyz"
	nodeNameChars   = "abcdefghijklmnopqrstuvwxyz-0123456789"
	conceptChars    = "abcdefghijklmnopqrstuvwxyz-0123456789"
	relationChars   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-0123456789"
	valueBeginChars = "abcdefghijklmnopqrstuvwxyz+-0123456789"
	nonLiteralChars = "abcdefghijklmnopqrstuvwxyz-0123456789."
)

// Pointerize converts bracketed text with named variables into the
// canonical pointer token stream: every variable occurrence becomes a
// <pointer:N> token allocated in first-seen order, parentheses become
// standalone tokens, the concept slash is elided, and tokens are separated
// by single spaces.
//
// It is a single-pass character machine with no backtracking. A node name
// declared twice is an error unless the earlier occurrence was a bare
// forward reference still waiting for its declaration; a bare reference
// never declared by end of input is an error. Any violation fails hard
// with a wrapped sentinel naming the offending character and the machine
// state; there is no partial result.
func Pointerize(amr string) (string, error) {
	var result strings.Builder
	st := stateFindFirstLeft
	level := 0
	nodeNameToPointer := make(map[string]string)
	unresolved := make(map[string]bool)
	nextPointerID := 0
	var currentToken strings.Builder
	escaped := false

	allocate := func() string {
		pointer := fmt.Sprintf("<pointer:%d>", nextPointerID)
		nextPointerID++
		return pointer
	}

	for _, c := range amr {
		switch st {

		case stateFindFirstLeft:
			if c == '(' {
				result.WriteString("( ")
				level++
				st = stateFindBeginOfNewNodeName
			}

		case stateFindBeginOfNewNodeName:
			if strings.ContainsRune(lowercaseChars, c) {
				currentToken.Reset()
				currentToken.WriteRune(c)
				st = stateFindEndOfNewNodeName
			} else if !unicode.IsSpace(c) {
				return "", fmt.Errorf("%w: %q in state %s", ErrUnexpectedBeginOfNodeName, c, st)
			}

		case stateFindEndOfNewNodeName:
			if strings.ContainsRune(nodeNameChars, c) {
				currentToken.WriteRune(c)
			} else if unicode.IsSpace(c) || c == '/' {
				token := currentToken.String()
				if !IsNodeName(token) {
					return "", fmt.Errorf("%w: %q in state %s", ErrUnexpectedNodeName, token, st)
				}
				var pointer string
				if existing, ok := nodeNameToPointer[token]; ok {
					if !unresolved[token] {
						return "", fmt.Errorf("%w: %q in state %s", ErrDuplicateNodeName, token, st)
					}
					pointer = existing
					delete(unresolved, token)
				} else {
					pointer = allocate()
					nodeNameToPointer[token] = pointer
				}
				result.WriteString(pointer)
				result.WriteString(" ")
				if c == '/' {
					st = stateFindBeginOfConcept
				} else {
					st = stateFindSlash
				}
			} else {
				return "", fmt.Errorf("%w: %q in state %s", ErrUnexpectedCharOfNodeName, c, st)
			}

		case stateFindSlash:
			if c == '/' {
				st = stateFindBeginOfConcept
			} else if !unicode.IsSpace(c) {
				return "", fmt.Errorf("%w: got %q in state %s", ErrExpectingSlash, c, st)
			}

		case stateFindBeginOfConcept:
			if strings.ContainsRune(lowercaseChars, c) {
				currentToken.Reset()
				currentToken.WriteRune(c)
				st = stateFindEndOfConcept
			} else if !unicode.IsSpace(c) {
				return "", fmt.Errorf("%w: %q in state %s", ErrUnexpectedBeginOfConcept, c, st)
			}

		case stateFindEndOfConcept:
			if strings.ContainsRune(conceptChars, c) {
				currentToken.WriteRune(c)
			} else if unicode.IsSpace(c) || c == ')' {
				result.WriteString(currentToken.String())
				if c == ')' {
					level--
					result.WriteString(" )")
					if level == 0 {
						st = stateEnd
					} else {
						st = stateFindRightOrBeginOfRelation
					}
				} else {
					st = stateFindRightOrBeginOfRelation
				}
			} else {
				return "", fmt.Errorf("%w: %q in state %s", ErrUnexpectedCharOfConcept, c, st)
			}

		case stateFindRightOrBeginOfRelation:
			if c == ')' {
				level--
				result.WriteString(" )")
				if level == 0 {
					st = stateEnd
				}
			} else if c == ':' {
				currentToken.Reset()
				currentToken.WriteRune(c)
				st = stateFindEndOfRelation
			} else if !unicode.IsSpace(c) {
				return "", fmt.Errorf("%w: got %q in state %s", ErrExpectingRightOrRelation, c, st)
			}

		case stateFindEndOfRelation:
			if strings.ContainsRune(relationChars, c) {
				currentToken.WriteRune(c)
			} else if unicode.IsSpace(c) || c == '(' || c == '"' {
				result.WriteString(" ")
				result.WriteString(currentToken.String())
				result.WriteString(" ")
				if c == '(' {
					result.WriteString("( ")
					level++
					st = stateFindBeginOfNewNodeName
				} else if c == '"' {
					result.WriteRune(c)
					escaped = false
					st = stateFindEndOfLiteralValue
				} else {
					st = stateFindLeftOrBeginOfValue
				}
			} else {
				return "", fmt.Errorf("%w: %q in state %s", ErrUnexpectedCharOfRelation, c, st)
			}

		case stateFindLeftOrBeginOfValue:
			if c == '(' {
				result.WriteString("( ")
				level++
				st = stateFindBeginOfNewNodeName
			} else if strings.ContainsRune(valueBeginChars, c) {
				// Either a node name reference or a non-literal constant.
				currentToken.Reset()
				currentToken.WriteRune(c)
				st = stateFindEndOfNonLiteralValue
			} else if c == '"' {
				result.WriteRune(c)
				escaped = false
				st = stateFindEndOfLiteralValue
			} else if !unicode.IsSpace(c) {
				return "", fmt.Errorf("%w: got %q in state %s", ErrExpectingValue, c, st)
			}

		case stateFindEndOfNonLiteralValue:
			// Includes floats.
			if strings.ContainsRune(nonLiteralChars, c) {
				currentToken.WriteRune(c)
			} else if unicode.IsSpace(c) || c == ')' {
				token := currentToken.String()
				if IsNodeName(token) {
					pointer, ok := nodeNameToPointer[token]
					if !ok {
						pointer = allocate()
						nodeNameToPointer[token] = pointer
						unresolved[token] = true
					}
					result.WriteString(pointer)
				} else {
					result.WriteString(token)
				}
				if c == ')' {
					level--
					result.WriteString(" )")
					if level == 0 {
						st = stateEnd
					} else {
						st = stateFindRightOrBeginOfRelation
					}
				} else {
					st = stateFindRightOrBeginOfRelation
				}
			} else {
				return "", fmt.Errorf("%w: %q in state %s", ErrUnexpectedCharOfValue, c, st)
			}

		case stateFindEndOfLiteralValue:
			result.WriteRune(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				st = stateFindRightOrBeginOfRelation
			}

		case stateEnd:
			if !unicode.IsSpace(c) {
				return "", fmt.Errorf("%w: got %q in state %s", ErrExpectingEnd, c, st)
			}
		}
	}

	if st != stateEnd {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedEndStatus, st)
	}

	if len(unresolved) > 0 {
		names := make([]string, 0, len(unresolved))
		for name := range unresolved {
			names = append(names, name)
		}
		sort.Strings(names)
		return "", fmt.Errorf("%w: %s", ErrUnresolvedNodeNames, strings.Join(names, ", "))
	}

	return result.String(), nil
}
