package pointers

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/amr/graphs"
	"github.com/reusee/amr/logs"
	"github.com/reusee/amr/penmans"
)

var pointerPattern = regexp.MustCompile(`<pointer:(\d+)>`)

// Decoder converts pointer-tagged linear text back into graphs. It sits in
// a path that must keep the downstream pipeline alive on malformed model
// output, so Decode never returns an error: failures yield the fixed
// backoff graph and StatusBackoff.
//
// The Decoder itself only holds the logger; all conversion state is scoped
// to one Decode call, so a single Decoder is safe for concurrent use.
type Decoder struct {
	Logger logs.Logger
}

// Decode converts pointer notation to a graph. On success it returns the
// graph, StatusOK and the intermediate bracketed text; on any failure or a
// structurally empty result it returns the backoff graph, StatusBackoff
// and an empty string.
func (d *Decoder) Decode(amr string) (g *graphs.Graph, status Status, penmanText string) {
	defer func() {
		if p := recover(); p != nil {
			d.warn("processing failure", "panic", p)
			g, status, penmanText = Backoff(), StatusBackoff, ""
		}
	}()

	state := &decodeState{
		varMap:          make(map[string]string),
		conceptCounters: make(map[string]int),
	}
	penmanText = state.process(splitTokens(strings.TrimSpace(amr)))

	g, err := penmans.Decode(penmanText)
	if err != nil {
		d.warn("decoding failure", "error", err)
		return Backoff(), StatusBackoff, ""
	}
	if g.IsEmpty() || g.Top == "" {
		d.warn("empty graph")
		return Backoff(), StatusBackoff, ""
	}

	return g, StatusOK, penmanText
}

func (d *Decoder) warn(msg string, args ...any) {
	if d.Logger != nil {
		d.Logger.Warn(msg, args...)
	}
}

// decodeState lives for one Decode call only: pointer ids carry no meaning
// across calls.
type decodeState struct {
	varMap          map[string]string // pointer id -> generated variable
	conceptCounters map[string]int    // variable prefix -> running count
}

// varName generates a short variable for a concept: first letter of the
// concept plus a per-letter counter, falling back to the "x" prefix when
// the concept does not start with a letter.
func (s *decodeState) varName(concept string) string {
	prefix := "x"
	if r, _ := utf8.DecodeRuneInString(concept); unicode.IsLetter(r) {
		prefix = string(unicode.ToLower(r))
	}
	s.conceptCounters[prefix]++
	return prefix + strconv.Itoa(s.conceptCounters[prefix])
}

// process rewrites one parenthesized group (or bare value) into bracketed
// notation with named variables, descending recursively into values that
// open with a parenthesis.
func (s *decodeState) process(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	if tokens[0] != "(" {
		value := strings.Join(tokens, " ")
		if m := pointerPattern.FindStringSubmatch(value); m != nil {
			if v, ok := s.varMap[m[1]]; ok {
				return v
			}
		}
		return value
	}

	if tokens[len(tokens)-1] != ")" {
		return strings.Join(tokens, " ")
	}
	inner := tokens[1 : len(tokens)-1]

	pointerID := ""
	for _, tok := range inner {
		if m := pointerPattern.FindStringSubmatch(tok); m != nil {
			pointerID = m[1]
			break
		}
	}
	if pointerID == "" || len(inner) < 2 {
		return strings.Join(tokens, " ")
	}
	concept := inner[1]

	if _, ok := s.varMap[pointerID]; !ok {
		s.varMap[pointerID] = s.varName(concept)
	}
	variable := s.varMap[pointerID]

	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(variable)
	sb.WriteString(" / ")
	sb.WriteString(concept)

	for i := 2; i < len(inner); {
		if !strings.HasPrefix(inner[i], ":") {
			i++
			continue
		}
		rel := inner[i]
		i++
		if i >= len(inner) {
			break
		}

		var value string
		if inner[i] == "(" {
			depth := 1
			j := i + 1
			for j < len(inner) && depth > 0 {
				switch inner[j] {
				case "(":
					depth++
				case ")":
					depth--
				}
				j++
			}
			value = s.process(inner[i:j])
			i = j
		} else {
			value = s.process(inner[i : i+1])
			i++
		}

		sb.WriteString(" ")
		sb.WriteString(rel)
		sb.WriteString(" ")
		sb.WriteString(value)
	}

	sb.WriteString(")")
	return sb.String()
}

// splitTokens splits on whitespace while keeping each quoted literal,
// escapes included, as a single token.
func splitTokens(s string) []string {
	var tokens []string
	var cur strings.Builder
	inLiteral := false
	escaped := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, c := range s {
		if inLiteral {
			cur.WriteRune(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inLiteral = false
			}
			continue
		}
		if unicode.IsSpace(c) {
			flush()
			continue
		}
		cur.WriteRune(c)
		if c == '"' {
			inLiteral = true
		}
	}
	flush()
	return tokens
}
