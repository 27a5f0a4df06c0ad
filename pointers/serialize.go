package pointers

import (
	"fmt"
	"strings"

	"github.com/reusee/amr/graphs"
	"github.com/reusee/amr/penmans"
)

// FromGraph converts a graph to pointer-linear text for model consumption.
//
// When every declared variable already has the z-prefix shape, each keeps
// its own digits as pointer id, so serializing an already-normalized graph
// repeatedly is stable. Otherwise pointer ids are allocated in the order
// instance triples appear. The rewritten graph is re-encoded single-line
// and post-processed character by character: space after every "(", space
// before every ")", the concept slash dropped, runs of whitespace
// collapsed, all of it suppressed inside string literals.
func FromGraph(g *graphs.Graph) (string, error) {
	var varList []string
	seen := make(map[string]bool)
	allZPrefix := true
	for _, t := range g.Instances() {
		if seen[t.Source] {
			continue
		}
		seen[t.Source] = true
		varList = append(varList, t.Source)
		if !isZPrefixVariable(t.Source) {
			allZPrefix = false
		}
	}

	var renamed *graphs.Graph
	if allZPrefix {
		renamed = graphs.MapVariables(g, isZPrefixVariable, zPrefixToPointer)
	} else {
		varToPointer := make(map[string]string, len(varList))
		for i, v := range varList {
			varToPointer[v] = fmt.Sprintf("<pointer:%d>", i)
		}
		renamed = graphs.MapVariables(g,
			func(v string) bool {
				_, ok := varToPointer[v]
				return ok
			},
			func(v string) string {
				return varToPointer[v]
			},
		)
	}

	encoded, err := penmans.Encode(renamed)
	if err != nil {
		return "", err
	}

	return normalizeSpacing(encoded), nil
}

// FromPenman decodes bracketed text with named variables and serializes it
// to pointer-linear text.
func FromPenman(s string) (string, error) {
	g, err := penmans.Decode(s)
	if err != nil {
		return "", err
	}
	return FromGraph(g)
}

func normalizeSpacing(encoded string) string {
	var sb strings.Builder
	inLiteral := false
	prevIsEscape := false
	for _, c := range encoded {
		if inLiteral {
			sb.WriteRune(c)
			if c == '\\' {
				prevIsEscape = !prevIsEscape
			} else {
				if c == '"' && !prevIsEscape {
					inLiteral = false
				}
				prevIsEscape = false
			}
			continue
		}
		switch c {
		case '(':
			sb.WriteString("( ")
		case ')':
			sb.WriteString(" )")
		case '/':
			// The concept separator does not survive linearization.
		case ' ', '\t', '\n', '\r':
			s := sb.String()
			if s != "" && s[len(s)-1] != ' ' {
				sb.WriteString(" ")
			}
		default:
			sb.WriteRune(c)
			if c == '"' {
				inLiteral = true
			}
		}
	}
	return sb.String()
}
