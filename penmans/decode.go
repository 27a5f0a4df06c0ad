package penmans

import (
	"fmt"

	"github.com/reusee/amr/graphs"
)

// Decode parses bracketed notation into a graph. Edge triples whose value
// opened a nested node carry a Push marker for the child variable; the last
// triple inside each closing parenthesis carries a Pop. Roles are kept
// exactly as written.
func Decode(src string) (*graphs.Graph, error) {
	p := &parser{
		tokenizer: NewTokenizer(src),
		epidata:   make(map[graphs.Triple][]graphs.Marker),
		declared:  make(map[string]bool),
	}

	tok, err := p.expect(TokenLParen)
	if err != nil {
		return nil, err
	}
	if err := p.parseNode(tok); err != nil {
		return nil, err
	}

	tok, err = p.tokenizer.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &SyntaxError{
			Pos:      tok.Pos,
			Expected: "end of input",
			Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Text),
		}
	}

	g := graphs.New(p.triples)
	g.Epidata = p.epidata
	return g, nil
}

type parser struct {
	tokenizer *Tokenizer
	triples   []graphs.Triple
	epidata   map[graphs.Triple][]graphs.Marker
	declared  map[string]bool
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.tokenizer.Next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			Pos:      tok.Pos,
			Expected: kind.String(),
			Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Text),
		}
	}
	return tok, nil
}

func (p *parser) emit(t graphs.Triple) {
	p.triples = append(p.triples, t)
}

func (p *parser) mark(m graphs.Marker) {
	last := p.triples[len(p.triples)-1]
	p.epidata[last] = append(p.epidata[last], m)
}

// parseNode consumes a node starting after its opening parenthesis: the
// variable, the slash-introduced concept, the relations, and the closing
// parenthesis.
func (p *parser) parseNode(lparen Token) error {
	varTok, err := p.expect(TokenAtom)
	if err != nil {
		return err
	}
	variable := varTok.Text

	if p.declared[variable] {
		return &SyntaxError{
			Pos:      varTok.Pos,
			Expected: "an undeclared variable",
			Got:      fmt.Sprintf("repeated declaration of %q", variable),
		}
	}
	p.declared[variable] = true

	if _, err := p.expect(TokenSlash); err != nil {
		return err
	}
	conceptTok, err := p.expect(TokenAtom)
	if err != nil {
		return err
	}

	p.emit(graphs.Triple{
		Source: variable,
		Role:   graphs.InstanceRole,
		Target: conceptTok.Text,
	})

	for {
		tok, err := p.tokenizer.Next()
		if err != nil {
			return err
		}

		switch tok.Kind {

		case TokenRParen:
			p.mark(graphs.Pop{})
			return nil

		case TokenRole:
			if err := p.parseValue(variable, tok.Text); err != nil {
				return err
			}

		default:
			return &SyntaxError{
				Pos:      tok.Pos,
				Expected: "role or ')'",
				Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Text),
			}
		}
	}
}

func (p *parser) parseValue(source, role string) error {
	tok, err := p.tokenizer.Next()
	if err != nil {
		return err
	}

	switch tok.Kind {

	case TokenLParen:
		childTok, err := p.tokenizer.Peek()
		if err != nil {
			return err
		}
		if childTok.Kind != TokenAtom {
			return &SyntaxError{
				Pos:      childTok.Pos,
				Expected: "variable",
				Got:      fmt.Sprintf("%s (%q)", childTok.Kind, childTok.Text),
			}
		}
		p.emit(graphs.Triple{Source: source, Role: role, Target: childTok.Text})
		p.mark(graphs.Push{Variable: childTok.Text})
		return p.parseNode(tok)

	case TokenAtom, TokenString:
		p.emit(graphs.Triple{Source: source, Role: role, Target: tok.Text})
		return nil

	default:
		return &SyntaxError{
			Pos:      tok.Pos,
			Expected: "value",
			Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Text),
		}
	}
}
