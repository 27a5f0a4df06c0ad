package penmans

import "fmt"

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenLParen
	TokenRParen
	TokenSlash
	TokenRole   // :ARG0, :op1, :mod-of, ...
	TokenAtom   // variables, concepts, constants
	TokenString // "..." kept verbatim, quotes included
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenSlash:
		return "'/'"
	case TokenRole:
		return "role"
	case TokenAtom:
		return "atom"
	case TokenString:
		return "string"
	}
	return "unknown"
}

type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

// Position locates a token in the source text, 1-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
