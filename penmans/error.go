package penmans

import "fmt"

// LexError reports an invalid token.
type LexError struct {
	Pos Position
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

// SyntaxError reports a token that does not fit the grammar.
type SyntaxError struct {
	Pos      Position
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, got %s at %s", e.Expected, e.Got, e.Pos)
}

// EncodeError reports a graph that cannot be rendered as text.
type EncodeError struct {
	Msg string
}

func (e *EncodeError) Error() string {
	return e.Msg
}
