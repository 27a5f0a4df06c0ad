package penmans

// Tokenizer splits bracketed notation into tokens. Parentheses and the
// concept slash are their own tokens; quoted literals are one token kept
// verbatim, honoring backslash-escaped quotes.
type Tokenizer struct {
	src    string
	pos    int
	line   int
	col    int
	peeked *Token
}

func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() (Token, error) {
	if t.peeked != nil {
		return *t.peeked, nil
	}
	tok, err := t.scan()
	if err != nil {
		return Token{}, err
	}
	t.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances.
func (t *Tokenizer) Next() (Token, error) {
	if t.peeked != nil {
		tok := *t.peeked
		t.peeked = nil
		return tok, nil
	}
	return t.scan()
}

func (t *Tokenizer) currentPos() Position {
	return Position{Line: t.line, Column: t.col, Offset: t.pos}
}

func (t *Tokenizer) atEnd() bool {
	return t.pos >= len(t.src)
}

func (t *Tokenizer) peekByte() byte {
	if t.atEnd() {
		return 0
	}
	return t.src[t.pos]
}

func (t *Tokenizer) advance() byte {
	ch := t.src[t.pos]
	t.pos++
	if ch == '\n' {
		t.line++
		t.col = 1
	} else {
		t.col++
	}
	return ch
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func (t *Tokenizer) scan() (Token, error) {
	for !t.atEnd() && isSpace(t.peekByte()) {
		t.advance()
	}

	pos := t.currentPos()
	if t.atEnd() {
		return Token{Kind: TokenEOF, Pos: pos}, nil
	}

	switch ch := t.peekByte(); ch {
	case '(':
		t.advance()
		return Token{Kind: TokenLParen, Text: "(", Pos: pos}, nil
	case ')':
		t.advance()
		return Token{Kind: TokenRParen, Text: ")", Pos: pos}, nil
	case '/':
		t.advance()
		return Token{Kind: TokenSlash, Text: "/", Pos: pos}, nil
	case '"':
		return t.scanString(pos)
	}

	start := t.pos
	for !t.atEnd() {
		ch := t.peekByte()
		if isSpace(ch) || ch == '(' || ch == ')' || ch == '/' || ch == '"' {
			break
		}
		t.advance()
	}
	text := t.src[start:t.pos]
	kind := TokenAtom
	if text[0] == ':' {
		kind = TokenRole
	}
	return Token{Kind: kind, Text: text, Pos: pos}, nil
}

// scanString consumes a quoted literal including both quotes. A quote
// preceded by an unescaped backslash does not terminate the literal.
func (t *Tokenizer) scanString(pos Position) (Token, error) {
	start := t.pos
	t.advance() // opening quote
	escaped := false
	for !t.atEnd() {
		ch := t.advance()
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			escaped = true
		case '"':
			return Token{
				Kind: TokenString,
				Text: t.src[start:t.pos],
				Pos:  pos,
			}, nil
		}
	}
	return Token{}, &LexError{Pos: pos, Msg: "unterminated string literal"}
}
