package setexpr

import "unicode"

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src []rune
	pos int // index of the next rune to consume
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

// scanIdent collects a maximal run of identifier characters.
// The first character must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	return Token{Type: IDENTIFIER, Lexeme: string(l.src[start:l.pos]), Pos: start}
}

// nextToken skips whitespace and returns the next Token.
func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: END, Pos: l.pos}, nil
	}

	ch := l.peek()
	pos := l.pos

	if isIdentStart(ch) {
		return l.scanIdent(), nil
	}

	// "{}" is the only two-rune glyph.
	if ch == '{' && l.peek2() == '}' {
		l.advance()
		l.advance()
		return Token{Type: EMPTY, Lexeme: "{}", Pos: pos}, nil
	}

	if tt, ok := glyphs[ch]; ok {
		l.advance()
		return Token{Type: tt, Lexeme: string(ch), Pos: pos}, nil
	}

	return Token{}, &LexicalError{Pos: pos, Char: ch}
}

// Lex tokenises src and returns all tokens including the final END token.
// It returns a *LexicalError on the first unrecognised character.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == END {
			return tokens, nil
		}
	}
}
