package setexpr

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar, loosest binding first:
//
//	expr      = unionExpr END
//	unionExpr = interExpr (UNION interExpr)*
//	interExpr = complExpr (INTERSECT complExpr)*
//	complExpr = atom COMPLEMENT*
//	atom      = IDENTIFIER | EMPTY | UNIVERSAL | "(" unionExpr ")"
type Parser struct {
	tokens []Token
	pos    int
	depth  int // number of currently open parentheses
	u      *Universe
}

// newParser returns a parser over tokens that resolves identifiers against u.
func newParser(tokens []Token, u *Universe) *Parser {
	return &Parser{tokens: tokens, u: u}
}

// peek returns the current token without consuming it. A token slice that
// is missing its END sentinel behaves as if it had one.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		pos := 0
		if n := len(p.tokens); n > 0 {
			last := p.tokens[n-1]
			pos = last.Pos + len([]rune(last.Lexeme))
		}
		return Token{Type: END, Pos: pos}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func syntaxErr(kind error, tok Token) error {
	return &SyntaxError{Kind: kind, Token: tok}
}

// parseUnion handles ∪ (loosest).
func (p *Parser) parseUnion() (Expr, error) {
	expr, err := p.parseIntersect()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == UNION {
		p.advance()
		right, err := p.parseIntersect()
		if err != nil {
			return nil, err
		}
		expr = &Union{Left: expr, Right: right}
	}
	return expr, nil
}

// parseIntersect handles ∩.
func (p *Parser) parseIntersect() (Expr, error) {
	expr, err := p.parseComplement()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == INTERSECT {
		p.advance()
		right, err := p.parseComplement()
		if err != nil {
			return nil, err
		}
		expr = &Intersection{Left: expr, Right: right}
	}
	return expr, nil
}

// parseComplement handles any number of postfix complement marks.
func (p *Parser) parseComplement() (Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == COMPLEMENT {
		p.advance()
		expr = &Complement{X: expr}
	}
	return expr, nil
}

func (p *Parser) parseAtom() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case IDENTIFIER:
		p.advance()
		if !p.u.Has(tok.Lexeme) {
			return nil, &SemanticError{Name: tok.Lexeme, Pos: tok.Pos}
		}
		return &Var{Name: tok.Lexeme}, nil

	case EMPTY:
		p.advance()
		return &Empty{}, nil

	case UNIVERSAL:
		p.advance()
		return &Universal{}, nil

	case LPAREN:
		open := p.advance()
		p.depth++
		expr, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		switch next := p.peek(); next.Type {
		case RPAREN:
			p.advance()
			p.depth--
			return expr, nil
		case END:
			return nil, syntaxErr(ErrUnbalancedParens, open)
		default:
			return nil, syntaxErr(ErrTrailingInput, next)
		}

	case RPAREN:
		if p.depth == 0 {
			return nil, syntaxErr(ErrUnbalancedParens, tok)
		}
		return nil, syntaxErr(ErrMissingOperand, tok)

	default:
		return nil, syntaxErr(ErrMissingOperand, tok)
	}
}

// Parse builds the AST for a complete token stream. Every identifier must
// name a set declared in u. On failure it returns a *SyntaxError or a
// *SemanticError and no tree.
func Parse(tokens []Token, u *Universe) (Expr, error) {
	p := newParser(tokens, u)
	expr, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	switch tok := p.peek(); tok.Type {
	case END:
		return expr, nil
	case RPAREN:
		return nil, syntaxErr(ErrUnbalancedParens, tok)
	default:
		return nil, syntaxErr(ErrTrailingInput, tok)
	}
}

// ParseString lexes and parses src against u.
func ParseString(src string, u *Universe) (Expr, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, u)
}
