package setexpr

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	END TokenType = iota // sentinel: end of input

	IDENTIFIER // named set, e.g. A

	// Operators
	UNION      // ∪
	INTERSECT  // ∩
	COMPLEMENT // ' (postfix)

	// Grouping
	LPAREN // (
	RPAREN // )

	// Constants
	EMPTY     // ∅
	UNIVERSAL // 𝕌
)

var tokenNames = [...]string{
	END:        "END",
	IDENTIFIER: "IDENTIFIER",
	UNION:      "UNION",
	INTERSECT:  "INTERSECT",
	COMPLEMENT: "COMPLEMENT",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	EMPTY:      "EMPTY",
	UNIVERSAL:  "UNIVERSAL",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Pos    int    // 0-based rune offset into the source
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-8q  pos %d", t.Type, t.Lexeme, t.Pos)
}

// Canonical glyphs used when printing expressions.
const (
	UnionGlyph      = "∪"
	IntersectGlyph  = "∩"
	ComplementGlyph = "'"
	EmptyGlyph      = "∅"
	UniversalGlyph  = "𝕌"
)

// glyphs maps every accepted single-rune operator or constant to its token type.
// "{}" is handled separately in the lexer since it spans two runes.
var glyphs = map[rune]TokenType{
	'∪':  UNION,
	'|':  UNION,
	'+':  UNION,
	'∩':  INTERSECT,
	'&':  INTERSECT,
	'^':  INTERSECT,
	'\'': COMPLEMENT,
	'′':  COMPLEMENT,
	'ᶜ':  COMPLEMENT,
	'(':  LPAREN,
	')':  RPAREN,
	'∅':  EMPTY,
	'Ø':  EMPTY,
	'ø':  EMPTY,
	'𝕌':  UNIVERSAL,
	'Ω':  UNIVERSAL,
	'ξ':  UNIVERSAL,
}
