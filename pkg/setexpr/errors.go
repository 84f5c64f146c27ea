package setexpr

import (
	"errors"
	"fmt"
)

// Syntax error kinds. A *SyntaxError unwraps to exactly one of these.
var (
	ErrMissingOperand   = errors.New("missing operand")
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
	ErrTrailingInput    = errors.New("unexpected trailing input")
)

// ErrUnknownSet is wrapped by every *SemanticError.
var ErrUnknownSet = errors.New("unknown set name")

// Universe construction and region numbering errors.
var (
	ErrNoSets           = errors.New("no sets declared")
	ErrTooManySets      = fmt.Errorf("more than %d sets declared", MaxSets)
	ErrRegionOutOfRange = errors.New("region id out of range")
)

// LexicalError reports a character the tokenizer does not recognise.
type LexicalError struct {
	Pos  int  // 0-based rune offset
	Char rune // offending character
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: unexpected character %q at position %d", e.Char, e.Pos)
}

// SyntaxError reports a malformed token stream. Kind is one of
// ErrMissingOperand, ErrUnbalancedParens or ErrTrailingInput.
type SyntaxError struct {
	Kind  error
	Token Token // token at which the problem was detected
}

func (e *SyntaxError) Error() string {
	if e.Token.Type == END {
		return fmt.Sprintf("syntax error: %v at end of input", e.Kind)
	}
	return fmt.Sprintf("syntax error: %v at position %d (%q)", e.Kind, e.Token.Pos, e.Token.Lexeme)
}

func (e *SyntaxError) Unwrap() error { return e.Kind }

// SemanticError reports a reference to a set the universe does not declare.
type SemanticError struct {
	Name string
	Pos  int
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error: %v %q at position %d", ErrUnknownSet, e.Name, e.Pos)
}

func (e *SemanticError) Unwrap() error { return ErrUnknownSet }
