package setexpr

import "strings"

// Expr is implemented by every node of a parsed set expression.
// The set of implementations is closed: Var, Complement, Union,
// Intersection, Empty and Universal.
type Expr interface {
	exprNode()
	String() string
}

// Var is a reference to a declared named set.
//
//	A ∩ B
//	^   ^  Var{Name: "A"}, Var{Name: "B"}
type Var struct {
	Name string
}

// Complement is the postfix complement X'.
type Complement struct {
	X Expr
}

// Union represents Left ∪ Right.
type Union struct {
	Left  Expr
	Right Expr
}

// Intersection represents Left ∩ Right.
type Intersection struct {
	Left  Expr
	Right Expr
}

// Empty is the empty-set constant ∅.
type Empty struct{}

// Universal is the universal-set constant 𝕌.
type Universal struct{}

func (*Var) exprNode()          {}
func (*Complement) exprNode()   {}
func (*Union) exprNode()        {}
func (*Intersection) exprNode() {}
func (*Empty) exprNode()        {}
func (*Universal) exprNode()    {}

// Binding strength, loosest first.
const (
	precUnion = iota + 1
	precIntersect
	precComplement
	precAtom
)

func precedence(e Expr) int {
	switch e.(type) {
	case *Union:
		return precUnion
	case *Intersection:
		return precIntersect
	case *Complement:
		return precComplement
	default:
		return precAtom
	}
}

// format writes e, parenthesising it when it binds looser than min.
func format(sb *strings.Builder, e Expr, min int) {
	paren := precedence(e) < min
	if paren {
		sb.WriteString("(")
	}
	switch n := e.(type) {
	case *Var:
		sb.WriteString(n.Name)
	case *Empty:
		sb.WriteString(EmptyGlyph)
	case *Universal:
		sb.WriteString(UniversalGlyph)
	case *Complement:
		format(sb, n.X, precComplement)
		sb.WriteString(ComplementGlyph)
	case *Union:
		// Both operators are left-associative, so a right operand of the
		// same precedence needs parentheses.
		format(sb, n.Left, precUnion)
		sb.WriteString(UnionGlyph)
		format(sb, n.Right, precUnion+1)
	case *Intersection:
		format(sb, n.Left, precIntersect)
		sb.WriteString(IntersectGlyph)
		format(sb, n.Right, precIntersect+1)
	}
	if paren {
		sb.WriteString(")")
	}
}

func render(e Expr) string {
	var sb strings.Builder
	format(&sb, e, precUnion)
	return sb.String()
}

func (v *Var) String() string          { return render(v) }
func (c *Complement) String() string   { return render(c) }
func (u *Union) String() string        { return render(u) }
func (i *Intersection) String() string { return render(i) }
func (e *Empty) String() string        { return render(e) }
func (u *Universal) String() string    { return render(u) }

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name
	case *Empty:
		_, ok := b.(*Empty)
		return ok
	case *Universal:
		_, ok := b.(*Universal)
		return ok
	case *Complement:
		y, ok := b.(*Complement)
		return ok && Equal(x.X, y.X)
	case *Union:
		y, ok := b.(*Union)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Intersection:
		y, ok := b.(*Intersection)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// Names returns the distinct set names referenced by e in first-use order.
func Names(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch n := e.(type) {
		case *Var:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case *Complement:
			walk(n.X)
		case *Union:
			walk(n.Left)
			walk(n.Right)
		case *Intersection:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(e)
	return names
}
