package setexpr

import "fmt"

// Evaluate returns the regions of u denoted by e. It is total for every
// tree returned by Parse against u; a hand-built tree naming an undeclared
// set is a programming error and panics.
func Evaluate(e Expr, u *Universe) RegionSet {
	switch n := e.(type) {
	case *Var:
		s, ok := u.Members(n.Name)
		if !ok {
			panic(fmt.Sprintf("setexpr: evaluate: set %q is not declared", n.Name))
		}
		return s
	case *Empty:
		return u.Empty()
	case *Universal:
		return u.All()
	case *Complement:
		return Evaluate(n.X, u).Complement()
	case *Union:
		return Evaluate(n.Left, u).Union(Evaluate(n.Right, u))
	case *Intersection:
		return Evaluate(n.Left, u).Intersect(Evaluate(n.Right, u))
	}
	panic(fmt.Sprintf("setexpr: evaluate: unknown node %T", e))
}

// EvaluateString lexes, parses and evaluates src against u.
func EvaluateString(src string, u *Universe) (RegionSet, error) {
	e, err := ParseString(src, u)
	if err != nil {
		return RegionSet{}, err
	}
	return Evaluate(e, u), nil
}
