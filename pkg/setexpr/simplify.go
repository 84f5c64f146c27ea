package setexpr

// Simplify rewrites e bottom-up into an equivalent, usually smaller tree.
// It folds the constants ∅ and 𝕌 through every operator, removes double
// complements, and collapses x∪x, x∩x, x∪x' and x∩x' when the operands are
// structurally equal. The result always denotes the same regions as e.
func Simplify(e Expr) Expr {
	switch n := e.(type) {
	case *Complement:
		x := Simplify(n.X)
		switch c := x.(type) {
		case *Empty:
			return &Universal{}
		case *Universal:
			return &Empty{}
		case *Complement:
			return c.X
		}
		return &Complement{X: x}

	case *Union:
		l, r := Simplify(n.Left), Simplify(n.Right)
		switch {
		case isUniversal(l) || isUniversal(r):
			return &Universal{}
		case isEmpty(l):
			return r
		case isEmpty(r):
			return l
		case Equal(l, r):
			return l
		case complementPair(l, r):
			return &Universal{}
		}
		return &Union{Left: l, Right: r}

	case *Intersection:
		l, r := Simplify(n.Left), Simplify(n.Right)
		switch {
		case isEmpty(l) || isEmpty(r):
			return &Empty{}
		case isUniversal(l):
			return r
		case isUniversal(r):
			return l
		case Equal(l, r):
			return l
		case complementPair(l, r):
			return &Empty{}
		}
		return &Intersection{Left: l, Right: r}
	}
	return e
}

func isEmpty(e Expr) bool {
	_, ok := e.(*Empty)
	return ok
}

func isUniversal(e Expr) bool {
	_, ok := e.(*Universal)
	return ok
}

// complementPair reports whether one operand is the complement of the other.
func complementPair(a, b Expr) bool {
	if c, ok := a.(*Complement); ok && Equal(c.X, b) {
		return true
	}
	if c, ok := b.(*Complement); ok && Equal(c.X, a) {
		return true
	}
	return false
}
