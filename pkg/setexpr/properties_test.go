package setexpr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"gosets/pkg/setexpr"
)

var setNames = []string{"A", "B", "C", "D"}

// drawUniverse picks 1..4 sets, using the curriculum layout for three.
func drawUniverse(t *rapid.T) *setexpr.Universe {
	k := rapid.IntRange(1, len(setNames)).Draw(t, "k").(int)
	layout := setexpr.LayoutCanonical
	if k == 3 && rapid.Bool().Draw(t, "venn3").(bool) {
		layout = setexpr.LayoutVenn3
	}
	u, err := setexpr.NewUniverse(layout, setNames[:k]...)
	require.NoError(t, err)
	return u
}

// drawExpr builds a random tree over the sets of u, at most depth levels deep.
func drawExpr(t *rapid.T, u *setexpr.Universe, depth int) setexpr.Expr {
	maxKind := 4
	if depth > 0 {
		maxKind = 7
	}
	switch rapid.IntRange(0, maxKind).Draw(t, "kind").(int) {
	case 0, 1, 2:
		name := rapid.SampledFrom(u.Names()).Draw(t, "name").(string)
		return &setexpr.Var{Name: name}
	case 3:
		return &setexpr.Empty{}
	case 4:
		return &setexpr.Universal{}
	case 5:
		return &setexpr.Complement{X: drawExpr(t, u, depth-1)}
	case 6:
		return &setexpr.Union{Left: drawExpr(t, u, depth-1), Right: drawExpr(t, u, depth-1)}
	default:
		return &setexpr.Intersection{Left: drawExpr(t, u, depth-1), Right: drawExpr(t, u, depth-1)}
	}
}

func eval(t *rapid.T, src string, u *setexpr.Universe) setexpr.RegionSet {
	s, err := setexpr.EvaluateString(src, u)
	require.NoError(t, err, "expression %q", src)
	return s
}

// group wraps printed expressions so they can be spliced into larger text.
func group(e setexpr.Expr) string { return "(" + e.String() + ")" }

func TestLawsOfSetAlgebra(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawUniverse(t)
		e1 := group(drawExpr(t, u, 3))
		e2 := group(drawExpr(t, u, 3))
		e3 := group(drawExpr(t, u, 3))

		same := func(a, b string) {
			require.True(t, eval(t, a, u).Equal(eval(t, b, u)), "%s ≠ %s", a, b)
		}

		// determinism
		same(e1, e1)
		// double complement
		same(e1+"''", e1)
		// De Morgan
		same("("+e1+"∪"+e2+")'", e1+"'∩"+e2+"'")
		same("("+e1+"∩"+e2+")'", e1+"'∪"+e2+"'")
		// commutativity
		same(e1+"∪"+e2, e2+"∪"+e1)
		same(e1+"∩"+e2, e2+"∩"+e1)
		// associativity
		same("("+e1+"∪"+e2+")∪"+e3, e1+"∪("+e2+"∪"+e3+")")
		same("("+e1+"∩"+e2+")∩"+e3, e1+"∩("+e2+"∩"+e3+")")
		// distributivity
		same(e1+"∩("+e2+"∪"+e3+")", "("+e1+"∩"+e2+")∪("+e1+"∩"+e3+")")
		same(e1+"∪("+e2+"∩"+e3+")", "("+e1+"∪"+e2+")∩("+e1+"∪"+e3+")")
		// identity
		same(e1+"∪∅", e1)
		same(e1+"∩𝕌", e1)
		// idempotence
		same(e1+"∪"+e1, e1)
		same(e1+"∩"+e1, e1)
		// complement totality
		s, c := eval(t, e1, u), eval(t, e1+"'", u)
		require.True(t, s.Union(c).Equal(u.All()))
		require.True(t, s.Intersect(c).IsEmpty())
	})
}

func TestEquivalenceRelation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawUniverse(t)
		a := drawExpr(t, u, 3).String()
		b := drawExpr(t, u, 3).String()

		refl, err := setexpr.Equivalent(a, a, u)
		require.NoError(t, err)
		require.True(t, refl)

		ab, err := setexpr.Equivalent(a, b, u)
		require.NoError(t, err)
		ba, err := setexpr.Equivalent(b, a, u)
		require.NoError(t, err)
		require.Equal(t, ab, ba)

		d, err := setexpr.Diff(a, b, u)
		require.NoError(t, err)
		require.Equal(t, ab, d.Same())
	})
}

func TestPrintedExpressionsReparse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawUniverse(t)
		e := drawExpr(t, u, 4)

		again, err := setexpr.ParseString(e.String(), u)
		require.NoError(t, err)
		require.True(t, setexpr.Equal(e, again), "%s reparsed as %s", e, again)
	})
}

func TestSimplifyPreservesDenotation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawUniverse(t)
		e := drawExpr(t, u, 4)
		s := setexpr.Simplify(e)

		require.True(t, setexpr.Evaluate(e, u).Equal(setexpr.Evaluate(s, u)), "%s simplified to %s", e, s)
		require.True(t, setexpr.Equal(s, setexpr.Simplify(s)), "simplify of %s is not a fixed point", s)
	})
}

func TestCanonicalExpressionDenotesItsSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawUniverse(t)
		want := setexpr.Evaluate(drawExpr(t, u, 3), u)

		got := setexpr.Evaluate(u.Expression(want), u)
		require.True(t, got.Equal(want))

		fromIDs, err := u.FromIDs(want.IDs())
		require.NoError(t, err)
		require.True(t, fromIDs.Equal(want))
	})
}

func TestJSONLogicAgreesWithEvaluate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u := drawUniverse(t)
		e := drawExpr(t, u, 2)

		got, err := setexpr.EvaluateJSONLogic(e, u)
		require.NoError(t, err)
		require.True(t, got.Equal(setexpr.Evaluate(e, u)), "%s: jsonlogic %v, engine %v", e, got, setexpr.Evaluate(e, u))
	})
}
