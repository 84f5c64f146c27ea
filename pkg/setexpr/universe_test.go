package setexpr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUniverseErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		names  []string
		errIs  error
	}{
		{name: "NoSets", layout: LayoutCanonical, errIs: ErrNoSets},
		{name: "TooMany", layout: LayoutCanonical, names: manyNames(MaxSets + 1), errIs: ErrTooManySets},
		{name: "Duplicate", layout: LayoutCanonical, names: []string{"A", "B", "A"}},
		{name: "InvalidName", layout: LayoutCanonical, names: []string{"A", "1B"}},
		{name: "EmptyName", layout: LayoutCanonical, names: []string{""}},
		{name: "GlyphName", layout: LayoutCanonical, names: []string{"A∪B"}},
		{name: "Venn3NeedsThree", layout: LayoutVenn3, names: []string{"A", "B"}},
		{name: "UnknownLayout", layout: Layout(7), names: []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUniverse(tt.layout, tt.names...)
			require.Error(t, err)
			assert.Nil(t, u)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func manyNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("S%d", i)
	}
	return names
}

func TestRegionNames(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		sets     []string
		expected []string
	}{
		{
			name:   "Venn3",
			layout: LayoutVenn3,
			sets:   []string{"A", "B", "C"},
			expected: []string{
				"A∩B'∩C'", // 1 A only
				"A'∩B∩C'", // 2 B only
				"A'∩B'∩C", // 3 C only
				"A∩B'∩C",  // 4 A∩C only
				"A∩B∩C'",  // 5 A∩B only
				"A'∩B∩C",  // 6 B∩C only
				"A∩B∩C",   // 7
				"A'∩B'∩C'", // 8 none
			},
		},
		{
			name:   "Canonical3",
			layout: LayoutCanonical,
			sets:   []string{"A", "B", "C"},
			expected: []string{
				"A∩B'∩C'",
				"A'∩B∩C'",
				"A'∩B'∩C",
				"A∩B∩C'",
				"A∩B'∩C",
				"A'∩B∩C",
				"A∩B∩C",
				"A'∩B'∩C'",
			},
		},
		{
			name:     "Canonical2",
			layout:   LayoutCanonical,
			sets:     []string{"P", "Q"},
			expected: []string{"P∩Q'", "P'∩Q", "P∩Q", "P'∩Q'"},
		},
		{
			name:     "Single",
			layout:   LayoutCanonical,
			sets:     []string{"X"},
			expected: []string{"X", "X'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUniverse(tt.layout, tt.sets...)
			require.NoError(t, err)
			require.Equal(t, len(tt.expected), u.Size())

			for i, want := range tt.expected {
				got, err := u.RegionName(i + 1)
				require.NoError(t, err)
				assert.Equal(t, want, got, "region %d", i+1)
			}
		})
	}
}

func TestCanonicalOrderFourSets(t *testing.T) {
	u, err := NewUniverse(LayoutCanonical, "A", "B", "C", "D")
	require.NoError(t, err)
	require.Equal(t, 16, u.Size())

	// Pairs come after the four singletons, lexicographically.
	pairs := []string{"A∩B", "A∩C", "A∩D", "B∩C", "B∩D", "C∩D"}
	for i, pair := range pairs {
		s, err := EvaluateString(pair, u)
		require.NoError(t, err)
		assert.True(t, s.Contains(5+i), "%s should contain region %d", pair, 5+i)
	}

	all, err := EvaluateString("A∩B∩C∩D", u)
	require.NoError(t, err)
	assert.Equal(t, []int{15}, all.IDs())

	none, err := EvaluateString("(A∪B∪C∪D)'", u)
	require.NoError(t, err)
	assert.Equal(t, []int{16}, none.IDs())
}

func TestMembership(t *testing.T) {
	u := DefaultUniverse()

	in, err := u.Membership(4)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, in)

	in, err = u.Membership(8)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, in)

	_, err = u.Membership(0)
	assert.ErrorIs(t, err, ErrRegionOutOfRange)
	_, err = u.Membership(9)
	assert.ErrorIs(t, err, ErrRegionOutOfRange)
}

func TestFromIDs(t *testing.T) {
	u := DefaultUniverse()

	s, err := u.FromIDs([]int{7, 5, 7, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7}, s.IDs())
	assert.Equal(t, 2, s.Len())

	empty, err := u.FromIDs(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, []int{}, empty.IDs())

	_, err = u.FromIDs([]int{1, 9})
	assert.ErrorIs(t, err, ErrRegionOutOfRange)
}

func TestExpressionRoundTrip(t *testing.T) {
	u := DefaultUniverse()

	tests := []struct {
		ids      []int
		expected string
	}{
		{nil, "∅"},
		{[]int{1, 2, 3, 4, 5, 6, 7, 8}, "𝕌"},
		{[]int{7}, "A∩B∩C"},
		{[]int{5, 7}, "A∩B∩C'∪A∩B∩C"},
	}

	for _, tt := range tests {
		s, err := u.FromIDs(tt.ids)
		require.NoError(t, err)

		e := u.Expression(s)
		assert.Equal(t, tt.expected, e.String())
		assert.True(t, Evaluate(e, u).Equal(s))
	}
}

func TestMembers(t *testing.T) {
	u := DefaultUniverse()

	a, ok := u.Members("A")
	require.True(t, ok)
	assert.Equal(t, []int{1, 4, 5, 7}, a.IDs())

	_, ok = u.Members("Z")
	assert.False(t, ok)

	assert.Equal(t, []string{"A", "B", "C"}, u.Names())
	assert.Equal(t, LayoutVenn3, u.Layout())
}

func TestParseLayout(t *testing.T) {
	l, err := ParseLayout("Venn3")
	require.NoError(t, err)
	assert.Equal(t, LayoutVenn3, l)

	l, err = ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, LayoutCanonical, l)

	_, err = ParseLayout("hexagon")
	assert.Error(t, err)

	for _, l := range []Layout{LayoutCanonical, LayoutVenn3} {
		back, err := ParseLayout(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, back)
	}
}

func TestRegionSetAcrossUniverses(t *testing.T) {
	u1 := DefaultUniverse()
	u2 := DefaultUniverse()
	u3, err := NewUniverse(LayoutCanonical, "A", "B", "C")
	require.NoError(t, err)

	a1, _ := u1.Members("A")
	a2, _ := u2.Members("A")
	a3, _ := u3.Members("A")

	// Identically declared universes are interchangeable.
	assert.True(t, a1.Equal(a2))
	assert.Equal(t, a1.IDs(), a1.Union(a2).IDs())

	// A different numbering is not.
	assert.False(t, a1.Equal(a3))
	assert.Panics(t, func() { a1.Union(a3) })
}

func TestLargeUniverseComplement(t *testing.T) {
	u, err := NewUniverse(LayoutCanonical, manyNames(7)...)
	require.NoError(t, err)
	require.Equal(t, 128, u.Size())

	s0, _ := u.Members("S0")
	assert.Equal(t, 64, s0.Len())
	assert.Equal(t, 64, s0.Complement().Len())
	assert.Equal(t, 128, u.All().Len())

	small, err := NewUniverse(LayoutCanonical, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 4, small.All().Len())
	assert.Equal(t, "{1,2,3,4}", small.All().String())
}

func TestZeroRegionSet(t *testing.T) {
	set, ok := ParseSetExpression("A∪∪")
	require.False(t, ok)

	assert.Nil(t, set.Universe())
	assert.Equal(t, 0, set.Len())
	assert.True(t, set.IsEmpty())
	assert.False(t, set.Contains(1))
	assert.Nil(t, set.IDs())
	assert.Equal(t, "{}", set.String())

	assert.NotPanics(t, func() {
		assert.True(t, set.Complement().Equal(RegionSet{}))
		assert.True(t, set.Union(set).IsEmpty())
		assert.True(t, set.Intersect(set).IsEmpty())
		assert.True(t, set.Difference(set).IsEmpty())
	})

	a, _ := DefaultUniverse().Members("A")
	assert.False(t, set.Equal(a))
	assert.Panics(t, func() { set.Union(a) })
}
