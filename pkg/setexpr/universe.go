package setexpr

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"
)

// MaxSets bounds the number of named sets a Universe may declare.
const MaxSets = 16

// Layout fixes how regions are numbered.
type Layout int

const (
	// LayoutCanonical orders regions by how many sets they belong to
	// (1..k), lexicographically by declared set index within a group,
	// with the region outside every set last.
	LayoutCanonical Layout = iota

	// LayoutVenn3 is the three-set curriculum numbering:
	// 1=A only, 2=B only, 3=C only, 4=A∩C only, 5=A∩B only,
	// 6=B∩C only, 7=A∩B∩C, 8=none.
	LayoutVenn3
)

func (l Layout) String() string {
	switch l {
	case LayoutCanonical:
		return "canonical"
	case LayoutVenn3:
		return "venn3"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout is the inverse of Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "canonical", "":
		return LayoutCanonical, nil
	case "venn3":
		return LayoutVenn3, nil
	}
	return 0, fmt.Errorf("unknown region layout %q", s)
}

// venn3Order lists membership masks (bit 0 = first set) in curriculum order.
var venn3Order = []uint32{0b001, 0b010, 0b100, 0b101, 0b011, 0b110, 0b111, 0b000}

// Universe is the finite set of regions formed by every membership
// combination of its named sets. It is immutable once built and may be
// shared freely.
type Universe struct {
	names  []string
	index  map[string]int
	layout Layout

	order   []uint32    // order[id-1] is the membership mask of region id
	rank    []int       // rank[mask] is the region id of mask
	members []RegionSet // members[i] holds the regions inside set i
}

// NewUniverse declares the named sets of a universe. Names must be valid
// identifiers and unique; their order only affects region numbering.
func NewUniverse(layout Layout, names ...string) (*Universe, error) {
	if len(names) == 0 {
		return nil, ErrNoSets
	}
	if len(names) > MaxSets {
		return nil, ErrTooManySets
	}
	u := &Universe{
		names:  append([]string(nil), names...),
		index:  make(map[string]int, len(names)),
		layout: layout,
	}
	for i, name := range names {
		if !validName(name) {
			return nil, fmt.Errorf("invalid set name %q", name)
		}
		if _, dup := u.index[name]; dup {
			return nil, fmt.Errorf("duplicate set name %q", name)
		}
		u.index[name] = i
	}

	n := 1 << len(names)
	switch layout {
	case LayoutCanonical:
		u.order = canonicalOrder(len(names))
	case LayoutVenn3:
		if len(names) != 3 {
			return nil, fmt.Errorf("layout %s needs exactly 3 sets, got %d", layout, len(names))
		}
		u.order = append([]uint32(nil), venn3Order...)
	default:
		return nil, fmt.Errorf("unknown region layout %v", layout)
	}

	u.rank = make([]int, n)
	for i, mask := range u.order {
		u.rank[mask] = i + 1
	}

	u.members = make([]RegionSet, len(names))
	for i := range names {
		s := u.Empty()
		for mask := 0; mask < n; mask++ {
			if mask&(1<<i) != 0 {
				s.set(uint32(mask))
			}
		}
		u.members[i] = s
	}
	return u, nil
}

// DefaultUniverse returns the curriculum universe: sets A, B and C in the
// three-set Venn layout.
func DefaultUniverse() *Universe {
	u, err := NewUniverse(LayoutVenn3, "A", "B", "C")
	if err != nil {
		panic(err)
	}
	return u
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentPart(r) {
			return false
		}
	}
	return true
}

// canonicalOrder sorts masks by popcount, then by the ascending list of set
// indices they contain, and places the empty mask last.
func canonicalOrder(k int) []uint32 {
	n := 1 << k
	order := make([]uint32, 0, n)
	for mask := 1; mask < n; mask++ {
		order = append(order, uint32(mask))
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if ca, cb := bits.OnesCount32(a), bits.OnesCount32(b); ca != cb {
			return ca < cb
		}
		// Same size: the first differing set index decides, and the mask
		// holding the lower index sorts first.
		diff := a ^ b
		low := diff & -diff
		return a&low != 0
	})
	return append(order, 0)
}

// Size returns the number of regions, 2^k.
func (u *Universe) Size() int { return len(u.order) }

// Names returns the declared set names in declaration order.
func (u *Universe) Names() []string { return append([]string(nil), u.names...) }

// Layout returns the region numbering in use.
func (u *Universe) Layout() Layout { return u.layout }

// Has reports whether name is a declared set.
func (u *Universe) Has(name string) bool {
	_, ok := u.index[name]
	return ok
}

// Members returns the regions that lie inside the named set.
func (u *Universe) Members(name string) (RegionSet, bool) {
	i, ok := u.index[name]
	if !ok {
		return RegionSet{}, false
	}
	return u.members[i], true
}

// Empty returns the empty region set.
func (u *Universe) Empty() RegionSet {
	return RegionSet{u: u, words: make([]uint64, (len(u.order)+63)/64)}
}

// All returns the set of every region.
func (u *Universe) All() RegionSet {
	return u.Empty().Complement()
}

// Membership returns, for region id, whether it lies inside each declared
// set, indexed like Names.
func (u *Universe) Membership(id int) ([]bool, error) {
	mask, err := u.mask(id)
	if err != nil {
		return nil, err
	}
	in := make([]bool, len(u.names))
	for i := range in {
		in[i] = mask&(1<<i) != 0
	}
	return in, nil
}

func (u *Universe) mask(id int) (uint32, error) {
	if id < 1 || id > len(u.order) {
		return 0, fmt.Errorf("%w: %d not in 1..%d", ErrRegionOutOfRange, id, len(u.order))
	}
	return u.order[id-1], nil
}

// FromIDs builds a region set from region ids. Order and duplicates are
// irrelevant; an id outside 1..Size is an error.
func (u *Universe) FromIDs(ids []int) (RegionSet, error) {
	s := u.Empty()
	for _, id := range ids {
		mask, err := u.mask(id)
		if err != nil {
			return RegionSet{}, err
		}
		s.set(mask)
	}
	return s, nil
}

// Minterm returns the expression denoting exactly region id: the
// intersection of every set, complemented where the region lies outside it.
func (u *Universe) Minterm(id int) (Expr, error) {
	mask, err := u.mask(id)
	if err != nil {
		return nil, err
	}
	var e Expr
	for i, name := range u.names {
		var term Expr = &Var{Name: name}
		if mask&(1<<i) == 0 {
			term = &Complement{X: term}
		}
		if e == nil {
			e = term
		} else {
			e = &Intersection{Left: e, Right: term}
		}
	}
	return e, nil
}

// RegionName renders region id as its minterm, e.g. "A∩B'∩C".
func (u *Universe) RegionName(id int) (string, error) {
	e, err := u.Minterm(id)
	if err != nil {
		return "", err
	}
	return e.String(), nil
}

// Expression returns the canonical expression denoting s: the union of the
// minterms of its regions in id order, or ∅ / 𝕌 at the extremes.
func (u *Universe) Expression(s RegionSet) Expr {
	u.check(s)
	switch s.Len() {
	case 0:
		return &Empty{}
	case u.Size():
		return &Universal{}
	}
	var e Expr
	for _, id := range s.IDs() {
		term, _ := u.Minterm(id)
		if e == nil {
			e = term
		} else {
			e = &Union{Left: e, Right: term}
		}
	}
	return e
}

// sameAs reports whether u and v number the same regions the same way.
func (u *Universe) sameAs(v *Universe) bool {
	if u == v {
		return true
	}
	if u == nil || v == nil || u.layout != v.layout || len(u.names) != len(v.names) {
		return false
	}
	for i := range u.names {
		if u.names[i] != v.names[i] {
			return false
		}
	}
	return true
}

func (u *Universe) check(s RegionSet) {
	if !u.sameAs(s.u) {
		panic("setexpr: region set belongs to a different universe")
	}
}
