package setexpr

import (
	"math/bits"
	"strconv"
	"strings"
)

// RegionSet is a subset of a Universe's regions, stored as one bit per
// membership mask. Operations never modify their receiver, so a RegionSet
// behaves as a value. Combining sets from different universes panics.
//
// The zero RegionSet belongs to no universe and holds no regions. It is
// what the failing paths of ParseSetExpression and EvaluateString return,
// and every operation accepts it; combining it with a set from a real
// universe panics like any other universe mismatch.
type RegionSet struct {
	u     *Universe
	words []uint64
}

func (s RegionSet) has(mask uint32) bool {
	return s.words[mask/64]&(1<<(mask%64)) != 0
}

// set is only used while a fresh set is being built.
func (s RegionSet) set(mask uint32) {
	s.words[mask/64] |= 1 << (mask % 64)
}

func (s RegionSet) clone() RegionSet {
	return RegionSet{u: s.u, words: append([]uint64(nil), s.words...)}
}

// Universe returns the universe s is drawn from.
func (s RegionSet) Universe() *Universe { return s.u }

// Len returns the number of regions in s.
func (s RegionSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether s contains no region.
func (s RegionSet) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Contains reports whether region id is in s.
func (s RegionSet) Contains(id int) bool {
	if s.u == nil || id < 1 || id > s.u.Size() {
		return false
	}
	return s.has(s.u.order[id-1])
}

// IDs returns the region ids in s in ascending order.
func (s RegionSet) IDs() []int {
	if s.u == nil {
		return nil
	}
	ids := []int{}
	for i, mask := range s.u.order {
		if s.has(mask) {
			ids = append(ids, i+1)
		}
	}
	return ids
}

// Complement returns the regions of the universe not in s.
func (s RegionSet) Complement() RegionSet {
	if s.u == nil {
		return RegionSet{}
	}
	out := s.clone()
	for i := range out.words {
		out.words[i] = ^out.words[i]
	}
	// Clear the bits beyond 2^k in the last word.
	if n := s.u.Size(); n%64 != 0 {
		out.words[len(out.words)-1] &= 1<<(n%64) - 1
	}
	return out
}

// Union returns s ∪ o.
func (s RegionSet) Union(o RegionSet) RegionSet {
	s.u.check(o)
	out := s.clone()
	for i, w := range o.words {
		out.words[i] |= w
	}
	return out
}

// Intersect returns s ∩ o.
func (s RegionSet) Intersect(o RegionSet) RegionSet {
	s.u.check(o)
	out := s.clone()
	for i, w := range o.words {
		out.words[i] &= w
	}
	return out
}

// Difference returns the regions of s that are not in o.
func (s RegionSet) Difference(o RegionSet) RegionSet {
	s.u.check(o)
	out := s.clone()
	for i, w := range o.words {
		out.words[i] &^= w
	}
	return out
}

// Equal reports whether s and o hold the same regions of the same universe.
func (s RegionSet) Equal(o RegionSet) bool {
	if !s.u.sameAs(o.u) || len(s.words) != len(o.words) {
		return false
	}
	for i := range s.words {
		if s.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// String renders s as its region ids, e.g. "{5,7}".
func (s RegionSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range s.IDs() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	sb.WriteByte('}')
	return sb.String()
}
