package setexpr

// The functions below serve presentation callers that work with the
// curriculum universe (sets A, B, C in the three-set Venn numbering) and
// only need to tell a valid expression from an invalid one.

// ParseSetExpression evaluates text in the default universe. The boolean is
// false for any lexical, syntax or semantic failure.
func ParseSetExpression(text string) (RegionSet, bool) {
	s, err := EvaluateString(text, DefaultUniverse())
	if err != nil {
		return RegionSet{}, false
	}
	return s, true
}

// ElementsToRegions returns the ids (1..2^k) of the regions in s, ascending.
func ElementsToRegions(s RegionSet) []int {
	return s.IDs()
}

// AreExpressionsEquivalent reports whether a and b denote the same regions
// of the default universe. It is false if either side fails to parse.
func AreExpressionsEquivalent(a, b string) bool {
	ok, err := Equivalent(a, b, DefaultUniverse())
	return err == nil && ok
}
