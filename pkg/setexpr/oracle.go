package setexpr

import "fmt"

// Equivalent reports whether a and b denote the same regions of u. A parse
// failure on either side is returned as an error, never as false.
func Equivalent(a, b string, u *Universe) (bool, error) {
	sa, err := EvaluateString(a, u)
	if err != nil {
		return false, fmt.Errorf("left expression: %w", err)
	}
	sb, err := EvaluateString(b, u)
	if err != nil {
		return false, fmt.Errorf("right expression: %w", err)
	}
	return sa.Equal(sb), nil
}

// MatchesTarget reports whether expr denotes exactly the target region ids.
// The target may be in any order and contain duplicates.
func MatchesTarget(expr string, target []int, u *Universe) (bool, error) {
	want, err := u.FromIDs(target)
	if err != nil {
		return false, fmt.Errorf("target: %w", err)
	}
	got, err := EvaluateString(expr, u)
	if err != nil {
		return false, err
	}
	return got.Equal(want), nil
}

// HasCardinality reports whether expr denotes exactly n regions.
func HasCardinality(expr string, n int, u *Universe) (bool, error) {
	got, err := EvaluateString(expr, u)
	if err != nil {
		return false, err
	}
	return got.Len() == n, nil
}

// Difference lists the regions on which two expressions disagree.
type Difference struct {
	OnlyLeft  []int // region ids denoted by the left expression only
	OnlyRight []int // region ids denoted by the right expression only
}

// Same reports whether the two expressions agreed everywhere.
func (d Difference) Same() bool {
	return len(d.OnlyLeft) == 0 && len(d.OnlyRight) == 0
}

// Diff compares a and b region by region.
func Diff(a, b string, u *Universe) (Difference, error) {
	sa, err := EvaluateString(a, u)
	if err != nil {
		return Difference{}, fmt.Errorf("left expression: %w", err)
	}
	sb, err := EvaluateString(b, u)
	if err != nil {
		return Difference{}, fmt.Errorf("right expression: %w", err)
	}
	return Difference{
		OnlyLeft:  sa.Difference(sb).IDs(),
		OnlyRight: sb.Difference(sa).IDs(),
	}, nil
}
