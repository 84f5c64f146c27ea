package curriculum

import (
	"fmt"
	"strings"

	"gosets/pkg/setexpr"
)

// Finding describes challenge data that disagrees with the engine.
type Finding struct {
	ChallengeID string
	Problem     string
	Missing     []int // regions the reference answer denotes but the target omits
	Extra       []int // regions the target lists but the reference answer does not denote
}

func (f Finding) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", f.ChallengeID, f.Problem)
	if len(f.Missing) > 0 {
		fmt.Fprintf(&sb, " (target omits %v)", f.Missing)
	}
	if len(f.Extra) > 0 {
		fmt.Fprintf(&sb, " (target wrongly lists %v)", f.Extra)
	}
	return sb.String()
}

// Audit evaluates every reference answer and reports the challenges whose
// authored target or count disagree with it. The error is reserved for a
// pack whose universe cannot be built.
func Audit(p *Pack) ([]Finding, error) {
	u, err := p.Universe()
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for i := range p.Challenges {
		ch := &p.Challenges[i]
		if ch.Answer == "" {
			findings = append(findings, Finding{ChallengeID: ch.ID, Problem: "no reference answer"})
			continue
		}
		got, err := setexpr.EvaluateString(ch.Answer, u)
		if err != nil {
			findings = append(findings, Finding{ChallengeID: ch.ID, Problem: "reference answer: " + err.Error()})
			continue
		}

		if ch.Target != nil {
			want, err := u.FromIDs(ch.Target)
			if err != nil {
				findings = append(findings, Finding{ChallengeID: ch.ID, Problem: "target: " + err.Error()})
			} else if !want.Equal(got) {
				findings = append(findings, Finding{
					ChallengeID: ch.ID,
					Problem:     "target does not match reference answer " + ch.Answer,
					Missing:     got.Difference(want).IDs(),
					Extra:       want.Difference(got).IDs(),
				})
			}
		}
		if ch.Count != nil && *ch.Count != got.Len() {
			findings = append(findings, Finding{
				ChallengeID: ch.ID,
				Problem:     fmt.Sprintf("count is %d but %s denotes %d regions", *ch.Count, ch.Answer, got.Len()),
			})
		}
	}
	return findings, nil
}

// Regenerate rewrites every challenge's target (and count, where one is
// given) from its reference answer, in place, and returns the ids of the
// challenges that changed. Count-only challenges keep their count-only
// form. It fails without modifying p if any reference answer is invalid.
func Regenerate(p *Pack) ([]string, error) {
	u, err := p.Universe()
	if err != nil {
		return nil, err
	}

	sets := make([]setexpr.RegionSet, len(p.Challenges))
	for i, ch := range p.Challenges {
		if ch.Answer == "" {
			continue
		}
		if sets[i], err = setexpr.EvaluateString(ch.Answer, u); err != nil {
			return nil, fmt.Errorf("challenge %s: reference answer: %w", ch.ID, err)
		}
	}

	var changed []string
	for i := range p.Challenges {
		ch := &p.Challenges[i]
		if ch.Answer == "" {
			continue
		}
		got := sets[i]
		dirty := false

		if ch.Target != nil || ch.Count == nil {
			ids := got.IDs()
			if ch.Target == nil || !equalInts(ch.Target, ids) {
				ch.Target = ids
				dirty = true
			}
		}
		if ch.Count != nil && *ch.Count != got.Len() {
			n := got.Len()
			ch.Count = &n
			dirty = true
		}
		if dirty {
			changed = append(changed, ch.ID)
		}
	}
	return changed, nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
