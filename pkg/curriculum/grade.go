package curriculum

import (
	"errors"
	"fmt"

	"gosets/pkg/setexpr"
)

// ErrNoExpectation is returned when a challenge has neither a target, a
// reference answer nor a count to grade against.
var ErrNoExpectation = errors.New("challenge has nothing to grade against")

// Result is the outcome of grading one learner answer.
type Result struct {
	// Valid is false when the answer could not be parsed; Err says why.
	Valid bool
	Err   error

	Correct bool

	Regions []int // regions the answer denotes
	Missing []int // expected regions the answer leaves out
	Extra   []int // regions the answer includes but should not
}

// expected returns the regions a challenge asks for, preferring an
// explicit target over the reference answer. ok is false for count-only
// challenges.
func expected(u *setexpr.Universe, ch *Challenge) (want setexpr.RegionSet, ok bool, err error) {
	if ch.Target != nil {
		want, err = u.FromIDs(ch.Target)
		if err != nil {
			return setexpr.RegionSet{}, false, fmt.Errorf("challenge %s: target: %w", ch.ID, err)
		}
		return want, true, nil
	}
	if ch.Answer != "" {
		want, err = setexpr.EvaluateString(ch.Answer, u)
		if err != nil {
			return setexpr.RegionSet{}, false, fmt.Errorf("challenge %s: reference answer: %w", ch.ID, err)
		}
		return want, true, nil
	}
	if ch.Count != nil {
		return setexpr.RegionSet{}, false, nil
	}
	return setexpr.RegionSet{}, false, fmt.Errorf("challenge %s: %w", ch.ID, ErrNoExpectation)
}

// Grade checks a learner's answer to ch. An unparsable answer is reported
// in the Result; the error is reserved for broken challenge data.
func Grade(u *setexpr.Universe, ch *Challenge, answer string) (Result, error) {
	want, hasSet, err := expected(u, ch)
	if err != nil {
		return Result{}, err
	}

	got, err := setexpr.EvaluateString(answer, u)
	if err != nil {
		return Result{Err: err}, nil
	}

	res := Result{Valid: true, Regions: got.IDs()}
	if hasSet {
		res.Missing = want.Difference(got).IDs()
		res.Extra = got.Difference(want).IDs()
		res.Correct = len(res.Missing) == 0 && len(res.Extra) == 0
	} else {
		res.Correct = true
	}
	if ch.Count != nil && got.Len() != *ch.Count {
		res.Correct = false
	}
	return res, nil
}
