package setexpr

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diegoholiveira/jsonlogic"
)

// ToJSONLogic converts e into a JSON Logic rule over boolean membership
// variables, one per named set. Applied to {"A": true, "B": false, ...} the
// rule yields true exactly when that membership vector lies in e.
func ToJSONLogic(e Expr) interface{} {
	switch n := e.(type) {
	case *Var:
		return map[string]interface{}{"var": n.Name}
	case *Empty:
		return false
	case *Universal:
		return true
	case *Complement:
		return map[string]interface{}{"!": []interface{}{ToJSONLogic(n.X)}}
	case *Union:
		return map[string]interface{}{"or": []interface{}{ToJSONLogic(n.Left), ToJSONLogic(n.Right)}}
	case *Intersection:
		return map[string]interface{}{"and": []interface{}{ToJSONLogic(n.Left), ToJSONLogic(n.Right)}}
	}
	panic(fmt.Sprintf("setexpr: jsonlogic: unknown node %T", e))
}

// EvaluateJSONLogic evaluates e by applying its JSON Logic rule to every
// region's membership vector. It agrees with Evaluate and exists so exported
// rules can be checked against the engine.
func EvaluateJSONLogic(e Expr, u *Universe) (RegionSet, error) {
	rule, err := json.Marshal(ToJSONLogic(e))
	if err != nil {
		return RegionSet{}, fmt.Errorf("encode rule: %w", err)
	}

	names := u.Names()
	out := u.Empty()
	for id := 1; id <= u.Size(); id++ {
		in, err := u.Membership(id)
		if err != nil {
			return RegionSet{}, err
		}
		vars := make(map[string]bool, len(names))
		for i, name := range names {
			vars[name] = in[i]
		}
		data, err := json.Marshal(vars)
		if err != nil {
			return RegionSet{}, fmt.Errorf("encode region %d: %w", id, err)
		}

		var result bytes.Buffer
		if err := jsonlogic.Apply(bytes.NewReader(rule), bytes.NewReader(data), &result); err != nil {
			return RegionSet{}, fmt.Errorf("apply rule to region %d: %w", id, err)
		}
		var member bool
		if err := json.Unmarshal(result.Bytes(), &member); err != nil {
			return RegionSet{}, fmt.Errorf("region %d: rule returned %q: %w", id, bytes.TrimSpace(result.Bytes()), err)
		}
		if member {
			out.set(u.order[id-1])
		}
	}
	return out, nil
}
