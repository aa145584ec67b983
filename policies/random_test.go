package policies

import (
	"testing"

	"github.com/zeu5/multistep-env/types"
)

func TestRandomPolicySamplesWithinBounds(t *testing.T) {
	space := types.NewBox(-2, 2, types.Float64, 3)
	policy := NewRandomPolicyWithSeed(space, 42)

	for i := 0; i < 100; i++ {
		action, ok := policy.NextAction(i, types.Stacked{})
		if !ok {
			t.Fatalf("expected an action")
		}
		if action.Vec == nil || action.Vec.Len() != 3 {
			t.Fatalf("expected a 3 element action")
		}
		for j := 0; j < 3; j++ {
			v := action.Vec.AtVec(j)
			if v < -2 || v > 2 {
				t.Errorf("sample %v out of bounds", v)
			}
		}
	}
}

func TestRandomPolicyReachesIntegerBounds(t *testing.T) {
	// direction-style box: every value including both bounds must come up
	space := types.NewBox(0, 5, types.Int64, 1)
	policy := NewRandomPolicyWithSeed(space, 11)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		action, ok := policy.NextAction(i, types.Stacked{})
		if !ok {
			t.Fatalf("expected an action")
		}
		v := action.Vec.AtVec(0)
		if v != float64(int(v)) || v < 0 || v > 5 {
			t.Fatalf("sample %v out of the integer box", v)
		}
		seen[int(v)] = true
	}
	for v := 0; v <= 5; v++ {
		if !seen[v] {
			t.Errorf("value %d never sampled", v)
		}
	}
}

func TestRandomPolicySeedReproducible(t *testing.T) {
	space := types.NewBox(-1, 1, types.Float64, 2)
	a := NewRandomPolicyWithSeed(space, 9)
	b := NewRandomPolicyWithSeed(space, 9)

	for i := 0; i < 20; i++ {
		actionA, _ := a.NextAction(i, types.Stacked{})
		actionB, _ := b.NextAction(i, types.Stacked{})
		for j := 0; j < 2; j++ {
			if actionA.Vec.AtVec(j) != actionB.Vec.AtVec(j) {
				t.Fatalf("same seed diverged at step %d", i)
			}
		}
	}
}

func TestRandomPolicySamplesDict(t *testing.T) {
	space := types.NewDict().
		Set("move", types.NewBox(0, 5, types.Int64, 1)).
		Set("force", types.NewBox(0, 1, types.Float64, 2))
	policy := NewRandomPolicyWithSeed(space, 7)

	action, ok := policy.NextAction(0, types.Stacked{})
	if !ok {
		t.Fatalf("expected an action")
	}
	move, ok := action.Record["move"]
	if !ok {
		t.Fatalf("missing move field")
	}
	v := move.AtVec(0)
	if v != float64(int(v)) {
		t.Errorf("expected an integral move sample, got %v", v)
	}
	if _, ok := action.Record["force"]; !ok {
		t.Errorf("missing force field")
	}
}
