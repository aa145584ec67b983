package multistep

import (
	"errors"
	"testing"

	"github.com/zeu5/multistep-env/types"
)

// fakeSpace satisfies types.Space through embedding without being a
// kind the transform knows
type fakeSpace struct{ types.Space }

func TestRepeatedBox(t *testing.T) {
	box := types.NewBox(-1, 1, types.Float64, 3)
	repeated, err := RepeatedSpace(box, 4)
	if err != nil {
		t.Fatalf("repeat: %v", err)
	}
	out, ok := repeated.(*types.Box)
	if !ok {
		t.Fatalf("expected a box, got %T", repeated)
	}
	if len(out.Shape) != 2 || out.Shape[0] != 4 || out.Shape[1] != 3 {
		t.Errorf("expected shape (4, 3), got %v", out.Shape)
	}
	if out.Low.Len() != 12 || out.High.Len() != 12 {
		t.Errorf("expected bounds of length 12, got (%d, %d)", out.Low.Len(), out.High.Len())
	}
	for i := 0; i < out.Low.Len(); i++ {
		if out.Low.AtVec(i) != -1 || out.High.AtVec(i) != 1 {
			t.Errorf("bounds not tiled at index %d", i)
		}
	}
	if out.Dtype != types.Float64 {
		t.Errorf("expected dtype to carry over, got %v", out.Dtype)
	}
}

func TestRepeatedDict(t *testing.T) {
	dict := types.NewDict().
		Set("position", types.NewBox(0, 10, types.Int64, 2)).
		Set("sensors", types.NewBox(0, 255, types.Uint8, 4))
	repeated, err := RepeatedSpace(dict, 2)
	if err != nil {
		t.Fatalf("repeat: %v", err)
	}
	out, ok := repeated.(*types.Dict)
	if !ok {
		t.Fatalf("expected a dict, got %T", repeated)
	}
	if len(out.Keys) != 2 || out.Keys[0] != "position" || out.Keys[1] != "sensors" {
		t.Errorf("expected key order preserved, got %v", out.Keys)
	}
	pos := out.Spaces["position"].(*types.Box)
	if pos.Shape[0] != 2 || pos.Shape[1] != 2 {
		t.Errorf("expected position shape (2, 2), got %v", pos.Shape)
	}
	if pos.Dtype != types.Int64 {
		t.Errorf("expected dtype to carry over, got %v", pos.Dtype)
	}
}

func TestRepeatedUnsupported(t *testing.T) {
	_, err := RepeatedSpace(fakeSpace{}, 2)
	if !errors.Is(err, ErrUnsupportedSpace) {
		t.Errorf("expected ErrUnsupportedSpace, got %v", err)
	}
}
