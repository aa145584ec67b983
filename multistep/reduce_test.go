package multistep

import (
	"errors"
	"testing"
)

func TestReduceModes(t *testing.T) {
	rewards := []float64{1.0, 3.0, 2.0}

	reward, done, err := Reduce(rewards, []bool{false, false, true}, ReduceMax)
	if err != nil {
		t.Fatalf("max: %v", err)
	}
	if reward != 3.0 || !done {
		t.Errorf("expected (3.0, true), got (%v, %v)", reward, done)
	}

	reward, done, err = Reduce(rewards, []bool{false, false, false}, ReduceSum)
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if reward != 6.0 || done {
		t.Errorf("expected (6.0, false), got (%v, %v)", reward, done)
	}

	reward, _, err = Reduce(rewards, nil, ReduceMin)
	if err != nil {
		t.Fatalf("min: %v", err)
	}
	if reward != 1.0 {
		t.Errorf("expected 1.0, got %v", reward)
	}

	reward, _, err = Reduce(rewards, nil, ReduceMean)
	if err != nil {
		t.Fatalf("mean: %v", err)
	}
	if reward != 2.0 {
		t.Errorf("expected 2.0, got %v", reward)
	}
}

func TestReduceUnknownMode(t *testing.T) {
	_, _, err := Reduce([]float64{1}, nil, ReduceMode("median"))
	if !errors.Is(err, ErrUnsupportedReduction) {
		t.Errorf("expected ErrUnsupportedReduction, got %v", err)
	}
}

func TestReduceEmptyInput(t *testing.T) {
	_, _, err := Reduce(nil, nil, ReduceMax)
	if !errors.Is(err, ErrEmptyReduction) {
		t.Errorf("expected ErrEmptyReduction, got %v", err)
	}
}
