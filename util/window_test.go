package util

import (
	"testing"
)

func TestWindowAppendEvicts(t *testing.T) {
	w := NewWindow[int](3)
	for i := 1; i <= 5; i++ {
		w.Append(i)
	}
	if w.Len() != 3 {
		t.Errorf("expected length 3, got %d", w.Len())
	}
	expected := []int{3, 4, 5}
	obtained := w.Slice()
	for i := range expected {
		if obtained[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, obtained)
			break
		}
	}
}

func TestWindowTail(t *testing.T) {
	w := NewWindow[string](4)
	w.Append("a")
	w.Append("b")
	w.Append("c")

	tail := w.Tail(2)
	if len(tail) != 2 || tail[0] != "b" || tail[1] != "c" {
		t.Errorf("incorrect tail: %v", tail)
	}

	// asking for more than available returns what is there
	tail = w.Tail(10)
	if len(tail) != 3 || tail[0] != "a" {
		t.Errorf("incorrect oversized tail: %v", tail)
	}
}

func TestWindowGet(t *testing.T) {
	w := NewWindow[int](2)
	w.Append(1)
	w.Append(2)
	w.Append(3)

	v, ok := w.Get(0)
	if !ok || v != 2 {
		t.Errorf("expected oldest element 2, got %d", v)
	}
	if _, ok := w.Get(2); ok {
		t.Errorf("expected out of range get to fail")
	}
}
