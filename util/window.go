package util

// Window is a fixed-capacity sliding window. Appending to a full window
// evicts the oldest element. Reads are chronological, oldest first.
type Window[T any] struct {
	items []T
	head  int
	size  int
}

func NewWindow[T any](capacity int) *Window[T] {
	if capacity < 1 {
		panic("window capacity must be positive")
	}
	return &Window[T]{
		items: make([]T, capacity),
		head:  0,
		size:  0,
	}
}

// Append adds an element, evicting the oldest one when full.
func (w *Window[T]) Append(item T) {
	if w.size < len(w.items) {
		w.items[(w.head+w.size)%len(w.items)] = item
		w.size += 1
		return
	}
	w.items[w.head] = item
	w.head = (w.head + 1) % len(w.items)
}

func (w *Window[T]) Len() int {
	return w.size
}

func (w *Window[T]) Cap() int {
	return len(w.items)
}

// Get returns the i-th element, 0 being the oldest.
func (w *Window[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= w.size {
		return zero, false
	}
	return w.items[(w.head+i)%len(w.items)], true
}

// Tail returns up to the n most recent elements, oldest first.
func (w *Window[T]) Tail(n int) []T {
	if n > w.size {
		n = w.size
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = w.items[(w.head+w.size-n+i)%len(w.items)]
	}
	return out
}

// Slice returns all elements, oldest first.
func (w *Window[T]) Slice() []T {
	return w.Tail(w.size)
}
