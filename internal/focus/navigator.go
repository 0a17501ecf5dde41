// Package focus tracks which of an overlay's focusable targets is selected.
package focus

import "errors"

// ErrNoTargets is returned when a Navigator is built without any targets.
var ErrNoTargets = errors.New("focus: at least one target is required")

// Navigator is a cyclic index over a fixed, ordered list of focus targets.
// The index is always a valid position into the targets.
type Navigator[T any] struct {
	items []T
	index int
}

// New creates a Navigator positioned on the first target.
func New[T any](items ...T) (*Navigator[T], error) {
	if len(items) == 0 {
		return nil, ErrNoTargets
	}
	cp := make([]T, len(items))
	copy(cp, items)
	return &Navigator[T]{items: cp}, nil
}

// MustNew is like New but panics when items is empty.
func MustNew[T any](items ...T) *Navigator[T] {
	n, err := New(items...)
	if err != nil {
		panic(err)
	}
	return n
}

// Next advances to the following target, wrapping to the first.
func (n *Navigator[T]) Next() {
	n.index = (n.index + 1) % len(n.items)
}

// Prev moves to the preceding target, wrapping to the last.
func (n *Navigator[T]) Prev() {
	n.index = (n.index - 1 + len(n.items)) % len(n.items)
}

// Reset moves back to the first target.
func (n *Navigator[T]) Reset() {
	n.index = 0
}

// Index returns the position of the selected target.
func (n *Navigator[T]) Index() int {
	return n.index
}

// SetIndex jumps to position i. Out-of-range values wrap around so the
// index stays valid.
func (n *Navigator[T]) SetIndex(i int) {
	l := len(n.items)
	n.index = ((i % l) + l) % l
}

// Current returns the selected target.
func (n *Navigator[T]) Current() T {
	return n.items[n.index]
}

// Len returns the number of targets.
func (n *Navigator[T]) Len() int {
	return len(n.items)
}

// Items returns a copy of the targets in focus order.
func (n *Navigator[T]) Items() []T {
	cp := make([]T, len(n.items))
	copy(cp, n.items)
	return cp
}
