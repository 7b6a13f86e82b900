package turns

import "iter"

// History stores a series of values, each associated with a specific turn.
//
// Turns are small consecutive integers, so the series is kept dense: a base
// turn plus one slot per turn up to the latest one written. Whether a turn
// has a value is a bounds check, not a map lookup, and iteration is always
// in turn order.
type History[T any] struct {
	base  Turn
	slots []slot[T]
	count int
}

type slot[T any] struct {
	value T
	set   bool
}

// Len returns the number of turns that have a value.
func (h *History[T]) Len() int { return h.count }

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.slots = h.slots[:0]
	h.base = 0
	h.count = 0
}

// Set records the value for a turn, overwriting any previous one. Turns in
// between two writes stay empty until written themselves.
func (h *History[T]) Set(on Turn, v T) {
	if len(h.slots) == 0 {
		h.base = on
		h.slots = append(h.slots, slot[T]{value: v, set: true})
		h.count++
		return
	}
	if on < h.base {
		// grow the front, keeping existing slots at their turn.
		grown := make([]slot[T], int(h.base-on)+len(h.slots))
		copy(grown[h.base-on:], h.slots)
		h.slots, h.base = grown, on
	}
	for int(on-h.base) >= len(h.slots) {
		h.slots = append(h.slots, slot[T]{})
	}
	s := &h.slots[on-h.base]
	if !s.set {
		h.count++
	}
	s.value, s.set = v, true
}

// Get returns the value at 'on' and true, or zero value and false.
func (h *History[T]) Get(on Turn) (T, bool) {
	i := int(on - h.base)
	if i < 0 || i >= len(h.slots) || !h.slots[i].set {
		var zero T
		return zero, false
	}
	return h.slots[i].value, true
}

// Latest returns the latest turn and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (on Turn, value T) {
	for i := len(h.slots) - 1; i >= 0; i-- {
		if h.slots[i].set {
			return h.base + Turn(i), h.slots[i].value
		}
	}
	return 0, *new(T)
}

// Values returns an iterator over all turn/value pairs in the history, in
// turn order.
func (h *History[T]) Values() iter.Seq2[Turn, T] {
	return func(yield func(Turn, T) bool) {
		for i := range h.slots {
			if !h.slots[i].set {
				continue
			}
			if !yield(h.base+Turn(i), h.slots[i].value) {
				return
			}
		}
	}
}
