package turns

import "testing"

func TestSet(t *testing.T) {
	h := new(History[string])
	t1, v1 := Turn(12), "after"
	t2, v2 := Turn(3), "before"

	// Test is about writing two values in reverse turn order and checking
	// that everything is as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Set(t1, v1)
	if h.Len() != 1 {
		t.Errorf("Set(t1, v1).Len() = %v want 1", h.Len())
	}

	h.Set(t2, v2)
	if h.Len() != 2 {
		t.Errorf("Set(t2, v2).Len() = %v want 2", h.Len())
	}

	if got, ok := h.Get(t1); !ok || got != v1 {
		t.Errorf("Get(%v) = %q, %v want %q, true", t1, got, ok, v1)
	}
	if got, ok := h.Get(t2); !ok || got != v2 {
		t.Errorf("Get(%v) = %q, %v want %q, true", t2, got, ok, v2)
	}
	// the turns in between stayed empty
	if _, ok := h.Get(7); ok {
		t.Errorf("Get(7) found a value in an unwritten turn")
	}
	if _, ok := h.Get(2); ok {
		t.Errorf("Get(2) found a value before the base turn")
	}
	if _, ok := h.Get(13); ok {
		t.Errorf("Get(13) found a value after the latest turn")
	}
}

func TestSet_Overwrite(t *testing.T) {
	h := new(History[int])
	h.Set(4, 10)
	h.Set(4, 20)
	if h.Len() != 1 {
		t.Errorf("Len() = %v want 1 after overwriting the same turn", h.Len())
	}
	if got, _ := h.Get(4); got != 20 {
		t.Errorf("Get(4) = %v want 20", got)
	}
}

func TestLatest(t *testing.T) {
	h := new(History[int])
	if on, v := h.Latest(); on != 0 || v != 0 {
		t.Errorf("empty Latest() = %v, %v want 0, 0", on, v)
	}
	h.Set(2, 100)
	h.Set(9, 900)
	h.Set(5, 500)
	on, v := h.Latest()
	if on != 9 || v != 900 {
		t.Errorf("Latest() = %v, %v want 9, 900", on, v)
	}
}

func TestValues(t *testing.T) {
	h := new(History[int])
	h.Set(8, 80)
	h.Set(1, 10)
	h.Set(4, 40)

	wantTurns := []Turn{1, 4, 8}
	wantValues := []int{10, 40, 80}
	i := 0
	for on, v := range h.Values() {
		if on != wantTurns[i] || v != wantValues[i] {
			t.Errorf("Values()[%d] = %v, %v want %v, %v", i, on, v, wantTurns[i], wantValues[i])
		}
		i++
	}
	if i != 3 {
		t.Errorf("Values() yielded %d pairs, want 3", i)
	}

	// the iterator is restartable
	i = 0
	for range h.Values() {
		i++
	}
	if i != 3 {
		t.Errorf("second Values() pass yielded %d pairs, want 3", i)
	}
}

func TestClear(t *testing.T) {
	h := new(History[int])
	h.Set(3, 1)
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %v want 0 after Clear", h.Len())
	}
	h.Set(1, 7)
	if got, ok := h.Get(1); !ok || got != 7 {
		t.Errorf("Get(1) = %v, %v want 7, true after reuse", got, ok)
	}
}
