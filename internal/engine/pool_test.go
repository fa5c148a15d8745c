package engine

import "testing"

func TestPoolFirstFitReuse(t *testing.T) {
	p := NewPool()

	for want := 0; want < Capacity; want++ {
		slot, ok := p.Acquire()
		if !ok || slot != want {
			t.Fatalf("Acquire() = %d, %v, expected %d, true", slot, ok, want)
		}
	}
	if !p.Full() || p.ActiveCount() != Capacity {
		t.Fatalf("pool should be full, ActiveCount() = %d", p.ActiveCount())
	}
	if slot, ok := p.Acquire(); ok {
		t.Errorf("Acquire() on a full pool = %d, expected failure", slot)
	}

	p.Release(3)
	p.Release(1)
	if p.ActiveCount() != 3 {
		t.Errorf("ActiveCount() = %d, expected 3", p.ActiveCount())
	}

	if slot, _ := p.Acquire(); slot != 1 {
		t.Errorf("Acquire() = %d, expected lowest free slot 1", slot)
	}
	if slot, _ := p.Acquire(); slot != 3 {
		t.Errorf("Acquire() = %d, expected slot 3", slot)
	}
}

func TestPoolReleaseIsIdempotent(t *testing.T) {
	p := NewPool()
	p.Acquire()
	p.Release(0)
	p.Release(0)

	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, expected 0", p.ActiveCount())
	}
}

func TestPoolLastActivated(t *testing.T) {
	p := NewPool()

	if _, ok := p.LastActivated(); ok {
		t.Error("empty pool should have no last activated obstacle")
	}

	p.Acquire()
	slot, _ := p.Acquire()
	p.Get(slot).Type = ObstacleFlying

	last, ok := p.LastActivated()
	if !ok || last.Slot != 1 || last.Type != ObstacleFlying {
		t.Errorf("LastActivated() = %+v, %v, expected slot 1 flying", last, ok)
	}

	p.Release(1)
	if _, ok := p.LastActivated(); ok {
		t.Error("released obstacle should not count as last activated")
	}
}

func TestPoolRightmostX(t *testing.T) {
	p := NewPool()
	if _, ok := p.RightmostX(); ok {
		t.Error("RightmostX() on an empty pool should report false")
	}

	for _, x := range []int{300, 720, 510} {
		slot, _ := p.Acquire()
		p.Get(slot).X = x
	}
	if x, ok := p.RightmostX(); !ok || x != 720 {
		t.Errorf("RightmostX() = %d, %v, expected 720", x, ok)
	}
}

func TestPoolAdvanceScoresOnce(t *testing.T) {
	p := NewPool()
	slot, _ := p.Acquire()
	*p.Get(slot) = Obstacle{Slot: slot, X: 85, Width: 20, Height: 40}

	// Trailing edge 105 -> 95 passes the player at x=100.
	passed, offscreen := p.Advance(10, 100)
	if passed != 1 || offscreen != 0 {
		t.Errorf("Advance() = %d, %d, expected 1 passed", passed, offscreen)
	}
	if p.Active(slot) {
		t.Error("scored obstacle should be freed")
	}

	passed, _ = p.Advance(10, 100)
	if passed != 0 {
		t.Errorf("second Advance() passed = %d, expected 0", passed)
	}
}

func TestPoolAdvanceNeverRescores(t *testing.T) {
	p := NewPool()
	slot, _ := p.Acquire()
	*p.Get(slot) = Obstacle{Slot: slot, X: 50, Width: 20, Height: 40, Scored: true}

	total, gone := 0, 0
	for i := 0; i < 20 && p.Active(slot); i++ {
		passed, offscreen := p.Advance(10, 100)
		total += passed
		gone += offscreen
	}

	if total != 0 {
		t.Errorf("already scored obstacle awarded %d more passes", total)
	}
	if gone != 1 || p.Active(slot) {
		t.Errorf("obstacle should leave through the left edge, offscreen=%d active=%v", gone, p.Active(slot))
	}
}

func TestPoolAdvanceOffscreen(t *testing.T) {
	p := NewPool()
	slot, _ := p.Acquire()
	// Already past the player and scored; the next move takes it off screen.
	*p.Get(slot) = Obstacle{Slot: slot, X: -5, Width: 20, Scored: true}

	passed, offscreen := p.Advance(20, 100)
	if passed != 0 || offscreen != 1 {
		t.Errorf("Advance() = %d, %d, expected 0 passed and 1 offscreen", passed, offscreen)
	}
}
