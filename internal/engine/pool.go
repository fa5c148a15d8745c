package engine

import (
	"math/bits"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Capacity is the fixed number of obstacle slots.
const Capacity = config.PoolCapacity

const fullMask = uint8(1<<Capacity - 1)

// ObstacleType is the kind of obstacle occupying a slot.
type ObstacleType int

const (
	ObstacleLow ObstacleType = iota
	ObstacleTall
	ObstacleFlying
	numObstacleTypes
)

// String returns the obstacle type name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleLow:
		return "low"
	case ObstacleTall:
		return "tall"
	case ObstacleFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// MarshalText encodes the type by name.
func (t ObstacleType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Ground reports whether the obstacle stands on the ground.
func (t ObstacleType) Ground() bool {
	return t == ObstacleLow || t == ObstacleTall
}

// Obstacle is the contents of one pool slot.
type Obstacle struct {
	Slot   int
	Type   ObstacleType
	X, Y   int // Top-left corner
	Width  int
	Height int
	Scored bool // Points already awarded
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Pool is a fixed slot arena with an occupancy bitmap. It never grows.
type Pool struct {
	slots    [Capacity]Obstacle
	occupied uint8
	lastSlot int // Most recently acquired slot, -1 if none
}

// NewPool returns an empty pool.
func NewPool() Pool {
	return Pool{lastSlot: -1}
}

// Reset frees every slot.
func (p *Pool) Reset() {
	*p = NewPool()
}

// Acquire claims the lowest free slot.
func (p *Pool) Acquire() (int, bool) {
	free := ^p.occupied & fullMask
	if free == 0 {
		return -1, false
	}
	slot := bits.TrailingZeros8(free)
	p.occupied |= 1 << slot
	p.slots[slot] = Obstacle{Slot: slot}
	p.lastSlot = slot
	return slot, true
}

// Release frees a slot. Releasing a free slot is a no-op.
func (p *Pool) Release(slot int) {
	p.occupied &^= 1 << slot
}

// Active reports whether slot holds a live obstacle.
func (p *Pool) Active(slot int) bool {
	return slot >= 0 && slot < Capacity && p.occupied&(1<<slot) != 0
}

// ActiveCount returns the number of live obstacles.
func (p *Pool) ActiveCount() int {
	return bits.OnesCount8(p.occupied)
}

// Full reports whether no slot is free.
func (p *Pool) Full() bool {
	return p.occupied == fullMask
}

// Get returns the obstacle stored in slot. The slot must be active.
func (p *Pool) Get(slot int) *Obstacle {
	return &p.slots[slot]
}

// Each calls fn for every live obstacle in slot order. fn may release the
// slot it is given.
func (p *Pool) Each(fn func(o *Obstacle)) {
	for slot := 0; slot < Capacity; slot++ {
		if p.Active(slot) {
			fn(&p.slots[slot])
		}
	}
}

// LastActivated returns the most recently activated obstacle if it is
// still live.
func (p *Pool) LastActivated() (Obstacle, bool) {
	if !p.Active(p.lastSlot) {
		return Obstacle{}, false
	}
	return p.slots[p.lastSlot], true
}

// RightmostX returns the largest x among live obstacles.
func (p *Pool) RightmostX() (int, bool) {
	x, found := 0, false
	p.Each(func(o *Obstacle) {
		if !found || o.X > x {
			x, found = o.X, true
		}
	})
	return x, found
}

// Advance scrolls every live obstacle left by speed. Obstacles fully past
// the left edge are freed without points. An unscored obstacle whose
// trailing edge has passed playerX is marked scored and freed; passed
// counts those.
func (p *Pool) Advance(speed, playerX int) (passed, offscreen int) {
	p.Each(func(o *Obstacle) {
		o.X -= speed
		switch {
		case o.X+o.Width < 0:
			p.Release(o.Slot)
			offscreen++
		case !o.Scored && o.X+o.Width < playerX:
			o.Scored = true
			p.Release(o.Slot)
			passed++
		}
	})
	return passed, offscreen
}
