package engine

import (
	"github.com/vovakirdan/dinorun/internal/catalog"
	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

// Body is the physics state of the controlled runner.
type Body struct {
	X         int     // Fixed lane offset (left edge)
	Y         float64 // Top edge in world pixels
	VelocityY float64 // Positive = falling
	Width     int
	Height    int // Current height, reduced while ducking
	Jumping   bool
	Ducking   bool
	Lives     int

	baseHeight    int
	duckReduction int
	groundY       int
	gravity       float64 // Per-tick acceleration with the character multiplier applied
	jumpVelocity  float64 // Initial velocity of an accepted jump
}

// NewBody places a standing body on the ground for the given character.
func NewBody(cfg config.Config, ch catalog.CharacterProfile) Body {
	b := Body{
		X:             cfg.Player.X,
		Width:         cfg.Player.Width,
		Height:        cfg.Player.Height,
		Lives:         ch.StartingLives,
		baseHeight:    cfg.Player.Height,
		duckReduction: cfg.Player.DuckReduction,
		groundY:       cfg.Screen.GroundY,
		gravity:       cfg.Physics.Gravity * ch.GravityMultiplier,
		// Jump strength is truncated to whole pixels per tick: 18 * 1.3 -> 23.
		jumpVelocity: -float64(int(cfg.Physics.JumpStrength * ch.JumpMultiplier)),
	}
	b.Y = b.floor()
	return b
}

// Jump starts a jump. It is ignored while already airborne.
func (b *Body) Jump() bool {
	if b.Jumping {
		return false
	}
	b.VelocityY = b.jumpVelocity
	b.Jumping = true
	return true
}

// SetDucking switches posture. The feet stay where they are until the
// next Step, which pins a ducking body to the ground.
func (b *Body) SetDucking(ducking bool) {
	if b.Ducking == ducking {
		return
	}
	bottom := b.Y + float64(b.Height)
	b.Ducking = ducking
	if ducking {
		b.Height = b.baseHeight - b.duckReduction
	} else {
		b.Height = b.baseHeight
	}
	b.Y = bottom - float64(b.Height)
	b.clampGround()
}

// Step applies one tick of gravity and the ground clamp. A ducking body is
// held on the ground; its velocity keeps integrating, so Jumping stays set
// until the jump would have landed.
func (b *Body) Step() {
	b.VelocityY += b.gravity
	b.Y += b.VelocityY
	b.clampGround()
	if b.Ducking {
		b.Y = b.floor()
	}
}

func (b *Body) floor() float64 {
	return float64(b.groundY - b.Height)
}

func (b *Body) clampGround() {
	if f := b.floor(); b.Y >= f {
		b.Y = f
		b.VelocityY = 0
		b.Jumping = false
	}
}

// Grounded reports whether the body rests on the ground.
func (b *Body) Grounded() bool {
	return b.Y >= b.floor()
}

// Rect returns the collision box for the current posture.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, int(b.Y), b.Width, b.Height)
}
