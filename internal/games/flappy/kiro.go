package flappy

import "github.com/vovakirdan/kiro-arcade/internal/core"

// Kiro is the ghost the player steers. Coordinates are world units with the
// origin at the top-left of the 400x600 playfield.
type Kiro struct {
	X, Y     float64
	W, H     float64
	Velocity float64
}

// NewKiro places the ghost at its start position, vertically centered.
func NewKiro() Kiro {
	return Kiro{
		X: KiroX,
		Y: WorldH / 2,
		W: KiroSize,
		H: KiroSize,
	}
}

// Jump replaces the current velocity with the upward impulse.
func (k *Kiro) Jump() {
	k.Velocity = JumpPower
}

// Update integrates gravity for one tick and clamps the ghost to the
// playfield. It reports true when the ghost rests on the lower bound.
func (k *Kiro) Update() (grounded bool) {
	k.Velocity += Gravity
	k.Y += k.Velocity

	if k.Y < 0 {
		k.Y = 0
	}
	if floor := WorldH - k.H; k.Y >= floor {
		k.Y = floor
		return true
	}
	return false
}

// Bounds returns the ghost's bounding box.
func (k Kiro) Bounds() core.RectF {
	return core.RectF{X: k.X, Y: k.Y, W: k.W, H: k.H}
}
