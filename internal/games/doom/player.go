package doom

import "math"

// Movement constants, per tick.
const (
	MoveSpeed     = 0.05
	RotationSpeed = 0.05
)

// Player is the first-person viewer in grid units.
type Player struct {
	X, Y  float64
	Angle float64 // Heading in radians, 0 faces +X
}

// NewPlayer returns the player at the spawn point.
func NewPlayer() Player {
	return Player{X: 1.5, Y: 3.5, Angle: 0}
}

// Move steps the player dir units along its heading (negative walks
// backwards). The step is dropped when the destination cell blocks;
// there is no sliding along walls.
func (p *Player) Move(grid Grid, dir float64) bool {
	sin, cos := math.Sincos(p.Angle)
	nx := p.X + cos*dir
	ny := p.Y + sin*dir
	if grid.Blocked(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// Rotate turns the player by delta radians. The heading stays in (-π, π].
func (p *Player) Rotate(delta float64) {
	p.Angle = normalizeAngle(p.Angle + delta)
}

// Bearing returns the angle to (x, y) relative to the player's heading,
// in (-π, π], and the distance to it.
func (p Player) Bearing(x, y float64) (angle, dist float64) {
	dx, dy := x-p.X, y-p.Y
	return normalizeAngle(math.Atan2(dy, dx) - p.Angle), math.Hypot(dx, dy)
}

func normalizeAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
