package doom

import "math"

// Sprite projection constants.
const (
	SpriteScale = 0.3
	SpriteRange = 10.0
)

// Enemy is a stationary target. Dead enemies stay in the slice so indices
// remain stable.
type Enemy struct {
	X, Y   float64
	Health int
	Dead   bool
}

// DefaultEnemies returns the enemies placed in the default arena.
func DefaultEnemies() []Enemy {
	return []Enemy{
		{X: 4.5, Y: 3.5, Health: EnemyHealth},
		{X: 5.5, Y: 4.5, Health: EnemyHealth},
	}
}

// Sprite is an enemy projected onto the view surface.
type Sprite struct {
	X, Y float64 // Center on the surface
	Size float64 // Side length of the square, in surface units
	Dist float64
}

// ProjectSprite projects e onto a surface of w by h units as seen by p.
// It reports false when the enemy is dead, outside the field of view or
// beyond SpriteRange. Projection ignores walls entirely.
func ProjectSprite(p Player, e Enemy, w, h float64) (Sprite, bool) {
	if e.Dead {
		return Sprite{}, false
	}

	angle, dist := p.Bearing(e.X, e.Y)
	if math.Abs(angle) >= FOV/2 || dist >= SpriteRange || dist <= 0 {
		return Sprite{}, false
	}

	return Sprite{
		X:    (angle/FOV + 0.5) * w,
		Y:    h / 2,
		Size: h / dist * SpriteScale,
		Dist: dist,
	}, true
}
