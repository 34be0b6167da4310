package doom

import (
	"math"
	"time"
)

// Combat constants.
const (
	EnemyHealth  = 100
	ShotDamage   = 50
	HitTolerance = 0.1 // Radians either side of the heading
	ShotCooldown = 300 * time.Millisecond
	KillPoints   = 100
)

// Shoot applies one hit-scan shot from p. Every live enemy within
// HitTolerance of the heading and closer than SpriteRange takes
// ShotDamage. Walls do not stop shots.
// Returns the number of enemies hit and how many of those died.
func Shoot(p Player, enemies []Enemy) (hits, kills int) {
	for i := range enemies {
		e := &enemies[i]
		if e.Dead {
			continue
		}
		angle, dist := p.Bearing(e.X, e.Y)
		if math.Abs(angle) >= HitTolerance || dist >= SpriteRange {
			continue
		}

		hits++
		e.Health -= ShotDamage
		if e.Health <= 0 {
			e.Dead = true
			kills++
		}
	}
	return hits, kills
}

// Alive counts enemies that are not dead.
func Alive(enemies []Enemy) int {
	n := 0
	for _, e := range enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}
