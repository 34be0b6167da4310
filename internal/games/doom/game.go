// Package doom implements Doom Shooter, a first-person raycasting arena.
//
// Walls are found by marching a ray per screen column through an occupancy
// grid. Enemies are billboards drawn over the walls and are taken down with
// a hit-scan weapon.
package doom

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/kiro-arcade/internal/core"
	"github.com/vovakirdan/kiro-arcade/internal/registry"
)

// Visual characters for rendering
const (
	CeilingChar   = ' '
	FloorChar     = '·'
	EnemyChar     = '█'
	CrosshairChar = '+'
)

// wallRunes are ordered from dimmest to brightest.
var wallRunes = [...]rune{'░', '▒', '▓', '█'}

// Game implements the Doom Shooter game logic.
type Game struct {
	grid     Grid
	player   Player
	enemies  []Enemy
	kills    int
	cooldown core.Cooldown
	clock    *core.FrameClock
	paused   bool
	cleared  bool
}

// New creates a new Doom Shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "doom"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Doom Shooter"
}

// Controls describes the key bindings.
func (g *Game) Controls() string {
	return "W/S: move  A/D: turn  Space/F/Click: shoot  P: pause  Q: quit"
}

// HeldActions lists the movement actions that repeat while a key is down.
func (g *Game) HeldActions() []core.Action {
	return []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = cfg.NewClock()
	g.grid = DefaultGrid()
	g.player = NewPlayer()
	g.enemies = DefaultEnemies()
	g.kills = 0
	g.cooldown = core.Cooldown{Duration: ShotCooldown}
	g.paused = false
	g.cleared = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.clock.Advance(in.At)

	if g.cleared {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.HasAny(core.ActionJump, core.ActionFire) || in.Pointer.Pressed {
		g.fire(now)
	}

	if in.Has(core.ActionUp) {
		g.player.Move(g.grid, MoveSpeed)
	}
	if in.Has(core.ActionDown) {
		g.player.Move(g.grid, -MoveSpeed)
	}
	if in.Has(core.ActionLeft) {
		g.player.Rotate(-RotationSpeed)
	}
	if in.Has(core.ActionRight) {
		g.player.Rotate(RotationSpeed)
	}

	return core.StepResult{State: g.State()}
}

// fire shoots unless the weapon is still cooling down.
func (g *Game) fire(now time.Time) bool {
	if !g.cooldown.Ready(now) {
		return false
	}
	g.cooldown.Trigger(now)

	_, kills := Shoot(g.player, g.enemies)
	g.kills += kills
	if Alive(g.enemies) == 0 {
		g.cleared = true
	}
	return true
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Enemies returns the enemies, dead ones included.
func (g *Game) Enemies() []Enemy {
	return g.enemies
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	viewH := dst.Height()
	if viewH > 1 {
		viewH-- // bottom row holds the HUD
	}

	g.drawWalls(dst, w, viewH)
	g.drawEnemies(dst, w, viewH)
	g.drawCrosshair(dst, w, viewH)
	g.drawHUD(dst, viewH)

	if g.cleared {
		dst.DrawMessageBox("AREA CLEARED", fmt.Sprintf("Score: %d  |  R to play again", g.State().Score))
		return
	}
	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawWalls(dst *core.Screen, w, viewH int) {
	mid := viewH / 2
	for col, dist := range CastColumns(g.grid, g.player, w) {
		top, bottom := WallSpan(dist, viewH)
		for y := 0; y < viewH; y++ {
			switch {
			case y >= top && y < bottom:
				shade := Shade(dist)
				dst.SetWithColor(col, y, wallRune(shade), core.GrayLevel(shade))
			case y < mid:
				dst.Set(col, y, CeilingChar)
			default:
				dst.SetWithColor(col, y, FloorChar, core.ColorDarkGray)
			}
		}
	}
}

// drawEnemies draws every visible enemy over the walls. Sprites are twice
// as wide in cells as they are tall so they look square.
func (g *Game) drawEnemies(dst *core.Screen, w, viewH int) {
	for _, e := range g.enemies {
		s, ok := ProjectSprite(g.player, e, float64(w), float64(viewH))
		if !ok {
			continue
		}
		// Up close the projected size grows without bound.
		sw := core.ClampF(s.Size*2, 1, float64(2*w))
		sh := core.ClampF(s.Size, 1, float64(2*viewH))
		r := core.NewRect(
			int(math.Round(s.X-sw/2)),
			int(math.Round(s.Y-sh/2)),
			int(math.Round(sw)),
			int(math.Round(sh)),
		)
		color := core.ColorRed
		if e.Health < EnemyHealth {
			color = core.ColorBrightRed
		}
		dst.DrawRectWithColor(r.Clip(core.NewRect(0, 0, w, viewH)), EnemyChar, color)
	}
}

func (g *Game) drawCrosshair(dst *core.Screen, w, viewH int) {
	cx, cy := w/2, viewH/2
	dst.SetWithColor(cx, cy, CrosshairChar, core.ColorBrightWhite)
	dst.SetWithColor(cx-1, cy, '-', core.ColorBrightWhite)
	dst.SetWithColor(cx+1, cy, '-', core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen, row int) {
	weapon := "READY"
	color := core.ColorBrightGreen
	if !g.cooldown.Ready(g.clock.Now()) {
		weapon = "RELOAD"
		color = core.ColorYellow
	}
	hud := fmt.Sprintf(" Kills: %d/%d  Score: %d  Weapon: %s ", g.kills, len(g.enemies), g.State().Score, weapon)
	dst.DrawTextWithColor(0, row, hud, color)
}

// wallRune picks a block character for a wall brightness.
func wallRune(shade float64) rune {
	idx := int((shade - MinShade) / (MaxShade - MinShade + 1) * float64(len(wallRunes)))
	return wallRunes[core.Clamp(idx, 0, len(wallRunes)-1)]
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		Score:    g.kills * KillPoints,
		GameOver: g.cleared,
		Paused:   g.paused,
	}
	if g.cleared {
		state.Outcome = "area cleared"
	}
	return state
}

func init() {
	registry.Register("doom", func() registry.Game {
		return New()
	})
}
