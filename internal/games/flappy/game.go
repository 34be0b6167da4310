// Package flappy implements Flappy Kiro, an endless side scroller.
// The player keeps a ghost airborne and steers it through gaps in pipes.
package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/kiro-arcade/internal/core"
	"github.com/vovakirdan/kiro-arcade/internal/registry"
)

// Playfield and physics constants, in world units per tick at 60 FPS.
const (
	WorldW = 400.0
	WorldH = 600.0

	Gravity   = 0.5
	JumpPower = -8.0

	KiroX    = 50.0
	KiroSize = 30.0

	PipeSpeed     = 2.0
	PipeWidth     = 50.0
	PipeGap       = 150.0
	GapMargin     = 50.0
	SpawnInterval = 2000 * time.Millisecond
)

// Visual characters for rendering
const (
	KiroChar    = '█'
	EyeChar     = '•'
	PipeChar    = '█'
	PipeCapChar = '▀'
)

// Phase is the lifecycle of one play session.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhaseGameOver
)

// Game implements the Flappy Kiro game logic.
type Game struct {
	kiro   Kiro
	pipes  *PipeManager
	score  int
	phase  Phase
	paused bool
	clock  *core.FrameClock
}

// New creates a new Flappy Kiro game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Kiro"
}

// Controls describes the key bindings.
func (g *Game) Controls() string {
	return "Space/Up/Click: flap  P: pause  Q: quit"
}

// Reset initializes or restarts the game in the ready phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = cfg.NewClock()
	g.kiro = NewKiro()
	g.score = 0
	g.phase = PhaseReady
	g.paused = false

	if g.pipes == nil {
		g.pipes = NewPipeManager(cfg.Seed)
	} else {
		g.pipes.Reset(cfg.Seed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	now := g.clock.Advance(in.At)
	flap := in.HasAny(core.ActionJump, core.ActionUp) || in.Pointer.Pressed

	switch g.phase {
	case PhaseReady:
		if flap {
			g.phase = PhaseRunning
			g.pipes.Arm(now)
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if flap {
			g.restart(now)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if flap {
		g.kiro.Jump()
	}

	if g.kiro.Update() {
		g.phase = PhaseGameOver
	}

	points, hit := g.pipes.Update(g.kiro)
	g.score += points
	if hit {
		g.phase = PhaseGameOver
	}

	g.pipes.MaybeSpawn(now)

	return core.StepResult{State: g.State()}
}

// restart begins a new run immediately after a game over.
func (g *Game) restart(now time.Time) {
	g.kiro = NewKiro()
	g.pipes.Clear()
	g.pipes.Arm(now)
	g.score = 0
	g.phase = PhaseRunning
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := core.Viewport{WorldW: WorldW, WorldH: WorldH, ScreenW: dst.Width(), ScreenH: dst.Height()}

	for _, p := range g.pipes.Pipes() {
		g.drawPipe(dst, vp, p)
	}
	g.drawKiro(dst, vp)

	switch g.phase {
	case PhaseReady:
		dst.DrawMessageBox("FLAPPY KIRO", "Click or press Space to start")
		return
	case PhaseGameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Click or Space to restart", g.score))
		return
	}

	dst.DrawTextCenteredWithColor(0, fmt.Sprintf(" %d ", g.score), core.ColorBrightWhite)

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawPipe(dst *core.Screen, vp core.Viewport, p Pipe) {
	top := vp.ToScreen(core.RectF{X: p.X, Y: 0, W: PipeWidth, H: p.TopHeight})
	bottom := vp.ToScreen(core.RectF{X: p.X, Y: p.BottomY, W: PipeWidth, H: WorldH - p.BottomY})

	dst.DrawRectWithColor(top, PipeChar, core.ColorGreen)
	dst.DrawRectWithColor(bottom, PipeChar, core.ColorGreen)
	dst.DrawRectWithColor(core.NewRect(bottom.X, bottom.Y, bottom.W, 1), PipeCapChar, core.ColorBrightGreen)
}

func (g *Game) drawKiro(dst *core.Screen, vp core.Viewport) {
	r := vp.ToScreen(g.kiro.Bounds())
	dst.DrawRectWithColor(r, KiroChar, core.ColorBrightWhite)
	if r.W >= 4 {
		dst.SetWithColor(r.X+1, r.Y, EyeChar, core.ColorDarkGray)
		dst.SetWithColor(r.Right()-2, r.Y, EyeChar, core.ColorDarkGray)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
