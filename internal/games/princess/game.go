// Package princess implements Princess Maker, a turn-based raising sim.
//
// Every month the player picks one activity for the daughter. Activities
// cost gold and shift her stats; at age 18 the highest qualifying stat
// decides her career.
package princess

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/kiro-arcade/internal/core"
	"github.com/vovakirdan/kiro-arcade/internal/registry"
)

// Rendering constants
const (
	barWidth    = 20
	labelWidth  = 14
	stressAlarm = 70
	BarChar     = '█'
	BarEmpty    = '░'
	CursorChar  = '▶'
)

var portrait = []string{
	"  .-\"\"-.  ",
	" / ^  ^ \\ ",
	" \\  __  / ",
	"  '-..-'  ",
	"   /||\\   ",
	"  / || \\  ",
	"    /\\    ",
}

// Game implements the Princess Maker game logic.
type Game struct {
	engine  *Engine
	catalog Catalog
	hover   int // Highlighted activity, -1 for none
	status  string
	width   int
	height  int
}

// New creates a new Princess Maker game instance.
func New() *Game {
	return &Game{catalog: DefaultCatalog(), hover: -1}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "princess"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Princess Maker"
}

// Controls describes the key bindings.
func (g *Game) Controls() string {
	return "Mouse/Up/Down: choose  Click/Enter: do activity  Q: quit"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewEngine(g.catalog)
	g.hover = -1
	g.status = ""
	g.width = cfg.ScreenW
	g.height = cfg.ScreenH
}

// Engine exposes the turn engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Hover returns the highlighted activity index, or -1.
func (g *Game) Hover() int {
	return g.hover
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine.GrownUp() {
		return core.StepResult{State: g.State()}
	}

	n := len(g.catalog.Activities)

	// Layout is derived from the current size on every pointer event
	if in.Pointer.Active() {
		rects := Layout(g.width, g.height, n)
		g.hover = HitTest(rects, in.Pointer.X, in.Pointer.Y)
		if in.Pointer.Pressed && g.hover >= 0 {
			g.perform(g.hover)
		}
	}

	switch {
	case in.Has(core.ActionUp):
		if g.hover <= 0 {
			g.hover = n - 1
		} else {
			g.hover--
		}
	case in.Has(core.ActionDown):
		g.hover = (g.hover + 1) % n
	}

	if in.HasAny(core.ActionConfirm, core.ActionJump) && g.hover >= 0 {
		g.perform(g.hover)
	}

	return core.StepResult{State: g.State()}
}

// perform runs the activity at index i and updates the status line.
func (g *Game) perform(i int) {
	if g.engine.GrownUp() {
		return
	}
	a := g.catalog.Activities[i]
	if !g.engine.Do(a) {
		g.status = fmt.Sprintf("Not enough gold for %s (%dg)", a.Name, a.Cost)
		return
	}
	g.status = fmt.Sprintf("Spent the month on %s.", a.Name)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.width, g.height = dst.Width(), dst.Height()

	e := g.engine

	dst.DrawTextWithColor(2, 0, "Princess Maker", core.ColorPink)
	dst.DrawHLine(0, 1, g.width, '─')
	dst.DrawText(2, 2, fmt.Sprintf("Age: %d | Month: %d/%d | Gold: %d", e.Age, e.Month, MonthsInYear, e.Gold))

	for i, s := range AllStats() {
		g.drawStat(dst, statsTop+i, s, e.Stats.Get(s))
	}

	if px := menuMarginX + labelWidth + barWidth + 10; g.width-px >= 12 {
		for i, line := range portrait {
			dst.DrawTextWithColor(px, statsTop+i, line, core.ColorPink)
		}
	}

	rects := Layout(g.width, g.height, len(g.catalog.Activities))
	if len(rects) > 0 && rects[0].Y == activitiesTop {
		dst.DrawTextWithColor(menuMarginX, activitiesTop-1, "Activities:", core.ColorBrightWhite)
	}
	for i, r := range rects {
		g.drawActivity(dst, r, g.catalog.Activities[i], i == g.hover)
	}

	if last := len(rects) - 1; last >= 0 && g.status != "" {
		dst.DrawTextWithColor(menuMarginX, rects[last].Bottom()+1, g.status, core.ColorYellow)
	}

	if e.GrownUp() {
		dst.DrawMessageBox("Your Daughter Has Grown Up!", fmt.Sprintf("Ending: %s  |  R to play again", e.Ending()))
	}
}

func (g *Game) drawStat(dst *core.Screen, y int, s Stat, value int) {
	color := core.ColorGreen
	if s == Stress {
		color = core.ColorOrange
		if value > stressAlarm {
			color = core.ColorRed
		}
	}

	x := menuMarginX
	dst.DrawText(x, y, s.Label()+":")
	x += labelWidth

	filled := value * barWidth / StatMax
	dst.DrawTextWithColor(x, y, strings.Repeat(string(BarChar), filled), color)
	dst.DrawTextWithColor(x+filled, y, strings.Repeat(string(BarEmpty), barWidth-filled), core.ColorDarkGray)
	dst.DrawText(x+barWidth+1, y, fmt.Sprintf("%d", value))
}

func (g *Game) drawActivity(dst *core.Screen, r core.Rect, a Activity, hovered bool) {
	color := core.ColorWhite
	if !g.engine.Affordable(a) {
		color = core.ColorGray
	}
	if hovered {
		color = core.ColorPink
		dst.SetWithColor(r.X, r.Y, CursorChar, color)
	}

	dst.DrawTextWithColor(r.X+2, r.Y, a.Name, color)
	cost := fmt.Sprintf("Cost: %dg", a.Cost)
	dst.DrawTextWithColor(r.Right()-len(cost), r.Y, cost, color)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Stats.Career(),
		GameOver: g.engine.GrownUp(),
		Outcome:  g.engine.Ending(),
	}
}

func init() {
	registry.Register("princess", func() registry.Game {
		return New()
	})
}
