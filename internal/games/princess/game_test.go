package princess

import (
	"strings"
	"testing"

	"github.com/vovakirdan/kiro-arcade/internal/core"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestLayoutRowsDoNotOverlap(t *testing.T) {
	rects := Layout(80, 24, 6)
	if len(rects) != 6 {
		t.Fatalf("got %d rects, expected 6", len(rects))
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				t.Errorf("rows %d and %d overlap: %+v %+v", i, j, rects[i], rects[j])
			}
		}
	}
	if rects[0].Y != activitiesTop {
		t.Errorf("menu starts at row %d, expected %d", rects[0].Y, activitiesTop)
	}
}

func TestLayoutShortScreen(t *testing.T) {
	rects := Layout(40, 10, 6)
	if last := rects[len(rects)-1]; last.Bottom() > 10 {
		t.Errorf("last row ends at %d on a 10-row screen", last.Bottom())
	}
}

func TestHitTest(t *testing.T) {
	rects := []core.Rect{
		core.NewRect(0, 0, 10, 2),
		core.NewRect(0, 1, 10, 2), // overlaps row 1 of the first
		core.NewRect(20, 0, 5, 1),
	}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first only", 3, 0, 0},
		{"overlap picks last", 3, 1, 1},
		{"second only", 3, 2, 1},
		{"third", 22, 0, 2},
		{"miss", 15, 0, -1},
		{"right edge is exclusive", 10, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitTest(rects, tc.x, tc.y); got != tc.want {
				t.Errorf("HitTest(%d, %d) = %d, expected %d", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestPointerHover(t *testing.T) {
	g := newTestGame()
	rects := Layout(80, 24, len(g.catalog.Activities))

	in := core.NewInputFrame()
	in.MovePointer(rects[3].X+1, rects[3].Y)
	g.Step(in)
	if g.Hover() != 3 {
		t.Fatalf("hover = %d, expected 3", g.Hover())
	}

	in = core.NewInputFrame()
	in.MovePointer(0, 0)
	g.Step(in)
	if g.Hover() != -1 {
		t.Errorf("moving off the menu should clear hover, got %d", g.Hover())
	}
}

func TestPointerPressPerformsActivity(t *testing.T) {
	g := newTestGame()
	rects := Layout(80, 24, len(g.catalog.Activities))

	// Press without a prior move: hover comes from the press position
	in := core.NewInputFrame()
	in.PressPointer(rects[0].X+5, rects[0].Y)
	g.Step(in)

	e := g.Engine()
	if e.Month != 2 || e.Gold != StartGold-20 || e.Stats.Get(Intelligence) != 15 {
		t.Errorf("Study not applied: month=%d gold=%d stats=%+v", e.Month, e.Gold, e.Stats)
	}

	in = core.NewInputFrame()
	in.PressPointer(0, 0)
	g.Step(in)
	if e.Month != 2 {
		t.Error("press outside the menu should not do anything")
	}
}

func TestKeyboardSelection(t *testing.T) {
	g := newTestGame()

	press := func(a core.Action) {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
	}

	press(core.ActionDown)
	if g.Hover() != 0 {
		t.Fatalf("first Down should highlight the first row, got %d", g.Hover())
	}
	press(core.ActionUp)
	if g.Hover() != len(g.catalog.Activities)-1 {
		t.Fatalf("Up from the top should wrap, got %d", g.Hover())
	}

	press(core.ActionConfirm)
	if g.Engine().Month != 2 || g.Engine().Stats.Get(Stress) != 0 {
		t.Errorf("Rest should take a month and keep stress at 0")
	}
}

func TestRejectedActivityStatus(t *testing.T) {
	g := newTestGame()
	g.Engine().Gold = 0

	in := core.NewInputFrame()
	rects := Layout(80, 24, len(g.catalog.Activities))
	in.PressPointer(rects[3].X, rects[3].Y)
	g.Step(in)

	if g.Engine().Month != 1 {
		t.Error("unaffordable activity should not take a month")
	}
	if !strings.Contains(g.status, "Not enough gold for Magic School") {
		t.Errorf("status = %q", g.status)
	}
}

func TestEndingState(t *testing.T) {
	g := newTestGame()
	e := g.Engine()
	e.Age = GrownUpAge - 1
	e.Month = MonthsInYear
	e.Stats = Stats{Magic: 65, Strength: 10, Intelligence: 10, Charm: 10}

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionConfirm)
	g.Step(in)

	state := g.State()
	if !state.GameOver || state.Outcome != "Court Wizard" {
		t.Fatalf("state = %+v, expected Court Wizard ending", state)
	}
	if state.Score != e.Stats.Career() {
		t.Errorf("score = %d, expected career sum %d", state.Score, e.Stats.Career())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Ending: Court Wizard") {
		t.Error("ending screen should name the career")
	}
}

func TestRenderFollowsScreenSize(t *testing.T) {
	g := newTestGame()
	screen := core.NewScreen(60, 30)
	g.Render(screen)

	if !strings.Contains(screen.Row(activitiesTop), "Study") {
		t.Errorf("row %d = %q", activitiesTop, screen.Row(activitiesTop))
	}
	if !strings.Contains(screen.Row(2), "Gold: 500") {
		t.Errorf("header row = %q", screen.Row(2))
	}

	// Pointer events use the size of the last render
	rects := Layout(60, 30, len(g.catalog.Activities))
	in := core.NewInputFrame()
	in.MovePointer(rects[5].Right()-1, rects[5].Y)
	g.Step(in)
	if g.Hover() != 5 {
		t.Errorf("hover = %d, expected 5", g.Hover())
	}
}

func TestStressBarColor(t *testing.T) {
	g := newTestGame()
	g.Engine().Stats.Add(Stress, 80)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	y := statsTop + int(Stress)
	if c := screen.GetCell(menuMarginX+labelWidth, y); c.Rune != BarChar || c.Color != core.ColorRed {
		t.Errorf("stress bar over %d should be red, got %q %v", stressAlarm, c.Rune, c.Color)
	}
}
