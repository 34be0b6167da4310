package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/kiro-arcade/internal/core"
	"github.com/vovakirdan/kiro-arcade/internal/platform/tui/mocks"
	"github.com/vovakirdan/kiro-arcade/internal/storage"
)

// fakeGame ends after endAfter steps with a fixed score and outcome.
type fakeGame struct {
	endAfter int
	score    int
	outcome  string
	resets   int
	steps    int
	frames   []core.InputFrame
	state    core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.frames = nil
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.steps++
	if g.endAfter > 0 && g.steps >= g.endAfter {
		g.state = core.GameState{Score: g.score, GameOver: true, Outcome: g.outcome}
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState  { return g.state }

// heldGame reads movement as held state.
type heldGame struct{ fakeGame }

func (g *heldGame) HeldActions() []core.Action {
	return []core.Action{core.ActionUp}
}

var tickBase = time.Unix(1000, 0)

func newTestModel(g *fakeGame, rec ScoreRecorder) Model {
	m := NewModel(g, rec, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1},
		ModelOptions{Session: Session{ID: "s-1", Player: "alice"}})
	m.now = func() time.Time { return tickBase }
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func tickAt(t *testing.T, m Model, ms int) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg(tickBase.Add(time.Duration(ms)*time.Millisecond)))
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelSavesScoreOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockScoreRecorder(ctrl)
	rec.EXPECT().SaveScore(storage.ScoreRecord{
		GameID:    "fake",
		Score:     42,
		Outcome:   "done",
		Player:    "alice",
		SessionID: "s-1",
	}).Return(int64(1), nil).Times(1)

	g := &fakeGame{endAfter: 2, score: 42, outcome: "done"}
	m := newTestModel(g, rec)

	for i := range 5 {
		m = tickAt(t, m, i*16)
	}
	if !m.State().GameOver {
		t.Error("model should report game over")
	}
}

func TestModelSkipsEmptyResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockScoreRecorder(ctrl)
	rec.EXPECT().SaveScore(gomock.Any()).Times(0)

	m := newTestModel(&fakeGame{endAfter: 1}, rec)
	m = tickAt(t, m, 0)
	tickAt(t, m, 16)
}

func TestModelSavesOutcomeWithoutScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockScoreRecorder(ctrl)
	rec.EXPECT().SaveScore(gomock.Any()).DoAndReturn(func(r storage.ScoreRecord) (int64, error) {
		if r.Score != 0 || r.Outcome != "Commoner" {
			t.Errorf("unexpected record %+v", r)
		}
		return 1, nil
	})

	m := newTestModel(&fakeGame{endAfter: 1, outcome: "Commoner"}, rec)
	tickAt(t, m, 0)
}

func TestModelSaveErrorKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockScoreRecorder(ctrl)
	rec.EXPECT().SaveScore(gomock.Any()).Return(int64(0), errors.New("disk full")).Times(1)

	m := newTestModel(&fakeGame{endAfter: 1, score: 5}, rec)
	m = tickAt(t, m, 0)
	m, cmd := update(t, m, TickMsg(tickBase.Add(16*time.Millisecond)))
	if cmd == nil {
		t.Error("ticking should continue after a failed save")
	}
	if m.IsQuitting() {
		t.Error("a failed save must not quit")
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockScoreRecorder(ctrl)
	rec.EXPECT().SaveScore(gomock.Any()).Return(int64(1), nil).Times(2)

	g := &fakeGame{endAfter: 1, score: 7}
	m := newTestModel(g, rec)
	m = tickAt(t, m, 0)

	m, _ = update(t, m, runeKey('r'))
	m = tickAt(t, m, 16)
	if g.resets != 2 {
		t.Fatalf("R after game over should reset, resets=%d", g.resets)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}

	// The next game over is saved again
	tickAt(t, m, 32)
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	m = tickAt(t, m, 0)

	m, _ = update(t, m, runeKey('r'))
	tickAt(t, m, 16)
	if g.resets != 1 {
		t.Errorf("R during play should not reset, resets=%d", g.resets)
	}
	if g.frames[1].Has(core.ActionRestart) {
		t.Error("restart should not reach the game while playing")
	}
}

func TestModelSelfRestartRearmsSaving(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mocks.NewMockScoreRecorder(ctrl)
	rec.EXPECT().SaveScore(gomock.Any()).Return(int64(1), nil).Times(2)

	g := &fakeGame{endAfter: 1, score: 3}
	m := newTestModel(g, rec)
	m = tickAt(t, m, 0)

	// The game restarts on its own (like a flap after a crash)
	g.state = core.GameState{}
	g.steps = -1
	m = tickAt(t, m, 16)
	if m.State().GameOver {
		t.Fatal("game should be running again")
	}
	tickAt(t, m, 32)
}

func TestModelStampsTickTime(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	at := tickBase.Add(250 * time.Millisecond)
	m, _ = update(t, m, TickMsg(at))
	if !g.frames[0].At.Equal(at) {
		t.Errorf("frame time = %v, expected %v", g.frames[0].At, at)
	}
}

func TestModelPointer(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tickAt(t, m, 0)
	tickAt(t, m, 16)

	first, second := g.frames[0].Pointer, g.frames[1].Pointer
	if !first.Pressed || first.X != 3 || first.Y != 4 {
		t.Errorf("first frame pointer = %+v", first)
	}
	if second.Pressed || second.X != 3 {
		t.Errorf("press should last one frame and keep the position, got %+v", second)
	}
}

func TestModelKeysAreOneShotWithoutHolder(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)

	m, _ = update(t, m, runeKey('w'))
	m = tickAt(t, m, 16)
	tickAt(t, m, 32)

	if !g.frames[0].Has(core.ActionUp) || g.frames[1].Has(core.ActionUp) {
		t.Error("keys should apply to exactly one frame")
	}
}

func TestModelHeldKeys(t *testing.T) {
	g := &heldGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1},
		ModelOptions{HoldWindow: 150 * time.Millisecond})
	m.now = func() time.Time { return tickBase }
	m.Init()

	m, _ = update(t, m, runeKey('w'))
	for _, ms := range []int{16, 100, 150, 200} {
		m = tickAt(t, m, ms)
	}

	want := []bool{true, true, true, false}
	for i, w := range want {
		if got := g.frames[i].Has(core.ActionUp); got != w {
			t.Errorf("frame %d Up = %v, expected %v", i, got, w)
		}
	}

	// Space is not a held action
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tickAt(t, m, 210)
	tickAt(t, m, 220)
	if g.frames[5].Has(core.ActionJump) {
		t.Error("jump should not be held")
	}
}

func TestModelPauseReleasesHeldKeys(t *testing.T) {
	g := &heldGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1},
		ModelOptions{HoldWindow: 150 * time.Millisecond})
	m.now = func() time.Time { return tickBase }
	m.Init()

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('p'))
	m = tickAt(t, m, 16)
	tickAt(t, m, 32)

	if g.frames[1].Has(core.ActionUp) {
		t.Error("pausing should release held keys")
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	m = tickAt(t, m, 0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Error("back is ignored while the game is running")
	}

	over := newTestModel(&fakeGame{endAfter: 1}, nil)
	over = tickAt(t, over, 0)
	back, cmd := update(t, over, tea.KeyMsg{Type: tea.KeyEscape})
	if !back.BackToMenu() || cmd != nil {
		t.Error("embedded model should flag back without quitting")
	}

	over.standalone = true
	_, cmd = update(t, over, tea.KeyMsg{Type: tea.KeyEscape})
	if !isQuit(cmd) {
		t.Error("standalone model should quit on back")
	}

	m, cmd = update(t, m, runeKey('q'))
	if !m.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, nil)
	m = tickAt(t, m, 0)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets=%d", g.resets)
	}

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 8 || !strings.HasPrefix(lines[0], "fake") {
		t.Errorf("view should follow the new size, got %d lines", len(lines))
	}
}

func TestRecorderNilStore(t *testing.T) {
	if Recorder(nil) != nil {
		t.Error("a nil store should give a nil recorder")
	}
}

func TestNewSessionIDs(t *testing.T) {
	a, b := NewSession("alice"), NewSession("alice")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("session IDs should be unique, got %q and %q", a.ID, b.ID)
	}
	if a.Player != "alice" {
		t.Errorf("player = %q", a.Player)
	}
}
