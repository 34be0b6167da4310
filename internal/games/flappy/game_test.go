package flappy

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/kiro-arcade/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
		Start:    time.Unix(1000, 0),
	}
}

func flapInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

// startedGame returns a game that already left the ready phase.
func startedGame(seed int64) *Game {
	g := New()
	g.Reset(testConfig(seed))
	g.Step(flapInput())
	return g
}

func TestFirstInputStartsWithoutFlapping(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	// Idle frames keep the ghost still
	g.Step(core.NewInputFrame())
	if g.Phase() != PhaseReady || g.kiro.Y != WorldH/2 {
		t.Fatalf("ready phase should not simulate, phase=%v y=%f", g.Phase(), g.kiro.Y)
	}

	g.Step(flapInput())
	if g.Phase() != PhaseRunning {
		t.Fatalf("first input should start the game, phase=%v", g.Phase())
	}
	if g.kiro.Velocity != 0 {
		t.Errorf("starting input must not flap, velocity=%f", g.kiro.Velocity)
	}
}

func TestPointerPressFlaps(t *testing.T) {
	g := startedGame(1)

	in := core.NewInputFrame()
	in.PressPointer(3, 3)
	g.Step(in)

	if g.kiro.Velocity != JumpPower+Gravity {
		t.Errorf("pointer press should flap, velocity=%f", g.kiro.Velocity)
	}
}

func TestJumpOverwritesVelocity(t *testing.T) {
	g := startedGame(1)
	g.kiro.Velocity = -3

	g.Step(flapInput())

	// Jump sets -8, then gravity adds 0.5 within the same tick
	if g.kiro.Velocity != JumpPower+Gravity {
		t.Errorf("velocity = %f, expected %f", g.kiro.Velocity, JumpPower+Gravity)
	}
}

func TestGravity(t *testing.T) {
	g := startedGame(1)
	g.kiro.Y = 100
	g.kiro.Velocity = 0

	g.Step(core.NewInputFrame())

	if g.kiro.Velocity != Gravity || g.kiro.Y != 100+Gravity {
		t.Errorf("after one tick y=%f v=%f, expected y=%f v=%f", g.kiro.Y, g.kiro.Velocity, 100+Gravity, Gravity)
	}
}

func TestKiroStaysInsideBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		k := NewKiro()
		for tick := 0; tick < 500; tick++ {
			if rng.Intn(4) == 0 {
				k.Jump()
			}
			k.Update()
			if k.Y < 0 || k.Y > WorldH-k.H {
				t.Fatalf("run %d tick %d: y=%f outside [0, %f]", run, tick, k.Y, WorldH-k.H)
			}
		}
	}
}

func TestCeilingClampIsNotFatal(t *testing.T) {
	k := NewKiro()
	k.Y = 2
	k.Jump()

	if k.Update() {
		t.Error("hitting the ceiling should not end the game")
	}
	if k.Y != 0 {
		t.Errorf("y = %f, expected clamp to 0", k.Y)
	}
}

func TestFloorEndsGameOnce(t *testing.T) {
	g := startedGame(1)

	var ended int
	for i := 0; i < 200; i++ {
		before := g.State().GameOver
		res := g.Step(core.NewInputFrame())
		if res.State.GameOver && !before {
			ended++
		}
	}

	if ended != 1 {
		t.Fatalf("game over transitions = %d, expected exactly 1", ended)
	}
	if g.kiro.Y != WorldH-KiroSize {
		t.Errorf("ghost should rest on the floor, y=%f", g.kiro.Y)
	}
}

func TestInputAfterGameOverRestarts(t *testing.T) {
	g := startedGame(1)
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	g.pipes.pipes = append(g.pipes.pipes, Pipe{X: 200, TopHeight: 100, BottomY: 250})
	g.score = 4

	g.Step(flapInput())

	if g.Phase() != PhaseRunning {
		t.Fatalf("input after game over should restart, phase=%v", g.Phase())
	}
	if g.score != 0 || len(g.pipes.Pipes()) != 0 {
		t.Errorf("restart should clear score and pipes, score=%d pipes=%d", g.score, len(g.pipes.Pipes()))
	}
	if g.kiro.Y != WorldH/2 || g.kiro.Velocity != 0 {
		t.Errorf("restart should reset the ghost, y=%f v=%f", g.kiro.Y, g.kiro.Velocity)
	}
}

func TestPipeCollision(t *testing.T) {
	k := NewKiro() // y=300, h=30

	tests := []struct {
		name string
		pipe Pipe
		want bool
	}{
		{"inside gap", Pipe{X: 40, TopHeight: 250, BottomY: 400}, false},
		{"above gap", Pipe{X: 40, TopHeight: 310, BottomY: 460}, true},
		{"below gap", Pipe{X: 40, TopHeight: 180, BottomY: 320}, true},
		{"not overlapping horizontally", Pipe{X: 200, TopHeight: 10, BottomY: 20}, false},
		{"already behind", Pipe{X: -10, TopHeight: 10, BottomY: 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pipe.Collides(k); got != tc.want {
				t.Errorf("Collides() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPipeHitEndsGame(t *testing.T) {
	g := startedGame(1)
	g.pipes.pipes = append(g.pipes.pipes, Pipe{X: KiroX, TopHeight: 0, BottomY: 100})

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Error("game should be over when the ghost hits a pipe")
	}
}

func TestScoreCountsEachPipeOnce(t *testing.T) {
	pm := NewPipeManager(1)
	k := NewKiro()
	pm.pipes = append(pm.pipes, Pipe{X: 0, TopHeight: 250, BottomY: 400})

	total := 0
	for i := 0; i < 30; i++ {
		points, _ := pm.Update(k)
		total += points
	}

	if total != 1 {
		t.Errorf("score = %d, expected exactly 1", total)
	}
}

func TestOffScreenPipesArePruned(t *testing.T) {
	pm := NewPipeManager(1)
	pm.pipes = append(pm.pipes,
		Pipe{X: -PipeWidth + 1, TopHeight: 100, BottomY: 250},
		Pipe{X: 300, TopHeight: 100, BottomY: 250},
	)

	pm.Update(Kiro{X: 1000, W: KiroSize, H: KiroSize})

	pipes := pm.Pipes()
	if len(pipes) != 1 || pipes[0].X != 300-PipeSpeed {
		t.Errorf("expected only the on-screen pipe to remain, got %+v", pipes)
	}
}

func TestSpawnerFollowsWallClock(t *testing.T) {
	start := time.Unix(0, 0)
	pm := NewPipeManager(3)
	pm.Arm(start)

	// A burst of frames inside one interval spawns nothing
	for ms := 0; ms <= 2000; ms += 16 {
		if pm.MaybeSpawn(start.Add(time.Duration(ms) * time.Millisecond)) {
			t.Fatalf("spawned early at %dms", ms)
		}
	}

	if !pm.MaybeSpawn(start.Add(2017 * time.Millisecond)) {
		t.Fatal("expected a spawn after 2000ms")
	}
	if p := pm.Pipes()[0]; p.X != WorldW {
		t.Errorf("new pipe should enter at the right edge, x=%f", p.X)
	}

	// Slow frames still spawn only once per elapsed interval check
	if pm.MaybeSpawn(start.Add(3 * time.Second)) {
		t.Error("spawn interval should restart from the last spawn")
	}
}

func TestGapStaysInsideMargins(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		p := NewPipe(WorldW, rng)
		if p.TopHeight < GapMargin || p.BottomY > WorldH-GapMargin {
			t.Fatalf("gap [%f, %f] outside margins", p.TopHeight, p.BottomY)
		}
		if math.Abs(p.BottomY-p.TopHeight-PipeGap) > 1e-9 {
			t.Fatalf("gap height = %f, expected %f", p.BottomY-p.TopHeight, PipeGap)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%18 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() *Game {
		g := New()
		g.Reset(testConfig(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.State() != g2.State() || g1.kiro != g2.kiro {
		t.Fatalf("states differ: %+v/%+v vs %+v/%+v", g1.State(), g1.kiro, g2.State(), g2.kiro)
	}
	p1, p2 := g1.pipes.Pipes(), g2.pipes.Pipes()
	if len(p1) != len(p2) {
		t.Fatalf("pipe counts differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}

func TestGamePause(t *testing.T) {
	g := startedGame(1)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	y := g.kiro.Y
	g.Step(core.NewInputFrame())
	if g.kiro.Y != y {
		t.Error("physics should not run while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestGameRender(t *testing.T) {
	g := startedGame(1)
	g.pipes.pipes = append(g.pipes.pipes, Pipe{X: 200, TopHeight: 200, BottomY: 350})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Pipe at x=200 maps to column 40
	if c := screen.GetCell(40, 1); c.Rune != PipeChar || c.Color != core.ColorGreen {
		t.Errorf("upper pipe not drawn at column 40, got %+v", c)
	}
	// Ghost at (50, 300) maps to (10, 12)
	if c := screen.GetCell(10, 12); c.Rune != KiroChar {
		t.Errorf("ghost not drawn at (10, 12), got %q", c.Rune)
	}
}
