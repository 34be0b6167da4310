package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/kiro-arcade/internal/core"
)

// Pipe is a pair of vertical obstacles separated by a gap.
type Pipe struct {
	X         float64 // Left edge
	TopHeight float64 // Bottom edge of the upper pipe (top of the gap)
	BottomY   float64 // Top edge of the lower pipe (bottom of the gap)
	Passed    bool    // Whether the ghost already scored this pipe
}

// NewPipe creates a pipe at x with a gap drawn uniformly inside the margins.
func NewPipe(x float64, rng *rand.Rand) Pipe {
	top := rng.Float64()*(WorldH-PipeGap-2*GapMargin) + GapMargin
	return Pipe{
		X:         x,
		TopHeight: top,
		BottomY:   top + PipeGap,
	}
}

// Span returns the pipe's horizontal extent as a full-height box.
func (p Pipe) Span() core.RectF {
	return core.RectF{X: p.X, Y: 0, W: PipeWidth, H: WorldH}
}

// Collides reports whether k overlaps the pipe horizontally while sticking
// out of the gap above or below.
func (p Pipe) Collides(k Kiro) bool {
	if !k.Bounds().OverlapsX(p.Span()) {
		return false
	}
	return k.Y < p.TopHeight || k.Y+k.H > p.BottomY
}

// CheckScore marks the pipe as passed the first time the ghost is fully
// beyond its right edge. It reports whether a point was earned.
func (p *Pipe) CheckScore(k Kiro) bool {
	if p.Passed || k.X <= p.X+PipeWidth {
		return false
	}
	p.Passed = true
	return true
}

// OffScreen reports whether the pipe has scrolled past the left edge.
func (p Pipe) OffScreen() bool {
	return p.X+PipeWidth < 0
}

// PipeManager spawns, scrolls, scores and prunes pipes.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	spawner core.Interval
}

// NewPipeManager creates a new pipe manager with the given RNG seed.
func NewPipeManager(seed int64) *PipeManager {
	pm := &PipeManager{
		pipes:   make([]Pipe, 0, 8),
		spawner: core.Interval{Period: SpawnInterval},
	}
	pm.Reset(seed)
	return pm
}

// Reset clears all pipes and reseeds the generator.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
}

// Clear drops every pipe but keeps the generator sequence going.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
}

// Arm restarts the spawn interval at now.
func (pm *PipeManager) Arm(now time.Time) {
	pm.spawner.Arm(now)
}

// Update scrolls every pipe one tick, scores passed pipes and tests for
// collisions. Off-screen pipes are compacted out of the slice.
// Returns the points earned this tick and whether the ghost hit a pipe.
func (pm *PipeManager) Update(k Kiro) (points int, hit bool) {
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= PipeSpeed
		if p.CheckScore(k) {
			points++
		}
		if p.Collides(k) {
			hit = true
		}
		if !p.OffScreen() {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept
	return points, hit
}

// MaybeSpawn appends a new pipe at the right edge when the spawn interval
// has elapsed at now.
func (pm *PipeManager) MaybeSpawn(now time.Time) bool {
	if !pm.spawner.Due(now) {
		return false
	}
	pm.pipes = append(pm.pipes, NewPipe(WorldW, pm.rng))
	return true
}

// Pipes returns the current pipes in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}
