package doom

import (
	"math"

	"github.com/vovakirdan/kiro-arcade/internal/core"
)

// Projection constants.
const (
	FOV       = math.Pi / 3
	RayStep   = 0.1
	MaxRange  = 20.0
	WallScale = 0.5

	MinShade     = 50.0
	MaxShade     = 255.0
	ShadeFalloff = 30.0
)

// maxSteps is the number of samples a ray takes before giving up.
var maxSteps = int(math.Round(MaxRange / RayStep))

// CastRay marches from (ox, oy) along angle in fixed steps and returns the
// Euclidean distance to the first sample inside a blocking cell. Rays that
// hit nothing within range return exactly MaxRange.
func CastRay(grid Grid, ox, oy, angle float64) float64 {
	sin, cos := math.Sincos(angle)
	x, y := ox, oy

	for i := 0; i < maxSteps; i++ {
		x += cos * RayStep
		y += sin * RayStep
		if grid.Blocked(x, y) {
			return math.Hypot(x-ox, y-oy)
		}
	}
	return MaxRange
}

// ColumnAngle returns the ray angle for screen column col of width.
func ColumnAngle(p Player, col, width int) float64 {
	return p.Angle - FOV/2 + float64(col)/float64(width)*FOV
}

// CastColumns casts one ray per screen column.
// Distances are not corrected for the ray's offset from the view direction.
func CastColumns(grid Grid, p Player, width int) []float64 {
	dists := make([]float64, width)
	for col := range dists {
		dists[col] = CastRay(grid, p.X, p.Y, ColumnAngle(p, col, width))
	}
	return dists
}

// WallHeight projects a wall distance onto a surface of the given height.
func WallHeight(dist, surfaceH float64) float64 {
	if dist <= 0 {
		return surfaceH
	}
	return surfaceH / dist * WallScale
}

// WallSpan returns the rows [top, bottom) covered by a wall slice of the
// given distance, centered vertically and clipped to the surface.
func WallSpan(dist float64, surfaceH int) (top, bottom int) {
	h := WallHeight(dist, float64(surfaceH))
	mid := float64(surfaceH) / 2
	top = int(math.Round(mid - h/2))
	bottom = int(math.Round(mid + h/2))
	return core.Clamp(top, 0, surfaceH), core.Clamp(bottom, 0, surfaceH)
}

// Shade returns the wall brightness for a distance, never below MinShade.
func Shade(dist float64) float64 {
	return math.Max(MinShade, MaxShade-dist*ShadeFalloff)
}
