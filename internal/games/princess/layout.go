package princess

import "github.com/vovakirdan/kiro-arcade/internal/core"

// Screen layout, in rows from the top.
const (
	statsTop      = 4
	activitiesTop = statsTop + int(statCount) + 2
	menuMarginX   = 2
)

// Layout returns one row rectangle per activity for a w by h screen.
// Rows are stacked without overlap. When the screen is too short the menu
// moves up so every row stays visible.
func Layout(w, h, n int) []core.Rect {
	top := activitiesTop
	if top+n > h {
		top = core.Max(0, h-n)
	}
	width := core.Max(1, w-2*menuMarginX)

	rects := make([]core.Rect, n)
	for i := range rects {
		rects[i] = core.NewRect(menuMarginX, top+i, width, 1)
	}
	return rects
}

// HitTest returns the index of the rectangle containing (x, y). When
// several contain the point the last one wins. It returns -1 for a miss.
func HitTest(rects []core.Rect, x, y int) int {
	hit := -1
	for i, r := range rects {
		if r.Contains(x, y) {
			hit = i
		}
	}
	return hit
}
