package princess

// Calendar and economy constants.
const (
	StartAge     = 10
	StartMonth   = 1
	StartGold    = 500
	GrownUpAge   = 18
	Stipend      = 200
	MonthsInYear = 12
)

// Engine runs the monthly turn loop. Each accepted activity consumes one
// month.
type Engine struct {
	Age   int
	Month int
	Gold  int
	Stats Stats

	catalog Catalog
	ending  string
}

// NewEngine starts a new upbringing with the given catalog.
func NewEngine(cat Catalog) *Engine {
	return &Engine{
		Age:     StartAge,
		Month:   StartMonth,
		Gold:    StartGold,
		Stats:   DefaultStats(),
		catalog: cat,
	}
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// GrownUp reports whether the game has reached its ending.
func (e *Engine) GrownUp() bool {
	return e.Age >= GrownUpAge
}

// Affordable reports whether a can be paid for right now.
func (e *Engine) Affordable(a Activity) bool {
	return e.Gold >= a.Cost
}

// Do performs a for the current month. It returns false, leaving every
// value untouched, when the daughter has grown up or gold does not cover
// the cost.
func (e *Engine) Do(a Activity) bool {
	if e.GrownUp() || !e.Affordable(a) {
		return false
	}

	e.Gold -= a.Cost
	e.Gold += a.Gold
	for s, delta := range a.Effects {
		e.Stats.Add(s, delta)
	}

	e.Month++
	if e.Month > MonthsInYear {
		e.Month = 1
		e.Age++
		e.Gold += Stipend
	}

	if e.GrownUp() {
		e.ending = e.catalog.Ending(e.Stats)
	}
	return true
}

// Ending returns the ending label once grown up, or "" before that.
func (e *Engine) Ending() string {
	return e.ending
}
