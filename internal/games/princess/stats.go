package princess

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/kiro-arcade/internal/core"
)

// Stat identifies one attribute of the daughter.
type Stat int

const (
	Strength Stat = iota
	Intelligence
	Charm
	Magic
	Morality
	Stress

	statCount
)

// Stat bounds. Every mutation clamps into this range.
const (
	StatMin = 0
	StatMax = 100
)

var statNames = [statCount]string{"strength", "intelligence", "charm", "magic", "morality", "stress"}

// String returns the lower-case stat name used in the catalog.
func (s Stat) String() string {
	if s < 0 || s >= statCount {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// Label returns the capitalized stat name for display.
func (s Stat) Label() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// AllStats lists the stats in display order.
func AllStats() []Stat {
	stats := make([]Stat, statCount)
	for i := range stats {
		stats[i] = Stat(i)
	}
	return stats
}

// ParseStat resolves a catalog stat name.
func ParseStat(name string) (Stat, error) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

// Stats is the daughter's attribute vector.
type Stats [statCount]int

// DefaultStats returns the attributes a new game starts with.
func DefaultStats() Stats {
	return Stats{
		Strength:     10,
		Intelligence: 10,
		Charm:        10,
		Magic:        10,
		Morality:     50,
		Stress:       0,
	}
}

// Get returns the value of s.
func (st Stats) Get(s Stat) int {
	return st[s]
}

// Add applies delta to s and clamps the result to [StatMin, StatMax].
func (st *Stats) Add(s Stat, delta int) {
	st[s] = core.Clamp(st[s]+delta, StatMin, StatMax)
}

// Career returns the sum of the four career stats.
func (st Stats) Career() int {
	return st[Strength] + st[Intelligence] + st[Charm] + st[Magic]
}
