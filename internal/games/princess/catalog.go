package princess

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// goldEffect is the effect key that changes gold instead of a stat.
const goldEffect = "gold"

// Activity is one entry of the monthly schedule.
type Activity struct {
	Name    string
	Cost    int
	Effects map[Stat]int
	Gold    int // Gold earned on top of the cost, never clamped
}

// Ending is a career the daughter can grow into.
type Ending struct {
	Label string
	Stat  Stat
	Above int
}

// Catalog holds the activities and endings of the game. It is read-only
// once loaded.
type Catalog struct {
	Activities []Activity
	Endings    []Ending
	Fallback   string
}

type catalogFile struct {
	Activities []struct {
		Name    string         `yaml:"name"`
		Cost    int            `yaml:"cost"`
		Effects map[string]int `yaml:"effects"`
	} `yaml:"activities"`
	Endings []struct {
		Label string `yaml:"label"`
		Stat  string `yaml:"stat"`
		Above int    `yaml:"above"`
	} `yaml:"endings"`
	Fallback string `yaml:"fallback"`
}

// LoadCatalog decodes and validates a catalog document.
func LoadCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("princess: parse catalog: %w", err)
	}

	if len(file.Activities) == 0 {
		return Catalog{}, errors.New("princess: catalog has no activities")
	}
	if file.Fallback == "" {
		return Catalog{}, errors.New("princess: catalog has no fallback ending")
	}

	cat := Catalog{Fallback: file.Fallback}

	for i, a := range file.Activities {
		if a.Name == "" {
			return Catalog{}, fmt.Errorf("princess: activity %d has no name", i)
		}
		if a.Cost < 0 {
			return Catalog{}, fmt.Errorf("princess: activity %q has negative cost", a.Name)
		}

		act := Activity{Name: a.Name, Cost: a.Cost, Effects: make(map[Stat]int, len(a.Effects))}
		for key, delta := range a.Effects {
			if key == goldEffect {
				act.Gold += delta
				continue
			}
			s, err := ParseStat(key)
			if err != nil {
				return Catalog{}, fmt.Errorf("princess: activity %q: %w", a.Name, err)
			}
			act.Effects[s] += delta
		}
		cat.Activities = append(cat.Activities, act)
	}

	for _, e := range file.Endings {
		s, err := ParseStat(e.Stat)
		if err != nil {
			return Catalog{}, fmt.Errorf("princess: ending %q: %w", e.Label, err)
		}
		cat.Endings = append(cat.Endings, Ending{Label: e.Label, Stat: s, Above: e.Above})
	}

	return cat, nil
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() Catalog {
	cat, err := LoadCatalog(defaultCatalogYAML)
	if err != nil {
		panic(err)
	}
	return cat
}

// Ending returns the label of the first ending whose stat is strictly above
// its threshold, or the fallback.
func (c Catalog) Ending(st Stats) string {
	for _, e := range c.Endings {
		if st.Get(e.Stat) > e.Above {
			return e.Label
		}
	}
	return c.Fallback
}
