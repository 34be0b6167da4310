package princess

import (
	"strings"
	"testing"
)

func activity(t *testing.T, cat Catalog, name string) Activity {
	t.Helper()
	for _, a := range cat.Activities {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("activity %q not in catalog", name)
	return Activity{}
}

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()

	want := []struct {
		name string
		cost int
	}{
		{"Study", 20},
		{"Combat Training", 30},
		{"Dance Class", 25},
		{"Magic School", 40},
		{"Church Work", 0},
		{"Rest", 0},
	}
	if len(cat.Activities) != len(want) {
		t.Fatalf("got %d activities, expected %d", len(cat.Activities), len(want))
	}
	for i, w := range want {
		a := cat.Activities[i]
		if a.Name != w.name || a.Cost != w.cost {
			t.Errorf("activity %d = %s/%d, expected %s/%d", i, a.Name, a.Cost, w.name, w.cost)
		}
	}

	church := activity(t, cat, "Church Work")
	if church.Gold != 10 || church.Effects[Morality] != 5 || church.Effects[Stress] != 2 {
		t.Errorf("Church Work decoded as %+v", church)
	}
	if rest := activity(t, cat, "Rest"); rest.Effects[Stress] != -15 {
		t.Errorf("Rest decoded as %+v", rest)
	}
	if cat.Fallback != "Commoner" || len(cat.Endings) != 4 {
		t.Errorf("endings = %+v, fallback %q", cat.Endings, cat.Fallback)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"bad yaml", "activities: [", "parse catalog"},
		{"no activities", "fallback: Commoner", "no activities"},
		{"no fallback", "activities:\n  - name: Rest\n", "no fallback"},
		{"unknown stat", "activities:\n  - name: Nap\n    effects:\n      luck: 3\nfallback: X\n", `unknown stat "luck"`},
		{"negative cost", "activities:\n  - name: Nap\n    cost: -1\nfallback: X\n", "negative cost"},
		{"unnamed", "activities:\n  - cost: 1\nfallback: X\n", "has no name"},
		{"bad ending", "activities:\n  - name: Nap\nendings:\n  - label: Bard\n    stat: music\nfallback: X\n", `ending "Bard"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadCatalog([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestEndingPriority(t *testing.T) {
	cat := DefaultCatalog()

	tests := []struct {
		name  string
		stats Stats
		want  string
	}{
		{"magic", Stats{Magic: 65, Strength: 10, Intelligence: 10, Charm: 10}, "Court Wizard"},
		{"magic beats strength", Stats{Magic: 61, Strength: 90}, "Court Wizard"},
		{"strength", Stats{Strength: 61, Intelligence: 99, Charm: 99}, "Knight"},
		{"intelligence", Stats{Intelligence: 70, Charm: 70}, "Scholar"},
		{"charm", Stats{Charm: 80}, "Princess"},
		{"threshold is exclusive", Stats{Magic: 60, Strength: 60, Intelligence: 60, Charm: 60}, "Commoner"},
		{"nothing", DefaultStats(), "Commoner"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cat.Ending(tc.stats); got != tc.want {
				t.Errorf("Ending() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestDoRejectsUnaffordable(t *testing.T) {
	cat := DefaultCatalog()
	e := NewEngine(cat)
	e.Gold = 30

	before := *e
	if e.Do(activity(t, cat, "Magic School")) {
		t.Fatal("activity costing more than the purse should be rejected")
	}
	if e.Gold != before.Gold || e.Stats != before.Stats || e.Month != before.Month || e.Age != before.Age {
		t.Errorf("rejected activity changed state: %+v", e)
	}
}

func TestDoAppliesCostAndEffects(t *testing.T) {
	cat := DefaultCatalog()
	e := NewEngine(cat)

	if !e.Do(activity(t, cat, "Study")) {
		t.Fatal("Study should be affordable")
	}
	if e.Gold != StartGold-20 {
		t.Errorf("gold = %d, expected %d", e.Gold, StartGold-20)
	}
	if e.Stats.Get(Intelligence) != 15 || e.Stats.Get(Stress) != 3 {
		t.Errorf("stats = %+v", e.Stats)
	}
	if e.Month != 2 {
		t.Errorf("month = %d, expected 2", e.Month)
	}

	e.Do(activity(t, cat, "Church Work"))
	if e.Gold != StartGold-20+10 {
		t.Errorf("Church Work should add gold, got %d", e.Gold)
	}
}

func TestStatsStayClamped(t *testing.T) {
	cat := DefaultCatalog()
	e := NewEngine(cat)
	e.Gold = 1 << 20

	for i := 0; i < 40; i++ {
		e.Do(activity(t, cat, "Rest"))
		e.Do(activity(t, cat, "Magic School"))
		for _, s := range AllStats() {
			if v := e.Stats.Get(s); v < StatMin || v > StatMax {
				t.Fatalf("%s = %d outside [%d, %d]", s, v, StatMin, StatMax)
			}
		}
		if e.GrownUp() {
			break
		}
	}

	var st Stats
	st.Add(Charm, 1000)
	st.Add(Stress, -1000)
	if st.Get(Charm) != StatMax || st.Get(Stress) != StatMin {
		t.Errorf("Add did not clamp: %+v", st)
	}
}

func TestYearRollover(t *testing.T) {
	cat := DefaultCatalog()

	// The choice of activity does not matter for the calendar
	for _, name := range []string{"Rest", "Study"} {
		t.Run(name, func(t *testing.T) {
			e := NewEngine(cat)
			a := activity(t, cat, name)
			for i := 0; i < MonthsInYear; i++ {
				if !e.Do(a) {
					t.Fatalf("month %d rejected", i+1)
				}
			}

			if e.Age != StartAge+1 || e.Month != 1 {
				t.Errorf("age/month = %d/%d, expected %d/1", e.Age, e.Month, StartAge+1)
			}
			if want := StartGold - MonthsInYear*a.Cost + Stipend; e.Gold != want {
				t.Errorf("gold = %d, expected %d", e.Gold, want)
			}
		})
	}
}

func TestGrowingUp(t *testing.T) {
	cat := DefaultCatalog()
	e := NewEngine(cat)
	rest := activity(t, cat, "Rest")

	months := (GrownUpAge - StartAge) * MonthsInYear
	for i := 0; i < months; i++ {
		if e.GrownUp() {
			t.Fatalf("grew up early after %d months", i)
		}
		e.Do(rest)
	}

	if !e.GrownUp() || e.Ending() != "Commoner" {
		t.Fatalf("grown=%v ending=%q", e.GrownUp(), e.Ending())
	}
	if e.Do(rest) {
		t.Error("no activities after growing up")
	}
}
