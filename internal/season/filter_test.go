package season

import (
	"testing"

	"github.com/verte-zerg/wicket/internal/generator"
	"github.com/verte-zerg/wicket/internal/model"
)

func TestApplyIsConjunctive(t *testing.T) {
	st := NewStore([]model.Delivery{
		{MatchID: "1", Innings: 1, BattingTeam: "CSK", BowlingTeam: "MI"},
		{MatchID: "1", Innings: 2, BattingTeam: "MI", BowlingTeam: "CSK"},
		{MatchID: "2", Innings: 1, BattingTeam: "CSK", BowlingTeam: "RR"},
		{MatchID: "2", Innings: 2, BattingTeam: "RR", BowlingTeam: "CSK"},
	})
	spec := model.NewFilterSpec([]string{"CSK", "RR"}, []string{"MI", "RR", "CSK"}, []int{1})
	view := Apply(st, spec)
	if view.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", view.Len())
	}
	if view.At(0).MatchID != "1" || view.At(1).MatchID != "2" {
		t.Fatalf("unexpected rows: %+v", view.Deliveries())
	}
}

func TestApplyEmptySetYieldsEmptyView(t *testing.T) {
	st := NewStore(generator.NewSeeded(3).Season(2))
	full := AllOf(st)

	cases := map[string]model.FilterSpec{
		"batting": {BattingTeams: map[string]struct{}{}, BowlingTeams: full.BowlingTeams, Innings: full.Innings},
		"bowling": {BattingTeams: full.BattingTeams, BowlingTeams: nil, Innings: full.Innings},
		"innings": {BattingTeams: full.BattingTeams, BowlingTeams: full.BowlingTeams, Innings: map[int]struct{}{}},
	}
	for name, spec := range cases {
		if got := Apply(st, spec).Len(); got != 0 {
			t.Fatalf("%s: expected empty view, got %d rows", name, got)
		}
	}
}

func TestApplyAllOfKeepsEverything(t *testing.T) {
	st := NewStore(generator.NewSeeded(5).Season(3))
	view := Apply(st, AllOf(st))
	if view.Len() != st.Len() {
		t.Fatalf("expected %d rows, got %d", st.Len(), view.Len())
	}
}

func TestApplyProperties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		st := NewStore(generator.NewSeeded(seed).Season(4))
		teams := st.BattingTeams()
		bowling := st.BowlingTeams()
		innings := st.Innings()

		spec := model.NewFilterSpec(teams, bowling, innings)
		narrowed := model.NewFilterSpec(teams[:len(teams)/2], bowling, innings)
		narrowest := model.NewFilterSpec(teams[:len(teams)/2], bowling, innings[:1])

		first := Apply(st, spec)
		second := Apply(st, spec)
		assertSameRows(t, first, second)

		if first.Len() > st.Len() {
			t.Fatalf("seed %d: view longer than store", seed)
		}
		n1 := Apply(st, narrowed)
		n2 := Apply(st, narrowest)
		if n1.Len() > first.Len() || n2.Len() > n1.Len() {
			t.Fatalf("seed %d: narrowing grew the view: %d, %d, %d", seed, first.Len(), n1.Len(), n2.Len())
		}
		assertOrderPreserved(t, n2)
	}
}

func assertSameRows(t *testing.T, a, b View) {
	t.Helper()
	if a.Len() != b.Len() {
		t.Fatalf("length differs: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.idx[i] != b.idx[i] {
			t.Fatalf("row %d differs", i)
		}
	}
}

func assertOrderPreserved(t *testing.T, v View) {
	t.Helper()
	for i := 1; i < len(v.idx); i++ {
		if v.idx[i] <= v.idx[i-1] {
			t.Fatalf("view out of store order at %d", i)
		}
	}
}
