package stats

import (
	"fmt"
	"testing"

	"github.com/verte-zerg/wicket/internal/generator"
	"github.com/verte-zerg/wicket/internal/model"
	"github.com/verte-zerg/wicket/internal/season"
)

func TestTopScorersOrderAndTies(t *testing.T) {
	st := season.NewStore([]model.Delivery{
		{Striker: "C", RunsOfBat: 2},
		{Striker: "A", RunsOfBat: 4},
		{Striker: "B", RunsOfBat: 6},
		{Striker: "C", RunsOfBat: 2},
		{Striker: "D", RunsOfBat: 1},
	})
	got := TopScorers(st.All(), 0)
	want := []model.Tally{{Label: "B", Total: 6}, {Label: "C", Total: 4}, {Label: "A", Total: 4}, {Label: "D", Total: 1}}
	assertTallies(t, got, want)
}

func TestTopScorersKeepsTen(t *testing.T) {
	rows := make([]model.Delivery, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, model.Delivery{Striker: fmt.Sprintf("P%d", i), RunsOfBat: i})
	}
	got := TopScorers(season.NewStore(rows).All(), 0)
	if len(got) != DefaultTop {
		t.Fatalf("expected %d entries, got %d", DefaultTop, len(got))
	}
	if got[0].Label != "P11" || got[9].Label != "P2" {
		t.Fatalf("unexpected ranking: %+v", got)
	}
	if got := TopScorers(season.NewStore(rows).All(), 3); len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
}

func TestTopWicketTakers(t *testing.T) {
	st := season.NewStore([]model.Delivery{
		{Bowler: "Y", PlayerDismissed: "p1"},
		{Bowler: "X", PlayerDismissed: "p2"},
		{Bowler: "X", RunsOfBat: 4},
		{Bowler: "X", PlayerDismissed: "p3"},
		{Bowler: "Z", RunsOfBat: 1},
		{Bowler: "W", PlayerDismissed: "p4"},
	})
	got := TopWicketTakers(st.All(), 0)
	want := []model.Tally{{Label: "X", Total: 2}, {Label: "Y", Total: 1}, {Label: "W", Total: 1}}
	assertTallies(t, got, want)
}

func TestRunTypeBreakdownFixedOrder(t *testing.T) {
	st := season.NewStore([]model.Delivery{
		{RunsOfBat: 4},
		{Extras: 1, Wide: 1},
		{Extras: 2, LegByes: 2},
		{Extras: 1, Byes: 1},
		{Extras: 1, NoBalls: 1, RunsOfBat: 6},
	})
	got := RunTypeBreakdown(st.All())
	want := []model.Tally{
		{Label: LabelBatsmanRuns, Total: 10},
		{Label: LabelExtras, Total: 5},
		{Label: LabelWides, Total: 1},
		{Label: LabelLegByes, Total: 2},
		{Label: LabelByes, Total: 1},
		{Label: LabelNoBalls, Total: 1},
	}
	assertTallies(t, got, want)
}

func TestVenueMatchCountsDistinctMatches(t *testing.T) {
	var rows []model.Delivery
	for i := 0; i < 300; i++ {
		rows = append(rows, model.Delivery{MatchID: "1", Venue: "Wankhede"})
	}
	rows = append(rows,
		model.Delivery{MatchID: "2", Venue: "Chepauk"},
		model.Delivery{MatchID: "3", Venue: "Chepauk"},
		model.Delivery{MatchID: "4", Venue: "Eden Gardens"},
	)
	st := season.NewStore(rows)
	got := VenueMatchCounts(st)
	want := []model.Tally{{Label: "Chepauk", Total: 2}, {Label: "Wankhede", Total: 1}, {Label: "Eden Gardens", Total: 1}}
	assertTallies(t, got, want)
}

func TestVenueMatchCountsIgnoresFilter(t *testing.T) {
	st := season.NewStore(generator.NewSeeded(9).Season(6))
	report := BuildReport(st, model.FilterSpec{}, 0)
	total := 0
	for _, v := range report.Venues {
		total += v.Total
	}
	if total != 6 {
		t.Fatalf("expected 6 matches across venues, got %d", total)
	}
}

func TestRankersOnEmptyView(t *testing.T) {
	st := season.NewStore(generator.NewSeeded(4).Season(2))
	spec := season.AllOf(st)
	spec.BattingTeams = map[string]struct{}{}
	report := BuildReport(st, spec, 0)
	if report.View.Len() != 0 {
		t.Fatalf("expected empty view, got %d rows", report.View.Len())
	}
	if len(report.TopScorers) != 0 || len(report.TopWicketTakers) != 0 || len(report.RunTypes) != 0 {
		t.Fatalf("expected empty rankings, got %+v", report)
	}
	if report.TopScorers == nil || report.RunTypes == nil {
		t.Fatalf("expected empty lists, not nil")
	}
}

func TestRankersRespectFilter(t *testing.T) {
	st := season.NewStore([]model.Delivery{
		{BattingTeam: "MI", BowlingTeam: "CSK", Innings: 1, Striker: "RG Sharma", RunsOfBat: 6},
		{BattingTeam: "CSK", BowlingTeam: "MI", Innings: 2, Striker: "RD Gaikwad", RunsOfBat: 4},
	})
	spec := model.NewFilterSpec([]string{"CSK"}, []string{"MI", "CSK"}, []int{1, 2})
	got := BuildReport(st, spec, 0).TopScorers
	assertTallies(t, got, []model.Tally{{Label: "RD Gaikwad", Total: 4}})
}

func assertTallies(t *testing.T, got, want []model.Tally) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tallies, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tally %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
