package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/wicket/internal/model"
	"github.com/verte-zerg/wicket/internal/season"
)

// Report contains precomputed data for the season dashboard.
type Report struct {
	View            season.View
	TopScorers      []model.Tally
	TopWicketTakers []model.Tally
	RunTypes        []model.Tally
	Venues          []model.Tally
	Matches         int
}

// BuildReport filters the store and ranks the resulting view. Venue counts
// always cover the whole store.
func BuildReport(store *season.Store, spec model.FilterSpec, top int) Report {
	view := season.Apply(store, spec)
	return Report{
		View:            view,
		TopScorers:      TopScorers(view, top),
		TopWicketTakers: TopWicketTakers(view, top),
		RunTypes:        RunTypeBreakdown(view),
		Venues:          VenueMatchCounts(store),
		Matches:         countMatches(view),
	}
}

// RenderReport prints every chart of the report.
func RenderReport(w io.Writer, r Report, width int, useColor bool) error {
	if _, err := fmt.Fprintf(w, "Deliveries: %d  Matches: %d\n\n", r.View.Len(), r.Matches); err != nil {
		return err
	}
	charts := []struct {
		title   string
		tallies []model.Tally
	}{
		{fmt.Sprintf("Top %d Run Scorers", len(r.TopScorers)), r.TopScorers},
		{fmt.Sprintf("Top %d Wicket Takers", len(r.TopWicketTakers)), r.TopWicketTakers},
		{"Run Type Distribution", r.RunTypes},
		{"Matches Played per Venue", r.Venues},
	}
	for _, c := range charts {
		if err := PlotBarsWithColor(w, c.title, c.tallies, width, useColor); err != nil {
			return err
		}
	}
	return nil
}

// BattingLines formats batting figures as label/value pairs.
func BattingLines(s model.BattingStats) [][2]string {
	return [][2]string{
		{"Total Runs Scored", strconv.Itoa(s.TotalRuns)},
		{"Total Balls Faced", strconv.Itoa(s.TotalBalls)},
		{"Fours", strconv.Itoa(s.Fours)},
		{"Sixes", strconv.Itoa(s.Sixes)},
		{"Strike Rate", formatRatio(s.StrikeRate)},
		{"Dismissals", strconv.Itoa(s.Dismissals)},
		{"Batting Average", s.Average.String()},
	}
}

// BowlingLines formats bowling figures as label/value pairs.
func BowlingLines(s model.BowlingStats) [][2]string {
	return [][2]string{
		{"Total Balls Bowled", strconv.Itoa(s.BallsBowled)},
		{"Overs", strconv.FormatFloat(s.Overs, 'f', 2, 64)},
		{"Total Wickets Taken", strconv.Itoa(s.Wickets)},
		{"Total Runs Conceded", strconv.Itoa(s.RunsConceded)},
		{"Economy Rate", formatRatio(s.Economy)},
	}
}

// RenderBatting prints a striker's figures.
func RenderBatting(w io.Writer, s model.BattingStats) error {
	return renderLines(w, fmt.Sprintf("Stats for Striker: %s", s.Query), BattingLines(s))
}

// RenderBowling prints a bowler's figures.
func RenderBowling(w io.Writer, s model.BowlingStats) error {
	return renderLines(w, fmt.Sprintf("Stats for Bowler: %s", s.Query), BowlingLines(s))
}

// DeliveryHeaders are the column titles of delivery tables.
var DeliveryHeaders = []string{"Match", "Inn", "Batting", "Bowling", "Striker", "Bowler", "Bat", "Ext", "Wd", "Lb", "B", "Nb", "Dismissed", "Venue"}

// DeliveryRows formats a view for a delivery table.
func DeliveryRows(view season.View) [][]string {
	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		d := view.At(i)
		rows = append(rows, []string{
			d.MatchID,
			strconv.Itoa(d.Innings),
			d.BattingTeam,
			d.BowlingTeam,
			d.Striker,
			d.Bowler,
			strconv.Itoa(d.RunsOfBat),
			strconv.Itoa(d.Extras),
			strconv.Itoa(d.Wide),
			strconv.Itoa(d.LegByes),
			strconv.Itoa(d.Byes),
			strconv.Itoa(d.NoBalls),
			d.PlayerDismissed,
			d.Venue,
		})
	}
	return rows
}

// RenderDeliveries prints a view as an aligned table.
func RenderDeliveries(w io.Writer, view season.View) error {
	if view.Len() == 0 {
		_, err := fmt.Fprintln(w, "No deliveries found.")
		return err
	}
	rightAlign := map[int]bool{1: true, 6: true, 7: true, 8: true, 9: true, 10: true, 11: true}
	return WriteTable(w, DeliveryHeaders, DeliveryRows(view), rightAlign)
}

func renderLines(w io.Writer, title string, lines [][2]string) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{l[0] + ":", l[1]})
	}
	if err := WriteTable(w, nil, rows, map[int]bool{1: true}); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func countMatches(view season.View) int {
	seen := map[string]struct{}{}
	for i := 0; i < view.Len(); i++ {
		seen[view.At(i).MatchID] = struct{}{}
	}
	return len(seen)
}
