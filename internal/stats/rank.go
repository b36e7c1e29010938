package stats

import (
	"sort"

	"github.com/verte-zerg/wicket/internal/model"
	"github.com/verte-zerg/wicket/internal/season"
)

// DefaultTop is the number of entries kept by the top-N rankings.
const DefaultTop = 10

// Run type labels, in report order.
const (
	LabelBatsmanRuns = "Batsman Runs"
	LabelExtras      = "Extras"
	LabelWides       = "Wides"
	LabelLegByes     = "Leg Byes"
	LabelByes        = "Byes"
	LabelNoBalls     = "No Balls"
)

// TopScorers sums runs off the bat per striker and returns the n highest.
// n <= 0 means DefaultTop. Equal totals keep first-appearance order.
func TopScorers(view season.View, n int) []model.Tally {
	tallies := sumBy(view, func(d model.Delivery) (string, int, bool) {
		return d.Striker, d.RunsOfBat, true
	})
	return topN(tallies, n)
}

// TopWicketTakers counts wicket-taking balls per bowler and returns the n highest.
func TopWicketTakers(view season.View, n int) []model.Tally {
	tallies := sumBy(view, func(d model.Delivery) (string, int, bool) {
		return d.Bowler, 1, d.Dismissal()
	})
	return topN(tallies, n)
}

// RunTypeBreakdown totals bat runs and each extras category, in fixed order.
// An empty view yields no buckets.
func RunTypeBreakdown(view season.View) []model.Tally {
	if view.Len() == 0 {
		return []model.Tally{}
	}
	var bat, extras, wides, legByes, byes, noBalls int
	for i := 0; i < view.Len(); i++ {
		d := view.At(i)
		bat += d.RunsOfBat
		extras += d.Extras
		wides += d.Wide
		legByes += d.LegByes
		byes += d.Byes
		noBalls += d.NoBalls
	}
	return []model.Tally{
		{Label: LabelBatsmanRuns, Total: bat},
		{Label: LabelExtras, Total: extras},
		{Label: LabelWides, Total: wides},
		{Label: LabelLegByes, Total: legByes},
		{Label: LabelByes, Total: byes},
		{Label: LabelNoBalls, Total: noBalls},
	}
}

// VenueMatchCounts counts distinct matches per venue over the whole store,
// highest first.
func VenueMatchCounts(store *season.Store) []model.Tally {
	seen := map[string]map[string]struct{}{}
	var order []string
	for i := 0; i < store.Len(); i++ {
		d := store.At(i)
		matches, ok := seen[d.Venue]
		if !ok {
			matches = map[string]struct{}{}
			seen[d.Venue] = matches
			order = append(order, d.Venue)
		}
		matches[d.MatchID] = struct{}{}
	}
	out := make([]model.Tally, 0, len(order))
	for _, venue := range order {
		out = append(out, model.Tally{Label: venue, Total: len(seen[venue])})
	}
	sortTallies(out)
	return out
}

func sumBy(view season.View, key func(model.Delivery) (string, int, bool)) []model.Tally {
	pos := map[string]int{}
	out := []model.Tally{}
	for i := 0; i < view.Len(); i++ {
		label, value, ok := key(view.At(i))
		if !ok {
			continue
		}
		j, seen := pos[label]
		if !seen {
			j = len(out)
			pos[label] = j
			out = append(out, model.Tally{Label: label})
		}
		out[j].Total += value
	}
	return out
}

func topN(tallies []model.Tally, n int) []model.Tally {
	if n <= 0 {
		n = DefaultTop
	}
	sortTallies(tallies)
	if len(tallies) > n {
		tallies = tallies[:n]
	}
	return tallies
}

func sortTallies(tallies []model.Tally) {
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Total > tallies[j].Total
	})
}
