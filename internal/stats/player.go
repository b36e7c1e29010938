// Package stats contains statistics calculations and reporting.
package stats

import (
	"errors"
	"strconv"
	"strings"

	"github.com/verte-zerg/wicket/internal/model"
	"github.com/verte-zerg/wicket/internal/season"
)

var (
	// ErrNotFound is returned when a player lookup matches no deliveries.
	ErrNotFound = errors.New("player not found")
	// ErrEmptyQuery is returned for a blank player name.
	ErrEmptyQuery = errors.New("player name is empty")
)

// Batting computes season-wide batting figures for strikers whose name
// contains query, ignoring case. It also returns the matched deliveries.
//
// Every matched row counts as a ball faced, wides and no-balls included.
// Dismissals are counted over the whole store where player_dismissed equals
// query exactly, so a partial name can score runs but never be out.
func Batting(store *season.Store, query string) (model.BattingStats, season.View, error) {
	rows, err := lookup(store, query, func(d model.Delivery) string { return d.Striker })
	if err != nil {
		return model.BattingStats{}, rows, err
	}

	out := model.BattingStats{Query: query, TotalBalls: rows.Len()}
	for i := 0; i < rows.Len(); i++ {
		d := rows.At(i)
		out.TotalRuns += d.RunsOfBat
		switch d.RunsOfBat {
		case 4:
			out.Fours++
		case 6:
			out.Sixes++
		}
	}
	if out.TotalBalls > 0 {
		out.StrikeRate = round2(float64(out.TotalRuns) / float64(out.TotalBalls) * 100)
	}
	out.Dismissals = store.All().Where(func(d model.Delivery) bool {
		return d.PlayerDismissed == query
	}).Len()
	if out.Dismissals > 0 {
		out.Average = model.Average{
			Value: round2(float64(out.TotalRuns) / float64(out.Dismissals)),
			Valid: true,
		}
	}
	return out, rows, nil
}

// Bowling computes season-wide bowling figures for bowlers whose name
// contains query, ignoring case. Byes and leg byes are not charged to the
// bowler; wides and no-balls are.
func Bowling(store *season.Store, query string) (model.BowlingStats, season.View, error) {
	rows, err := lookup(store, query, func(d model.Delivery) string { return d.Bowler })
	if err != nil {
		return model.BowlingStats{}, rows, err
	}

	out := model.BowlingStats{Query: query, BallsBowled: rows.Len()}
	for i := 0; i < rows.Len(); i++ {
		d := rows.At(i)
		out.RunsConceded += d.RunsOfBat + d.Extras - d.Byes - d.LegByes
		if d.Dismissal() {
			out.Wickets++
		}
	}
	out.Overs = Overs(out.BallsBowled)
	if out.Overs > 0 {
		out.Economy = round2(float64(out.RunsConceded) / out.Overs)
	}
	return out, rows, nil
}

// Overs converts balls to fractional overs: 23 balls is 3 + 5/6, not "3.5".
func Overs(balls int) float64 {
	return float64(balls/6) + float64(balls%6)/6
}

func lookup(store *season.Store, query string, name func(model.Delivery) string) (season.View, error) {
	if strings.TrimSpace(query) == "" {
		return season.View{}, ErrEmptyQuery
	}
	needle := strings.ToLower(query)
	rows := store.All().Where(func(d model.Delivery) bool {
		return strings.Contains(strings.ToLower(name(d)), needle)
	})
	if rows.Len() == 0 {
		return rows, ErrNotFound
	}
	return rows, nil
}

// round2 rounds to two decimals using correctly rounded decimal conversion.
func round2(v float64) float64 {
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return out
}
