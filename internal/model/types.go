// Package model defines shared data structures.
package model

import (
	"strconv"
	"time"
)

// Delivery is one ball bowled and its recorded outcome.
type Delivery struct {
	MatchID         string
	Venue           string
	Innings         int
	BattingTeam     string
	BowlingTeam     string
	Striker         string
	Bowler          string
	PlayerDismissed string
	RunsOfBat       int
	Extras          int
	Wide            int
	LegByes         int
	Byes            int
	NoBalls         int
}

// Dismissal reports whether a wicket fell on this ball.
func (d Delivery) Dismissal() bool {
	return d.PlayerDismissed != ""
}

// FilterSpec selects deliveries by batting team, bowling team and innings.
// An empty set matches nothing for its dimension.
type FilterSpec struct {
	BattingTeams map[string]struct{}
	BowlingTeams map[string]struct{}
	Innings      map[int]struct{}
}

// NewFilterSpec builds a FilterSpec from value lists.
func NewFilterSpec(battingTeams, bowlingTeams []string, innings []int) FilterSpec {
	spec := FilterSpec{
		BattingTeams: make(map[string]struct{}, len(battingTeams)),
		BowlingTeams: make(map[string]struct{}, len(bowlingTeams)),
		Innings:      make(map[int]struct{}, len(innings)),
	}
	for _, t := range battingTeams {
		spec.BattingTeams[t] = struct{}{}
	}
	for _, t := range bowlingTeams {
		spec.BowlingTeams[t] = struct{}{}
	}
	for _, n := range innings {
		spec.Innings[n] = struct{}{}
	}
	return spec
}

// Matches reports whether d satisfies all three dimensions.
func (f FilterSpec) Matches(d Delivery) bool {
	if _, ok := f.BattingTeams[d.BattingTeam]; !ok {
		return false
	}
	if _, ok := f.BowlingTeams[d.BowlingTeam]; !ok {
		return false
	}
	_, ok := f.Innings[d.Innings]
	return ok
}

// Average is a ratio that may be undefined, e.g. a batting average with no dismissals.
type Average struct {
	Value float64
	Valid bool
}

// String renders the average, or "NA" when undefined.
func (a Average) String() string {
	if !a.Valid {
		return "NA"
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

// BattingStats summarizes a striker's season.
type BattingStats struct {
	Query      string
	TotalRuns  int
	TotalBalls int
	Fours      int
	Sixes      int
	StrikeRate float64
	Dismissals int
	Average    Average
}

// BowlingStats summarizes a bowler's season.
type BowlingStats struct {
	Query        string
	BallsBowled  int
	RunsConceded int
	Wickets      int
	Overs        float64
	Economy      float64
}

// Tally is one labelled total in a ranked or fixed-order report.
type Tally struct {
	Label string
	Total int
}

// SeasonInfo describes a season snapshot held in the local database.
type SeasonInfo struct {
	ID         int64
	Name       string
	SourcePath string
	ImportedAt time.Time
	Rows       int
}
