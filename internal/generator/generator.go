// Package generator builds synthetic seasons of deliveries.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/wicket/internal/model"
)

const (
	ballsPerOver   = 6
	oversPerSide   = 20
	wicketsPerSide = 10
	squadSize      = 11
)

var teams = []string{
	"Chennai Super Kings",
	"Mumbai Indians",
	"Royal Challengers Bengaluru",
	"Kolkata Knight Riders",
	"Sunrisers Hyderabad",
	"Rajasthan Royals",
	"Delhi Capitals",
	"Punjab Kings",
	"Lucknow Super Giants",
	"Gujarat Titans",
}

var venues = []string{
	"MA Chidambaram Stadium, Chennai",
	"Wankhede Stadium, Mumbai",
	"M Chinnaswamy Stadium, Bengaluru",
	"Eden Gardens, Kolkata",
	"Rajiv Gandhi International Stadium, Hyderabad",
	"Sawai Mansingh Stadium, Jaipur",
	"Arun Jaitley Stadium, Delhi",
	"Maharaja Yadavindra Singh Stadium, Mullanpur",
	"Ekana Cricket Stadium, Lucknow",
	"Narendra Modi Stadium, Ahmedabad",
}

// Generator produces randomized deliveries.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for reproducible output.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Season generates matches between random pairs of teams. Each match is
// played at the home venue of the first team and has two innings.
func (g *Generator) Season(matches int) []model.Delivery {
	var out []model.Delivery
	for m := 0; m < matches; m++ {
		home := g.rnd.Intn(len(teams))
		away := g.rnd.Intn(len(teams) - 1)
		if away >= home {
			away++
		}
		matchID := fmt.Sprintf("2025%02d", m+1)
		out = append(out, g.innings(matchID, venues[home], 1, teams[home], teams[away])...)
		out = append(out, g.innings(matchID, venues[home], 2, teams[away], teams[home])...)
	}
	return out
}

func (g *Generator) innings(matchID, venue string, innings int, batting, bowling string) []model.Delivery {
	batters := squad(batting)
	bowlers := squad(bowling)[6:]
	striker, nonStriker, next := 0, 1, 2
	wickets := 0
	var out []model.Delivery
	for over := 0; over < oversPerSide && wickets < wicketsPerSide; over++ {
		bowler := bowlers[over%len(bowlers)]
		legal := 0
		for legal < ballsPerOver && wickets < wicketsPerSide {
			d := model.Delivery{
				MatchID:     matchID,
				Venue:       venue,
				Innings:     innings,
				BattingTeam: batting,
				BowlingTeam: bowling,
				Striker:     batters[striker],
				Bowler:      bowler,
			}
			g.outcome(&d)
			if d.Wide == 0 && d.NoBalls == 0 {
				legal++
			}
			out = append(out, d)
			if d.Dismissal() {
				wickets++
				striker = next
				next++
				continue
			}
			if (d.RunsOfBat+d.Byes+d.LegByes)%2 == 1 {
				striker, nonStriker = nonStriker, striker
			}
		}
		striker, nonStriker = nonStriker, striker
	}
	return out
}

func (g *Generator) outcome(d *model.Delivery) {
	roll := g.rnd.Float64()
	switch {
	case roll < 0.04:
		d.Wide = 1
	case roll < 0.05:
		d.NoBalls = 1
		d.RunsOfBat = g.rnd.Intn(3)
	case roll < 0.07:
		d.LegByes = 1 + g.rnd.Intn(2)
	case roll < 0.08:
		d.Byes = 1 + g.rnd.Intn(2)
	case roll < 0.13:
		d.PlayerDismissed = d.Striker
	default:
		d.RunsOfBat = []int{0, 0, 0, 1, 1, 1, 2, 3, 4, 4, 6}[g.rnd.Intn(11)]
	}
	d.Extras = d.Wide + d.NoBalls + d.LegByes + d.Byes
}

func squad(team string) []string {
	initials := make([]byte, 0, 4)
	upper := true
	for i := 0; i < len(team); i++ {
		if upper && team[i] != ' ' {
			initials = append(initials, team[i])
		}
		upper = team[i] == ' '
	}
	players := make([]string, squadSize)
	for i := range players {
		players[i] = fmt.Sprintf("%s Player %d", initials, i+1)
	}
	return players
}
