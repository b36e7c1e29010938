package season

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/verte-zerg/wicket/internal/model"
)

// Column names, in export order.
const (
	ColMatchID         = "match_id"
	ColVenue           = "venue"
	ColInnings         = "innings"
	ColBattingTeam     = "batting_team"
	ColBowlingTeam     = "bowling_team"
	ColStriker         = "striker"
	ColBowler          = "bowler"
	ColPlayerDismissed = "player_dismissed"
	ColRunsOfBat       = "runs_of_bat"
	ColExtras          = "extras"
	ColWide            = "wide"
	ColLegByes         = "legbyes"
	ColByes            = "byes"
	ColNoBalls         = "noballs"
)

// Columns is the field order used by the portable text format.
var Columns = []string{
	ColMatchID,
	ColVenue,
	ColInnings,
	ColBattingTeam,
	ColBowlingTeam,
	ColStriker,
	ColBowler,
	ColPlayerDismissed,
	ColRunsOfBat,
	ColExtras,
	ColWide,
	ColLegByes,
	ColByes,
	ColNoBalls,
}

// LoadError reports malformed delivery input. Line is 1-based and 0 when
// the problem is not tied to a row.
type LoadError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load deliveries")
	if e.Path != "" {
		fmt.Fprintf(&b, " from %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, ": column %s", e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadStore reads a delimited delivery table from path.
func LoadStore(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	rows, err := Parse(file)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return &Store{rows: rows}, nil
}

// Parse decodes a header row followed by delivery rows. Columns are matched
// by header name; unknown columns are ignored and every known column is
// required. Nothing is returned unless every row parses.
func Parse(r io.Reader) ([]model.Delivery, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Line: 1, Err: errors.New("missing header row")}
		}
		return nil, wrapCSVError(err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Line: 1, Column: col, Err: errors.New("missing column")}
		}
	}

	rows := make([]model.Delivery, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}
		line, _ := reader.FieldPos(0)
		d, err := decodeRow(record, index)
		if err != nil {
			var le *LoadError
			if errors.As(err, &le) {
				le.Line = line
			}
			return nil, err
		}
		rows = append(rows, d)
	}
	return rows, nil
}

func decodeRow(record []string, index map[string]int) (model.Delivery, error) {
	field := func(col string) string {
		return record[index[col]]
	}
	var parseErr error
	count := func(col string, floor int) int {
		if parseErr != nil {
			return 0
		}
		raw := strings.TrimSpace(field(col))
		n, err := strconv.Atoi(raw)
		if err != nil {
			parseErr = &LoadError{Column: col, Err: fmt.Errorf("invalid integer %q", raw)}
			return 0
		}
		if n < floor {
			parseErr = &LoadError{Column: col, Err: fmt.Errorf("value %d below %d", n, floor)}
			return 0
		}
		return n
	}

	d := model.Delivery{
		MatchID:         field(ColMatchID),
		Venue:           field(ColVenue),
		Innings:         count(ColInnings, 1),
		BattingTeam:     field(ColBattingTeam),
		BowlingTeam:     field(ColBowlingTeam),
		Striker:         field(ColStriker),
		Bowler:          field(ColBowler),
		PlayerDismissed: field(ColPlayerDismissed),
		RunsOfBat:       count(ColRunsOfBat, 0),
		Extras:          count(ColExtras, 0),
		Wide:            count(ColWide, 0),
		LegByes:         count(ColLegByes, 0),
		Byes:            count(ColByes, 0),
		NoBalls:         count(ColNoBalls, 0),
	}
	if parseErr != nil {
		return model.Delivery{}, parseErr
	}
	return d, nil
}

func wrapCSVError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &LoadError{Line: pe.Line, Err: pe.Err}
	}
	return &LoadError{Err: err}
}
