package season

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `match_id,season,venue,batting_team,bowling_team,innings,over,striker,bowler,runs_of_bat,extras,wide,legbyes,byes,noballs,wicket_type,player_dismissed,fielder
202501,2025,"Eden Gardens, Kolkata",RCB,KKR,1,0.1,V Kohli,VR Iyer,4,0,0,0,0,0,,,
202501,2025,"Eden Gardens, Kolkata",RCB,KKR,1,0.2,V Kohli,VR Iyer,0,1,1,0,0,0,,,
202501,2025,"Eden Gardens, Kolkata",RCB,KKR,1,0.3,V Kohli,VR Iyer,0,0,0,0,0,0,caught,V Kohli,AD Russell
`

func TestLoadStoreReadsKnownColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deliveries.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	st, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	if st.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", st.Len())
	}
	first := st.At(0)
	if first.MatchID != "202501" || first.Venue != "Eden Gardens, Kolkata" || first.Striker != "V Kohli" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	if first.RunsOfBat != 4 || first.Innings != 1 || first.Dismissal() {
		t.Fatalf("unexpected first row counts: %+v", first)
	}
	second := st.At(1)
	if second.Extras != 1 || second.Wide != 1 {
		t.Fatalf("unexpected extras: %+v", second)
	}
	if st.At(2).PlayerDismissed != "V Kohli" {
		t.Fatalf("expected dismissal on last row: %+v", st.At(2))
	}
}

func TestLoadStoreMissingFile(t *testing.T) {
	_, err := LoadStore(filepath.Join(t.TempDir(), "missing.csv"))
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist cause, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	header := strings.Join(Columns, ",")
	cases := []struct {
		name   string
		input  string
		line   int
		column string
	}{
		{name: "empty", input: "", line: 1},
		{name: "missing column", input: "match_id,venue\n1,X\n", line: 1, column: ColInnings},
		{name: "bad integer", input: header + "\n1,V,1,A,B,S,W,,four,0,0,0,0,0\n", line: 2, column: ColRunsOfBat},
		{name: "negative", input: header + "\n1,V,1,A,B,S,W,,0,-1,0,0,0,0\n", line: 2, column: ColExtras},
		{name: "zero innings", input: header + "\n1,V,0,A,B,S,W,,0,0,0,0,0,0\n", line: 2, column: ColInnings},
		{name: "short row", input: header + "\n1,V,1,A,B,S,W,,0,0,0,0,0,0\n1,V,1\n", line: 3},
	}
	for _, tc := range cases {
		rows, err := Parse(strings.NewReader(tc.input))
		if rows != nil {
			t.Fatalf("%s: expected no rows on error", tc.name)
		}
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("%s: expected LoadError, got %v", tc.name, err)
		}
		if le.Line != tc.line {
			t.Fatalf("%s: expected line %d, got %d (%v)", tc.name, tc.line, le.Line, err)
		}
		if le.Column != tc.column {
			t.Fatalf("%s: expected column %q, got %q", tc.name, tc.column, le.Column)
		}
	}
}

func TestParseHeaderOnly(t *testing.T) {
	rows, err := Parse(strings.NewReader(strings.Join(Columns, ",") + "\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
