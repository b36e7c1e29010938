package season

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/wicket/internal/generator"
	"github.com/verte-zerg/wicket/internal/model"
)

func TestPortableTextRoundTrip(t *testing.T) {
	rows := []model.Delivery{
		{MatchID: "202501", Venue: "Eden Gardens, Kolkata", Innings: 1, BattingTeam: "RCB", BowlingTeam: "KKR",
			Striker: "V Kohli", Bowler: "VR Iyer", RunsOfBat: 4},
		{MatchID: "202501", Venue: "Eden Gardens, Kolkata", Innings: 2, BattingTeam: "KKR", BowlingTeam: "RCB",
			Striker: `A "Dre" Russell`, Bowler: " JR Hazlewood", PlayerDismissed: `A "Dre" Russell`,
			Extras: 3, Wide: 1, LegByes: 1, Byes: 1},
	}
	rows = append(rows, generator.NewSeeded(11).Season(1)...)
	st := NewStore(rows)

	text := ToPortableText(st.All())
	got, err := FromPortableText(text)
	if err != nil {
		t.Fatalf("FromPortableText failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("expected %d rows, got %d", len(rows), len(got))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("row %d differs:\n got %+v\nwant %+v", i, got[i], rows[i])
		}
	}
}

func TestPortableTextLayout(t *testing.T) {
	st := NewStore([]model.Delivery{
		{MatchID: "7", Venue: "Wankhede", Innings: 2, BattingTeam: "MI", BowlingTeam: "CSK",
			Striker: "RG Sharma", Bowler: "MS Pathirana", RunsOfBat: 6},
	})
	text := ToPortableText(st.All())
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != strings.Join(Columns, ",") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "7,Wankhede,2,MI,CSK,RG Sharma,MS Pathirana,,6,0,0,0,0,0" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestPortableTextEmptyView(t *testing.T) {
	st := NewStore(generator.NewSeeded(2).Season(1))
	view := Apply(st, model.FilterSpec{})
	got, err := FromPortableText(ToPortableText(view))
	if err != nil {
		t.Fatalf("FromPortableText failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no rows, got %d", len(got))
	}
}

func TestWritePortableFile(t *testing.T) {
	st := NewStore(generator.NewSeeded(8).Season(1))
	path := filepath.Join(t.TempDir(), "out", "filtered.csv")
	if err := WritePortableFile(path, st.All()); err != nil {
		t.Fatalf("WritePortableFile failed: %v", err)
	}
	loaded, err := LoadStore(path)
	if err != nil {
		t.Fatalf("LoadStore failed: %v", err)
	}
	if loaded.Len() != st.Len() {
		t.Fatalf("expected %d rows, got %d", st.Len(), loaded.Len())
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the export file, found %d entries", len(entries))
	}
}
