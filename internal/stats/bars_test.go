package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/wicket/internal/model"
)

func TestPlotBars(t *testing.T) {
	var buf bytes.Buffer
	err := PlotBars(&buf, "Top Scorers", []model.Tally{
		{Label: "V Kohli", Total: 40},
		{Label: "SA Yadav", Total: 20},
		{Label: "Nobody", Total: 0},
	}, 40)
	if err != nil {
		t.Fatalf("PlotBars failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Top Scorers" {
		t.Fatalf("expected title, got %q", lines[0])
	}
	barWidth := BarWidthFor(40, len("SA Yadav"), 2)
	full := strings.Count(lines[1], "█")
	half := strings.Count(lines[2], "█")
	if full != barWidth {
		t.Fatalf("expected longest bar of %d cells, got %d", barWidth, full)
	}
	if half != barWidth/2 {
		t.Fatalf("expected half bar of %d cells, got %d", barWidth/2, half)
	}
	if !strings.HasSuffix(lines[1], " 40") || !strings.HasSuffix(lines[3], " │ 0") {
		t.Fatalf("expected value annotations: %q", lines)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected no color codes for a buffer")
	}
}

func TestPlotBarsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotBars(&buf, "Venues", nil, 40); err != nil {
		t.Fatalf("PlotBars failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No data.") {
		t.Fatalf("expected empty marker, got %q", buf.String())
	}
}

func TestBarWidthFor(t *testing.T) {
	sep := displayWidth(barSeparator)
	if got := BarWidthFor(80, 10, 3); got != 80-10-sep-3-1 {
		t.Fatalf("unexpected width %d", got)
	}
	if got := BarWidthFor(0, 10, 3); got != minBarWidth {
		t.Fatalf("expected min width %d, got %d", minBarWidth, got)
	}
	if got := BarWidthFor(12, 10, 3); got != minBarWidth {
		t.Fatalf("expected min width %d, got %d", minBarWidth, got)
	}
}
