package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/wicket/internal/model"
)

const (
	minBarWidth         = 10
	maxLabelWidth       = 32
	barSeparator        = " │ "
	colorReset          = "\x1b[0m"
	barColor            = "\x1b[36m"
	terminalWidthBackup = 80
)

// Eighth-block glyphs, index = eighths filled.
var barEighths = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// PlotBars renders a horizontal bar chart, one bar per tally, each annotated
// with its value. A width of 0 fits the terminal.
func PlotBars(w io.Writer, title string, tallies []model.Tally, width int) error {
	return plotBars(w, title, tallies, width, false)
}

// PlotBarsWithColor renders a bar chart with optional forced color output.
func PlotBarsWithColor(w io.Writer, title string, tallies []model.Tally, width int, forceColor bool) error {
	return plotBars(w, title, tallies, width, forceColor)
}

func plotBars(w io.Writer, title string, tallies []model.Tally, width int, forceColor bool) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	if len(tallies) == 0 {
		if _, err := fmt.Fprintln(w, "No data."); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "")
		return err
	}

	labelWidth, valueWidth, maxVal := 0, 0, 0
	for _, t := range tallies {
		if lw := displayWidth(t.Label); lw > labelWidth {
			labelWidth = lw
		}
		if vw := len(strconv.Itoa(t.Total)); vw > valueWidth {
			valueWidth = vw
		}
		if t.Total > maxVal {
			maxVal = t.Total
		}
	}
	if labelWidth > maxLabelWidth {
		labelWidth = maxLabelWidth
	}
	if width <= 0 {
		width = terminalWidth()
	}
	barWidth := BarWidthFor(width, labelWidth, valueWidth)

	useColor := shouldUseColor(w, forceColor)
	for _, t := range tallies {
		var row strings.Builder
		row.WriteString(padCell(truncate(t.Label, labelWidth), labelWidth, false))
		row.WriteString(barSeparator)
		bar := renderBar(t.Total, maxVal, barWidth)
		if useColor && bar != "" {
			row.WriteString(barColor + bar + colorReset)
		} else {
			row.WriteString(bar)
		}
		if bar != "" {
			row.WriteByte(' ')
		}
		row.WriteString(strconv.Itoa(t.Total))
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// BarWidthFor computes the bar area that fits within totalWidth next to the
// label and value columns.
func BarWidthFor(totalWidth, labelWidth, valueWidth int) int {
	if totalWidth <= 0 {
		return minBarWidth
	}
	barWidth := totalWidth - labelWidth - displayWidth(barSeparator) - valueWidth - 1
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	return barWidth
}

func renderBar(value, maxVal, width int) string {
	if value <= 0 || maxVal <= 0 || width <= 0 {
		return ""
	}
	eighths := int(math.Round(float64(value) / float64(maxVal) * float64(width*8)))
	if eighths < 1 {
		eighths = 1
	}
	full := eighths / 8
	var b strings.Builder
	b.WriteString(strings.Repeat(string(barEighths[8]), full))
	if rem := eighths % 8; rem > 0 {
		b.WriteRune(barEighths[rem])
	}
	return b.String()
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
