package season

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verte-zerg/wicket/internal/model"
)

// WritePortable writes the view as CSV: a header naming every column, then
// one row per delivery in view order.
func WritePortable(w io.Writer, view View) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return err
	}
	record := make([]string, len(Columns))
	for i := 0; i < view.Len(); i++ {
		encodeRow(view.At(i), record)
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ToPortableText renders the view in the portable CSV format.
func ToPortableText(view View) string {
	var buf bytes.Buffer
	if err := WritePortable(&buf, view); err != nil {
		// bytes.Buffer writes do not fail.
		_ = err
	}
	return buf.String()
}

// WritePortableFile writes the view to path, replacing it only once the
// whole file has been written.
func WritePortableFile(path string, view View) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "export-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp export: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if err := WritePortable(writer, view); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// FromPortableText parses text produced by ToPortableText.
func FromPortableText(text string) ([]model.Delivery, error) {
	return Parse(strings.NewReader(text))
}

func encodeRow(d model.Delivery, record []string) {
	record[0] = d.MatchID
	record[1] = d.Venue
	record[2] = strconv.Itoa(d.Innings)
	record[3] = d.BattingTeam
	record[4] = d.BowlingTeam
	record[5] = d.Striker
	record[6] = d.Bowler
	record[7] = d.PlayerDismissed
	record[8] = strconv.Itoa(d.RunsOfBat)
	record[9] = strconv.Itoa(d.Extras)
	record[10] = strconv.Itoa(d.Wide)
	record[11] = strconv.Itoa(d.LegByes)
	record[12] = strconv.Itoa(d.Byes)
	record[13] = strconv.Itoa(d.NoBalls)
}
