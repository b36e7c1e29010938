// Package store handles SQLite persistence of imported seasons.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/wicket/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// ErrSeasonNotFound is returned when no snapshot has the requested name.
var ErrSeasonNotFound = errors.New("season not found")

// Store wraps SQLite access for season snapshots.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS seasons (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			source_path TEXT NOT NULL,
			imported_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			season_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			match_id TEXT NOT NULL,
			venue TEXT NOT NULL,
			innings INTEGER NOT NULL,
			batting_team TEXT NOT NULL,
			bowling_team TEXT NOT NULL,
			striker TEXT NOT NULL,
			bowler TEXT NOT NULL,
			player_dismissed TEXT NOT NULL,
			runs_of_bat INTEGER NOT NULL,
			extras INTEGER NOT NULL,
			wide INTEGER NOT NULL,
			legbyes INTEGER NOT NULL,
			byes INTEGER NOT NULL,
			noballs INTEGER NOT NULL,
			PRIMARY KEY (season_id, seq)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveSeason stores rows under name, replacing any earlier snapshot with the
// same name. Row order is preserved.
func (s *Store) SaveSeason(ctx context.Context, name, sourcePath string, importedAt time.Time, rows []model.Delivery) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM deliveries WHERE season_id IN (SELECT id FROM seasons WHERE name = ?)`, name); err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM seasons WHERE name = ?`, name); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO seasons (name, source_path, imported_at) VALUES (?, ?, ?)`,
		name, sourcePath, importedAt.Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(rows) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO deliveries (season_id, seq, match_id, venue, innings, batting_team, bowling_team, striker, bowler,
				player_dismissed, runs_of_bat, extras, wide, legbyes, byes, noballs)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, d := range rows {
			if _, err = stmt.ExecContext(ctx, id, i, d.MatchID, d.Venue, d.Innings, d.BattingTeam, d.BowlingTeam,
				d.Striker, d.Bowler, d.PlayerDismissed, d.RunsOfBat, d.Extras, d.Wide, d.LegByes, d.Byes, d.NoBalls); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// LoadSeason returns the deliveries of the named snapshot in import order.
func (s *Store) LoadSeason(ctx context.Context, name string) ([]model.Delivery, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM seasons WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSeasonNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT match_id, venue, innings, batting_team, bowling_team, striker, bowler,
			player_dismissed, runs_of_bat, extras, wide, legbyes, byes, noballs
		FROM deliveries
		WHERE season_id = ?
		ORDER BY seq ASC`, id)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := []model.Delivery{}
	for rows.Next() {
		var d model.Delivery
		if err := rows.Scan(&d.MatchID, &d.Venue, &d.Innings, &d.BattingTeam, &d.BowlingTeam, &d.Striker, &d.Bowler,
			&d.PlayerDismissed, &d.RunsOfBat, &d.Extras, &d.Wide, &d.LegByes, &d.Byes, &d.NoBalls); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListSeasons returns every snapshot, most recently imported first.
func (s *Store) ListSeasons(ctx context.Context) ([]model.SeasonInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.id, s.name, s.source_path, s.imported_at, COUNT(d.seq)
		FROM seasons s
		LEFT JOIN deliveries d ON d.season_id = s.id
		GROUP BY s.id
		ORDER BY s.imported_at DESC, s.id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var seasons []model.SeasonInfo
	for rows.Next() {
		var info model.SeasonInfo
		var importedAt string
		if err := rows.Scan(&info.ID, &info.Name, &info.SourcePath, &importedAt, &info.Rows); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, importedAt)
		if err != nil {
			return nil, err
		}
		info.ImportedAt = parsed
		seasons = append(seasons, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return seasons, nil
}
