package store

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS team_game_records (
	game_id          INTEGER NOT NULL,
	season           TEXT NOT NULL,
	game_date        TEXT NOT NULL,
	team             TEXT NOT NULL,
	opponent         TEXT NOT NULL,
	is_home          INTEGER NOT NULL,
	goals_for        INTEGER NOT NULL,
	goals_against    INTEGER NOT NULL,
	goal_diff        INTEGER NOT NULL,
	game_location    TEXT NOT NULL,
	rest_days        INTEGER,
	travel_distance  REAL,
	opponent_win_pct REAL,
	PRIMARY KEY (game_id, team)
);
`

// SQLiteStore persists the derived dataset in a local SQLite database so
// it survives restarts without a refetch.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SetRecords replaces the stored dataset in a single transaction.
func (s *SQLiteStore) SetRecords(records []domain.DerivedRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM team_game_records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO team_game_records (
		game_id, season, game_date, team, opponent, is_home,
		goals_for, goals_against, goal_diff, game_location,
		rest_days, travel_distance, opponent_win_pct
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(
			rec.GameID, rec.Season, rec.Date, rec.Team, rec.Opponent, rec.IsHome,
			rec.GoalsFor, rec.GoalsAgainst, rec.GoalDiff, rec.GameLocation,
			nullableInt(rec.RestDays), nullableFloat(rec.TravelDistance), nullableFloat(rec.OpponentWinPct),
		); err != nil {
			return fmt.Errorf("inserting record for game %d team %s: %w", rec.GameID, rec.Team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing records: %w", err)
	}
	return nil
}

// ListRecords returns the stored dataset in its canonical order.
func (s *SQLiteStore) ListRecords() ([]domain.DerivedRecord, error) {
	rows, err := s.db.Query(`SELECT
		game_id, season, game_date, team, opponent, is_home,
		goals_for, goals_against, goal_diff, game_location,
		rest_days, travel_distance, opponent_win_pct
	FROM team_game_records
	ORDER BY season, game_date, team, game_id`)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.DerivedRecord
	for rows.Next() {
		var (
			rec     domain.DerivedRecord
			rest    sql.NullInt64
			travel  sql.NullFloat64
			oppWins sql.NullFloat64
		)
		if err := rows.Scan(
			&rec.GameID, &rec.Season, &rec.Date, &rec.Team, &rec.Opponent, &rec.IsHome,
			&rec.GoalsFor, &rec.GoalsAgainst, &rec.GoalDiff, &rec.GameLocation,
			&rest, &travel, &oppWins,
		); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if rest.Valid {
			v := int(rest.Int64)
			rec.RestDays = &v
		}
		if travel.Valid {
			v := travel.Float64
			rec.TravelDistance = &v
		}
		if oppWins.Valid {
			v := oppWins.Float64
			rec.OpponentWinPct = &v
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
