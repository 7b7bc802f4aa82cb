package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Alexanderh2004/survivor-automation/model"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	external_id TEXT PRIMARY KEY,
	id          TEXT NOT NULL,
	home_id     TEXT NOT NULL,
	away_id     TEXT NOT NULL,
	home_code   TEXT NOT NULL,
	away_code   TEXT NOT NULL,
	season      TEXT NOT NULL,
	week        INTEGER NOT NULL,
	kickoff     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_matches_week ON matches(week, kickoff);`

func New(ctx context.Context, path string) (DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error creating match table: %w", err)
	}

	return &sqliteDB{conn: conn}, nil
}

type sqliteDB struct {
	conn *sql.DB
}

func (db *sqliteDB) UpsertMatch(ctx context.Context, m *model.Match) error {
	const query = `INSERT OR REPLACE INTO matches
		(external_id, id, home_id, away_id, home_code, away_code, season, week, kickoff)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := db.conn.ExecContext(ctx, query,
		m.ExternalID, m.ID, m.HomeID, m.AwayID, m.HomeCode, m.AwayCode,
		m.Season, m.Week, m.Kickoff.UTC().Unix())
	if err != nil {
		return fmt.Errorf("error upserting match %s: %w", m.ExternalID, err)
	}
	return nil
}

func (db *sqliteDB) ListMatchesByWeek(ctx context.Context, week int) ([]model.Match, error) {
	const query = `SELECT external_id, id, home_id, away_id, home_code, away_code, season, week, kickoff
		FROM matches WHERE week = ? ORDER BY kickoff ASC, external_id ASC`

	rows, err := db.conn.QueryContext(ctx, query, week)
	if err != nil {
		return nil, fmt.Errorf("error listing matches for week %d: %w", week, err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

func (db *sqliteDB) Weeks(ctx context.Context) ([]int, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT DISTINCT week FROM matches ORDER BY week ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing weeks: %w", err)
	}
	defer rows.Close()

	var weeks []int
	for rows.Next() {
		var w int
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

func (db *sqliteDB) Close() error {
	return db.conn.Close()
}

func scanMatch(rows *sql.Rows) (*model.Match, error) {
	var m model.Match
	var kickoff int64
	err := rows.Scan(&m.ExternalID, &m.ID, &m.HomeID, &m.AwayID, &m.HomeCode,
		&m.AwayCode, &m.Season, &m.Week, &kickoff)
	if err != nil {
		return nil, fmt.Errorf("error scanning match row: %w", err)
	}
	m.Kickoff = time.Unix(kickoff, 0).UTC()
	return &m, nil
}
