package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"toramboss/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL UNIQUE,
  status TEXT NOT NULL,
  pages INTEGER NOT NULL DEFAULT 0,
  records INTEGER NOT NULL DEFAULT 0,
  outputPath TEXT NOT NULL,
  error TEXT,
  startedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  finishedAt TEXT
);

CREATE TABLE IF NOT EXISTS bosses (
  position INTEGER PRIMARY KEY,
  runId INTEGER NOT NULL,
  name TEXT NOT NULL,
  diff TEXT NOT NULL,
  lvl TEXT,
  element TEXT NOT NULL,
  hp TEXT NOT NULL,
  xp TEXT NOT NULL,
  leveling TEXT NOT NULL,
  map TEXT NOT NULL,
  drops TEXT NOT NULL,
  FOREIGN KEY(runId) REFERENCES runs(id)
);
CREATE INDEX IF NOT EXISTS idx_bosses_name ON bosses(name);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) StartRun(traceID, outputPath string) (int, error) {
	result, err := d.conn.Exec(`INSERT INTO runs (traceId, status, outputPath) VALUES (?, ?, ?)`, traceID, string(internal.RunRunning), outputPath)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	return int(id), err
}

func (d *DB) FinishRun(runID int, status internal.RunStatus, pages, records int, runErr error) error {
	var errText *string
	if runErr != nil {
		s := runErr.Error()
		errText = &s
	}
	_, err := d.conn.Exec(`
UPDATE runs SET status = ?, pages = ?, records = ?, error = ?, finishedAt = CURRENT_TIMESTAMP
WHERE id = ?
`, string(status), pages, records, errText, runID)
	return err
}

func (d *DB) ListRuns(limit int) ([]internal.RunRow, error) {
	rows, err := d.conn.Query(`
SELECT id, traceId, status, pages, records, outputPath, error, startedAt, finishedAt
FROM runs ORDER BY id DESC LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RunRow
	for rows.Next() {
		var row internal.RunRow
		var status string
		if err := rows.Scan(&row.ID, &row.TraceID, &status, &row.Pages, &row.Records, &row.OutputPath, &row.Error, &row.StartedAt, &row.FinishedAt); err != nil {
			return nil, err
		}
		row.Status = internal.RunStatus(status)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) GetRun(runID int) (*internal.RunRow, error) {
	var row internal.RunRow
	var status string
	err := d.conn.QueryRow(`
SELECT id, traceId, status, pages, records, outputPath, error, startedAt, finishedAt
FROM runs WHERE id = ?
`, runID).Scan(&row.ID, &row.TraceID, &status, &row.Pages, &row.Records, &row.OutputPath, &row.Error, &row.StartedAt, &row.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	row.Status = internal.RunStatus(status)
	return &row, nil
}

// ReplaceBosses swaps the stored snapshot for records, keeping their order.
func (d *DB) ReplaceBosses(runID int, records []internal.BossRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM bosses`); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO bosses (position, runId, name, diff, lvl, element, hp, xp, leveling, map, drops)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		var lvl *string
		if r.Lvl != "" {
			v := r.Lvl
			lvl = &v
		}
		if _, err := stmt.Exec(i+1, runID, r.Name, r.Diff, lvl, r.Element, r.HP, r.XP, r.Leveling, r.Map, r.Drops); err != nil {
			return fmt.Errorf("insert boss %q: %w", r.Name, err)
		}
	}

	return tx.Commit()
}

func (d *DB) ListBosses() ([]internal.BossRecord, error) {
	rows, err := d.conn.Query(`
SELECT name, diff, lvl, element, hp, xp, leveling, map, drops
FROM bosses ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.BossRecord
	for rows.Next() {
		var r internal.BossRecord
		var lvl sql.NullString
		if err := rows.Scan(&r.Name, &r.Diff, &lvl, &r.Element, &r.HP, &r.XP, &r.Leveling, &r.Map, &r.Drops); err != nil {
			return nil, err
		}
		r.Lvl = lvl.String
		out = append(out, r)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
