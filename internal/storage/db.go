package storage

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"vocabconv/internal"
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
  traceId TEXT NOT NULL,
  vocab TEXT NOT NULL,
  inputPath TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  records INTEGER NOT NULL,
  durationMs INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_vocab ON runs(vocab);
`
	_, err := d.conn.Exec(schema)
	return err
}

// InsertRun records one completed conversion in the ledger.
func (d *DB) InsertRun(run internal.ConversionRun) error {
	_, err := d.conn.Exec(
		`INSERT INTO runs (traceId, vocab, inputPath, outputPath, records, durationMs) VALUES (?, ?, ?, ?, ?, ?)`,
		run.TraceID, run.Vocab, run.InputPath, run.OutputPath, run.Records, run.DurationMs,
	)
	return err
}

func (d *DB) ListRuns(limit int) ([]internal.ConversionRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(
		`SELECT id, traceId, vocab, inputPath, outputPath, records, durationMs, createdAt FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ConversionRun
	for rows.Next() {
		var run internal.ConversionRun
		if err := rows.Scan(&run.ID, &run.TraceID, &run.Vocab, &run.InputPath, &run.OutputPath, &run.Records, &run.DurationMs, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func NewTraceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
