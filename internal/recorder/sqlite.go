package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rajeshacpt/Invest-Guru/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists quote and job history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers can query history while the app writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quote_history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at INTEGER NOT NULL,
			symbol     TEXT NOT NULL,
			name       TEXT,
			quote_date TEXT,
			quote_time TEXT,
			open       TEXT,
			high       TEXT,
			low        TEXT,
			close      TEXT,
			volume     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_symbol ON quote_history(symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_quote_ts ON quote_history(fetched_at)`,

		`CREATE TABLE IF NOT EXISTS job_history (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			submitted_at INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			job_id       TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_job_ts ON job_history(submitted_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuote(q *model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO quote_history
		(fetched_at, symbol, name, quote_date, quote_time, open, high, low, close, volume)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), q.Symbol, q.Name, q.Date, q.Time,
		q.Open, q.High, q.Low, q.Close, q.Volume,
	)
	return err
}

func (r *SQLiteRecorder) RecordJob(symbol, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO job_history
		(submitted_at, symbol, job_id)
		VALUES (?,?,?)`,
		time.Now().Unix(), symbol, jobID,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
