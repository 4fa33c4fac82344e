package recorder

import (
	"path/filepath"
	"testing"

	"github.com/rajeshacpt/Invest-Guru/internal/model"
)

func TestSQLiteRecorder(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	rec, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder() returned error: %v", err)
	}
	defer rec.Close()

	q := &model.Quote{
		Symbol: "MSFT", Name: "Microsoft", Date: "2025-06-02", Time: "22:00:00",
		Open: "450.1", High: "455.9", Low: "449.2", Close: "454.3", Volume: "18200000",
	}
	if err := rec.RecordQuote(q); err != nil {
		t.Fatalf("RecordQuote() returned error: %v", err)
	}
	if err := rec.RecordQuote(q); err != nil {
		t.Fatalf("RecordQuote() returned error: %v", err)
	}
	if err := rec.RecordJob("MSFT", "123"); err != nil {
		t.Fatalf("RecordJob() returned error: %v", err)
	}

	var quotes int
	if err := rec.db.QueryRow(`SELECT COUNT(*) FROM quote_history WHERE symbol = ?`, "MSFT").Scan(&quotes); err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if quotes != 2 {
		t.Errorf("quote_history rows = %d, want 2", quotes)
	}

	var jobID string
	if err := rec.db.QueryRow(`SELECT job_id FROM job_history WHERE symbol = ?`, "MSFT").Scan(&jobID); err != nil {
		t.Fatalf("query job: %v", err)
	}
	if jobID != "123" {
		t.Errorf("job_id = %q, want %q", jobID, "123")
	}
}

func TestSQLiteRecorderReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	rec, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder() returned error: %v", err)
	}
	if err := rec.RecordJob("TSLA", "456"); err != nil {
		t.Fatalf("RecordJob() returned error: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	// Migrations are idempotent and history survives reopen.
	rec2, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer rec2.Close()

	var jobs int
	if err := rec2.db.QueryRow(`SELECT COUNT(*) FROM job_history`).Scan(&jobs); err != nil {
		t.Fatalf("count jobs: %v", err)
	}
	if jobs != 1 {
		t.Errorf("job_history rows = %d, want 1", jobs)
	}
}
