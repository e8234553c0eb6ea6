package trace

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.sqlite3")
	r, err := NewRecorder(path)
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	for _, rec := range sampleRecords() {
		r.Append(rec)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("reopening database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count); err != nil {
		t.Fatalf("counting events: %v", err)
	}
	if count != 3 {
		t.Errorf("event count = %d, want 3", count)
	}

	var machine string
	var duration float64
	err = db.QueryRow("SELECT machine, duration FROM events WHERE seq = 3").Scan(&machine, &duration)
	if err != nil {
		t.Fatalf("selecting record: %v", err)
	}
	if machine != "B" || duration != 2.5 {
		t.Errorf("record = %s/%v, want B/2.5", machine, duration)
	}
}

func TestRecorder_FlushWithoutRecords(t *testing.T) {
	r, err := NewRecorder(filepath.Join(t.TempDir(), "trace.sqlite3"))
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	defer r.Close()

	if err := r.Flush(); err != nil {
		t.Errorf("empty Flush: %v", err)
	}
}
