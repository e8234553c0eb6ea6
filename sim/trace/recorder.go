package trace

import (
	"database/sql"
	"fmt"

	// SQLite driver, used through database/sql.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

const createEventsTable = `CREATE TABLE IF NOT EXISTS events (
	seq      INTEGER NOT NULL,
	time     REAL    NOT NULL,
	kind     TEXT    NOT NULL,
	machine  TEXT    NOT NULL,
	duration REAL    NOT NULL
)`

// Recorder stores trace records in a SQLite database, batching inserts
// into transactions. Like CSVWriter, it registers a flush-and-close
// handler with atexit.
type Recorder struct {
	path string
	db   *sql.DB

	pending   []Record
	batchSize int
	closed    bool
}

// NewRecorder opens (or creates) the database and the events table. An
// empty path gets a generated name of the form linesim_trace_<xid>.sqlite3.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		path = "linesim_trace_" + xid.New().String() + ".sqlite3"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening trace database: %w", err)
	}
	if _, err := db.Exec(createEventsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating events table: %w", err)
	}
	r := &Recorder{
		path:      path,
		db:        db,
		batchSize: 10000,
	}
	atexit.Register(func() { _ = r.Close() })
	return r, nil
}

// Path returns the database file the recorder writes to.
func (r *Recorder) Path() string {
	return r.path
}

// Append buffers a record, flushing when the batch fills.
func (r *Recorder) Append(rec Record) {
	r.pending = append(r.pending, rec)
	if len(r.pending) >= r.batchSize {
		_ = r.Flush()
	}
}

// Flush inserts all pending records inside one transaction.
func (r *Recorder) Flush() error {
	if len(r.pending) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning trace transaction: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO events (seq, time, kind, machine, duration) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing trace insert: %w", err)
	}
	for _, rec := range r.pending {
		if _, err := stmt.Exec(rec.Seq, rec.Time, rec.Kind, rec.Machine, rec.Duration); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("inserting trace record: %w", err)
		}
	}
	stmt.Close()
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing trace records: %w", err)
	}
	r.pending = nil
	return nil
}

// Close flushes pending records and closes the database. Safe to call
// more than once.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.Flush(); err != nil {
		return err
	}
	return r.db.Close()
}
