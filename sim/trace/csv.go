package trace

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVWriter streams trace records to a CSV file, buffering writes.
// A flush-and-close handler is registered with atexit so records are not
// lost when the process exits through atexit.Exit.
type CSVWriter struct {
	path string
	file *os.File

	buffer     []Record
	bufferSize int
	closed     bool
}

// NewCSVWriter creates the trace file and writes the header. An empty path
// gets a generated name of the form linesim_trace_<xid>.csv.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if path == "" {
		path = "linesim_trace_" + xid.New().String() + ".csv"
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}
	if _, err := fmt.Fprintln(file, "seq,time,kind,machine,duration"); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing trace header: %w", err)
	}
	w := &CSVWriter{
		path:       path,
		file:       file,
		bufferSize: 1000,
	}
	atexit.Register(func() { _ = w.Close() })
	return w, nil
}

// Path returns the file the writer streams to.
func (w *CSVWriter) Path() string {
	return w.path
}

// Append buffers a record, flushing when the buffer fills.
func (w *CSVWriter) Append(r Record) {
	w.buffer = append(w.buffer, r)
	if len(w.buffer) >= w.bufferSize {
		_ = w.Flush()
	}
}

// Flush writes all buffered records to the file.
func (w *CSVWriter) Flush() error {
	for _, r := range w.buffer {
		_, err := fmt.Fprintf(w.file, "%d,%.10f,%s,%s,%.10f\n",
			r.Seq, r.Time, r.Kind, r.Machine, r.Duration)
		if err != nil {
			return fmt.Errorf("writing trace record: %w", err)
		}
	}
	w.buffer = nil
	return nil
}

// Close flushes remaining records and closes the file. Safe to call more
// than once.
func (w *CSVWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.Flush(); err != nil {
		return err
	}
	return w.file.Close()
}
