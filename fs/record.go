package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/pagerec"
)

// Ensure RecordWriter implements pagerec.RecordWriter at compile time.
var _ pagerec.RecordWriter = (*RecordWriter)(nil)

// RecordWriter writes a record as JSON to a file. The record is written to
// a temporary file next to the target and renamed into place, so readers
// never see a partial record.
type RecordWriter struct {
	path string
}

// NewRecordWriter creates a RecordWriter targeting path.
func NewRecordWriter(path string) *RecordWriter {
	return &RecordWriter{path: path}
}

func (w *RecordWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteRecord encodes r and replaces the target file with it.
func (w *RecordWriter) WriteRecord(r pagerec.Record) error {
	b, err := pagerec.MarshalRecord(r)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return pagerec.Errorf(pagerec.EINTERNAL, "creating output directory: %v", err)
	}
	if err := os.WriteFile(w.tempPath(), b, 0644); err != nil {
		return pagerec.Errorf(pagerec.EINTERNAL, "writing record: %v", err)
	}
	if err := os.Rename(w.tempPath(), w.path); err != nil {
		_ = os.Remove(w.tempPath())
		return pagerec.Errorf(pagerec.EINTERNAL, "replacing record: %v", err)
	}
	return nil
}
