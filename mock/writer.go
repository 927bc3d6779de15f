package mock

import "github.com/fwojciec/pagerec"

var _ pagerec.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of pagerec.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(r pagerec.Record) error
}

func (w *RecordWriter) WriteRecord(r pagerec.Record) error {
	return w.WriteRecordFn(r)
}
