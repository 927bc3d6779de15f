package pagerec

import (
	"bytes"
	"encoding/json"
)

// RecordWriter persists an extracted record.
type RecordWriter interface {
	WriteRecord(r Record) error
}

// MarshalRecord encodes r as two-space indented JSON with a trailing
// newline. Non-ASCII text and HTML characters are written as-is.
func MarshalRecord(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, Errorf(EINTERNAL, "encoding record: %v", err)
	}
	return buf.Bytes(), nil
}
