// Package fs reads saved pages from and writes records to the local
// filesystem.
package fs

import (
	"errors"
	"os"

	"github.com/fwojciec/pagerec"
)

// Ensure SnapshotSource implements pagerec.SnapshotSource at compile time.
var _ pagerec.SnapshotSource = (*SnapshotSource)(nil)

// SnapshotSource loads saved HTML pages from disk.
type SnapshotSource struct{}

// NewSnapshotSource creates a new SnapshotSource.
func NewSnapshotSource() *SnapshotSource {
	return &SnapshotSource{}
}

// Load reads the whole file at path. The bytes are returned unchanged;
// invalid UTF-8 is repaired when fields are cleaned.
func (s *SnapshotSource) Load(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", pagerec.Errorf(pagerec.ENOTFOUND, "File not found at %s", path)
	} else if err != nil {
		return "", pagerec.Errorf(pagerec.EINTERNAL, "stat %s: %v", path, err)
	}
	if info.IsDir() {
		return "", pagerec.Errorf(pagerec.EINVALID, "%s is a directory", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", pagerec.Errorf(pagerec.EINTERNAL, "reading %s: %v", path, err)
	}
	return string(b), nil
}
