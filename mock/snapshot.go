package mock

import "github.com/fwojciec/pagerec"

var _ pagerec.SnapshotSource = (*SnapshotSource)(nil)

// SnapshotSource is a mock implementation of pagerec.SnapshotSource.
type SnapshotSource struct {
	LoadFn func(path string) (string, error)
}

func (s *SnapshotSource) Load(path string) (string, error) {
	return s.LoadFn(path)
}
