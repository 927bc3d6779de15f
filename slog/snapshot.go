package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagerec"
)

// Ensure LoggingSnapshotSource implements pagerec.SnapshotSource.
var _ pagerec.SnapshotSource = (*LoggingSnapshotSource)(nil)

// LoggingSnapshotSource wraps a SnapshotSource with logging.
type LoggingSnapshotSource struct {
	next   pagerec.SnapshotSource
	logger *slog.Logger
}

// NewLoggingSnapshotSource creates a new LoggingSnapshotSource.
func NewLoggingSnapshotSource(next pagerec.SnapshotSource, logger *slog.Logger) *LoggingSnapshotSource {
	return &LoggingSnapshotSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the operation.
func (s *LoggingSnapshotSource) Load(path string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("snapshot load",
			"path", path,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(path)
}
