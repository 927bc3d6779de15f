package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagerec"
)

// Ensure LoggingExtractor implements pagerec.Extractor.
var _ pagerec.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pagerec.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagerec.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome. Profile
// extractions also report how many entries each list section produced.
func (e *LoggingExtractor) Extract(html string) (rec pagerec.Record, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"extractor", e.next.Name(),
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if p, ok := rec.(*pagerec.ProfileRecord); ok {
			attrs = append(attrs,
				"experience", len(p.Experience),
				"education", len(p.Education),
				"skills", len(p.Skills),
				"languages", len(p.Languages),
			)
		}
		if err != nil {
			e.logger.Error("extract", append(attrs, "err", err)...)
			return
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}

// Kind delegates to the wrapped extractor.
func (e *LoggingExtractor) Kind() pagerec.Kind {
	return e.next.Kind()
}

// Name delegates to the wrapped extractor.
func (e *LoggingExtractor) Name() string {
	return e.next.Name()
}
