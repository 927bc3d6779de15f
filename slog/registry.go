package slog

import (
	"log/slog"

	"github.com/fwojciec/pagerec"
)

// Ensure LoggingRegistry implements pagerec.ExtractorRegistry.
var _ pagerec.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry so every extractor it hands
// out logs its extractions.
type LoggingRegistry struct {
	next   pagerec.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next pagerec.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get returns the wrapped registry's extractor decorated with logging.
// Unknown names are logged and return nil.
func (r *LoggingRegistry) Get(name string) pagerec.Extractor {
	ext := r.next.Get(name)
	if ext == nil {
		r.logger.Warn("extractor lookup", "name", name, "found", false)
		return nil
	}
	r.logger.Debug("extractor lookup", "name", name, "found", true, "kind", ext.Kind())
	return NewLoggingExtractor(ext, r.logger)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(extractor pagerec.Extractor) {
	r.next.Register(extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []string {
	return r.next.List()
}
