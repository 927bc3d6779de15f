package goquery

import (
	"sort"

	"github.com/fwojciec/pagerec"
)

var _ pagerec.ExtractorRegistry = (*Registry)(nil)

// Registry manages extractors by name. There is no markup detection:
// callers name the page type and variant they saved.
type Registry struct {
	extractors map[string]pagerec.Extractor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]pagerec.Extractor),
	}
}

// NewDefaultRegistry returns a Registry holding every built-in extractor.
// opts and scorer configure the person extractors; pageOpts configure the
// company and job extractors.
func NewDefaultRegistry(opts Options, scorer pagerec.Scorer, pageOpts ...PageOption) *Registry {
	r := NewRegistry()
	r.Register(NewProfileExtractor(ClassicMarkup(opts), opts, scorer))
	r.Register(NewProfileExtractor(SDUIMarkup(opts), opts, scorer))
	r.Register(NewLinkedInCompanyExtractor(pageOpts...))
	r.Register(NewIndeedCompanyExtractor(pageOpts...))
	r.Register(NewLinkedInJobExtractor(pageOpts...))
	r.Register(NewIndeedJobExtractor(pageOpts...))
	return r
}

// Get returns the extractor registered under name.
// Returns nil if no extractor is registered for the name.
func (r *Registry) Get(name string) pagerec.Extractor {
	return r.extractors[name]
}

// Register adds an extractor under its name.
// If an extractor is already registered for the name, it is replaced.
func (r *Registry) Register(extractor pagerec.Extractor) {
	r.extractors[extractor.Name()] = extractor
}

// List returns all registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
