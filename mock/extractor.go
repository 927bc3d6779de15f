package mock

import "github.com/fwojciec/pagerec"

var _ pagerec.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagerec.Extractor.
type Extractor struct {
	ExtractFn func(html string) (pagerec.Record, error)
	KindFn    func() pagerec.Kind
	NameFn    func() string
}

func (e *Extractor) Extract(html string) (pagerec.Record, error) {
	return e.ExtractFn(html)
}

func (e *Extractor) Kind() pagerec.Kind {
	return e.KindFn()
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

var _ pagerec.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of pagerec.ExtractorRegistry.
type ExtractorRegistry struct {
	GetFn      func(name string) pagerec.Extractor
	RegisterFn func(extractor pagerec.Extractor)
	ListFn     func() []string
}

func (r *ExtractorRegistry) Get(name string) pagerec.Extractor {
	return r.GetFn(name)
}

func (r *ExtractorRegistry) Register(extractor pagerec.Extractor) {
	r.RegisterFn(extractor)
}

func (r *ExtractorRegistry) List() []string {
	return r.ListFn()
}

var _ pagerec.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of pagerec.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*pagerec.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*pagerec.ExtractResult, error) {
	return e.ExtractFn(html)
}
