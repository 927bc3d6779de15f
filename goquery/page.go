package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
)

// PageOption configures the company and job extractors.
type PageOption func(*pageConfig)

type pageConfig struct {
	converter pagerec.Converter
	content   pagerec.ContentExtractor
}

// WithConverter renders long-form fields (company about, job description)
// as Markdown instead of plain text.
func WithConverter(c pagerec.Converter) PageOption {
	return func(cfg *pageConfig) {
		cfg.converter = c
	}
}

// WithContentExtractor sets a main-content extractor used when the
// selectors for a long-form field or a title match nothing.
func WithContentExtractor(c pagerec.ContentExtractor) PageOption {
	return func(cfg *pageConfig) {
		cfg.content = c
	}
}

func newPageConfig(opts []PageOption) pageConfig {
	var cfg pageConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// page is one parsed document plus the lazily computed main content.
type page struct {
	cfg  pageConfig
	raw  string
	doc  *goquery.Document
	main *pagerec.ExtractResult
	done bool
}

func parsePage(cfg pageConfig, html string) (*page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagerec.Errorf(pagerec.EINVALID, "failed to parse HTML: %v", err)
	}
	return &page{cfg: cfg, raw: html, doc: doc}, nil
}

// field runs strategies against the whole document.
func (p *page) field(fns ...FieldFunc) string {
	return firstOf(p.doc.Selection, fns)
}

// mainContent runs the content extractor at most once per page.
func (p *page) mainContent() *pagerec.ExtractResult {
	if !p.done {
		p.done = true
		if p.cfg.content != nil {
			if res, err := p.cfg.content.Extract(p.raw); err == nil {
				p.main = res
			}
		}
	}
	return p.main
}

// longForm renders the first element matching selector within scope. When
// nothing matches, the page's main content stands in.
func (p *page) longForm(scope *goquery.Selection, selector string) string {
	if el := scope.Find(selector).First(); el.Length() > 0 {
		if text := p.render(el); pagerec.IsAvailable(text) {
			return text
		}
	}
	if res := p.mainContent(); res != nil && strings.TrimSpace(res.ContentHTML) != "" {
		frag, err := goquery.NewDocumentFromReader(strings.NewReader(res.ContentHTML))
		if err == nil {
			return p.render(frag.Find("body"))
		}
	}
	return pagerec.NotAvailable
}

// title returns v, or the main content title when v is unavailable.
func (p *page) title(v string) string {
	if pagerec.IsAvailable(v) {
		return v
	}
	if res := p.mainContent(); res != nil {
		return pagerec.Clean(res.Title)
	}
	return v
}

// render converts el to Markdown when a converter is set, and to cleaned
// text otherwise or when conversion fails. Expand buttons are dropped
// before conversion.
func (p *page) render(el *goquery.Selection) string {
	if p.cfg.converter != nil {
		el := el.Clone()
		el.Find("button").Remove()
		if html, err := goquery.OuterHtml(el); err == nil {
			if md, err := p.cfg.converter.Convert(html); err == nil {
				if md = strings.TrimSpace(md); md != "" {
					return md
				}
			}
		}
	}
	return Clean(el)
}
