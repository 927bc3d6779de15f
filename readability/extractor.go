package readability

import (
	"strings"

	"github.com/fwojciec/pagerec"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagerec.ContentExtractor at compile time.
var _ pagerec.ContentExtractor = (*Extractor)(nil)

// Extractor finds the main content of a saved page with go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns EINVALID for empty input and ENOTFOUND when the page has neither
// a title nor readable content.
func (e *Extractor) Extract(rawHTML string) (*pagerec.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagerec.Errorf(pagerec.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, pagerec.Errorf(pagerec.EINTERNAL, "extracting main content: %v", err)
	}

	res := &pagerec.ExtractResult{
		Title:       pagerec.StripSiteSuffix(article.Title),
		ContentHTML: strings.TrimSpace(article.Content),
	}
	if res.Title == "" && strings.TrimSpace(article.TextContent) == "" {
		return nil, pagerec.Errorf(pagerec.ENOTFOUND, "no main content found")
	}
	return res, nil
}
