package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pagerec"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagerec.ContentExtractor at compile time.
var _ pagerec.ContentExtractor = (*Extractor)(nil)

// Extractor finds the main content of a saved page with go-trafilatura.
// It backs long-form fields whose selectors no longer match.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Returns EINVALID for empty input and ENOTFOUND when the page has neither
// a title nor main content.
func (e *Extractor) Extract(rawHTML string) (*pagerec.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagerec.Errorf(pagerec.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, pagerec.Errorf(pagerec.EINTERNAL, "extracting main content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, pagerec.Errorf(pagerec.EINTERNAL, "rendering main content: %v", err)
		}
		contentHTML = buf.String()
	}

	title := pagerec.StripSiteSuffix(result.Metadata.Title)
	if title == "" && contentHTML == "" {
		return nil, pagerec.Errorf(pagerec.ENOTFOUND, "no main content found")
	}
	return &pagerec.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
