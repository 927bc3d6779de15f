package pagerec

import "strings"

// Extractor turns one saved HTML page into one record. Each extractor
// targets a single page type and markup variant; callers pick the variant.
type Extractor interface {
	// Extract parses raw HTML and returns the record. Missing fields are
	// reported as NotAvailable, never as errors; an error means the
	// document itself could not be processed.
	Extract(html string) (Record, error)

	// Kind returns the kind of record this extractor produces.
	Kind() Kind

	// Name returns the extractor's identifier (e.g., "person/classic").
	Name() string
}

// ExtractorRegistry manages extractors by name.
type ExtractorRegistry interface {
	// Get returns the extractor registered under name.
	// Returns nil if no extractor is registered for the name.
	Get(name string) Extractor

	// Register adds an extractor under its name.
	Register(extractor Extractor)

	// List returns all registered names in sorted order.
	List() []string
}

// SnapshotSource loads a saved page.
type SnapshotSource interface {
	// Load reads the whole snapshot at path.
	// Returns ENOTFOUND if the snapshot does not exist.
	Load(path string) (string, error)
}

// ExtractResult holds the main content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor extracts main content from HTML pages, removing
// boilerplate. It is the last fallback for long-form fields whose
// selectors matched nothing.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// siteSuffixes are the site names job boards append to page titles.
var siteSuffixes = []string{"LinkedIn", "Indeed.com", "Indeed"}

// StripSiteSuffix removes trailing " | LinkedIn" or " - Indeed.com" style
// site names from a page title.
func StripSiteSuffix(title string) string {
	title = strings.TrimSpace(title)
	for {
		trimmed := title
		for _, site := range siteSuffixes {
			for _, sep := range []string{" | ", " - "} {
				trimmed = strings.TrimSuffix(trimmed, sep+site)
			}
		}
		if trimmed == title {
			return title
		}
		title = strings.TrimSpace(trimmed)
	}
}
