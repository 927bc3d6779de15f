package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagerec"
)

// variants lists the markup variants per record kind; the first is the
// default.
var variants = map[string][]string{
	"person":  {"classic", "sdui"},
	"company": {"linkedin", "indeed"},
	"job":     {"linkedin", "indeed"},
}

// siteDomains maps a variant to the site its saved pages came from, so
// relative links in Markdown output stay usable.
var siteDomains = map[string]string{
	"linkedin": "https://www.linkedin.com",
	"indeed":   "https://www.indeed.com",
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Kind                string  `short:"k" default:"person" enum:"person,company,job" help:"Page type: person, company or job"`
	Variant             string  `short:"v" help:"Markup variant (person: classic|sdui, company: linkedin|indeed, job: linkedin|indeed)"`
	SimilarityThreshold float64 `default:"0.90" help:"Ratio in (0, 1] at which the about text counts as a copy of an entry"`
	Markdown            bool    `short:"m" help:"Render job descriptions and company about text as Markdown"`
	ContentEngine       string  `default:"trafilatura" enum:"trafilatura,readability,none" help:"Main-content fallback for descriptions: trafilatura, readability or none"`
	Output              string  `short:"o" type:"path" help:"Write the record to this file instead of stdout"`
	LogLevel            string  `default:"info" enum:"debug,info,warn,error" help:"Diagnostic log level"`
	Quiet               bool    `short:"q" help:"Suppress diagnostics"`
	Path                string  `arg:"" optional:"" help:"Saved HTML page"`
}

// validate rejects flag values the extractors would otherwise replace with
// their defaults.
func (c *CLI) validate() error {
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold > 1 {
		return pagerec.Errorf(pagerec.EINVALID, "similarity threshold must be in (0, 1], got %v", c.SimilarityThreshold)
	}
	return nil
}

// resolveVariant returns the requested variant, or the kind's default.
func (c *CLI) resolveVariant() (string, error) {
	known := variants[c.Kind]
	if c.Variant == "" {
		return known[0], nil
	}
	for _, v := range known {
		if v == c.Variant {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown %s variant %q (want one of: %s)", c.Kind, c.Variant, strings.Join(known, ", "))
}
