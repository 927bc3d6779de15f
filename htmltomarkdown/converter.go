package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagerec"
)

// Ensure Converter implements pagerec.Converter at compile time.
var _ pagerec.Converter = (*Converter)(nil)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Converter renders long-form record fields, such as job descriptions and
// company about text, as Markdown.
type Converter struct {
	conv   *converter.Converter
	domain string
}

// Option configures a Converter.
type Option func(*Converter)

// WithDomain resolves relative links and images against domain, e.g.
// "https://www.linkedin.com". Saved pages keep the site's relative hrefs.
func WithDomain(domain string) Option {
	return func(c *Converter) {
		c.domain = domain
	}
}

// NewConverter creates a new Converter. Tables are kept since postings
// often list benefits or salary bands in them.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms an HTML fragment into trimmed Markdown.
// Returns EINVALID for blank input.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagerec.Errorf(pagerec.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if c.domain != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(c.domain))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", pagerec.Errorf(pagerec.EINTERNAL, "converting to markdown: %v", err)
	}
	return tidy(md), nil
}

// tidy drops trailing spaces, non-breaking spaces included, from each line
// and collapses runs of blank lines to one.
func tidy(md string) string {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\u00a0")
	}
	md = strings.Join(lines, "\n")
	return strings.TrimSpace(blankRunRe.ReplaceAllString(md, "\n\n"))
}
