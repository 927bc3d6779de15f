package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Clean flattens the first node of s to text and normalizes it with
// pagerec.Clean. Each text run becomes its own line, <br> breaks a line,
// and every <p> or <li> collapses to a single line of its own text.
// Returns NotAvailable for an empty selection.
func Clean(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return pagerec.NotAvailable
	}
	return pagerec.Clean(blockText(s.Get(0)))
}

// blockText renders n the way a reader sees it in a profile card: one line
// per text run, with paragraphs and list items kept whole.
func blockText(n *html.Node) string {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data)
	}

	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				lines = append(lines, t)
			}
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Br:
				return
			case atom.Script, atom.Style, atom.Template, atom.Noscript:
				return
			case atom.P, atom.Li:
				if t := inlineText(n); t != "" {
					lines = append(lines, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return strings.Join(lines, "\n")
}

// inlineText concatenates all text below n and collapses whitespace.
func inlineText(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb, "")
	return strings.Join(strings.Fields(sb.String()), " ")
}

// spacedText joins the trimmed text runs of s with single spaces. It is the
// flat view of an element used for length and keyword heuristics.
func spacedText(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	var sb strings.Builder
	for _, n := range s.Nodes {
		collectText(n, &sb, " ")
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// collectText appends the text below n to sb, writing sep after each run.
func collectText(n *html.Node, sb *strings.Builder, sep string) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteString(sep)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template, atom.Noscript:
			return
		case atom.Br:
			sb.WriteByte(' ')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb, sep)
	}
}
