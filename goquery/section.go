package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
	"golang.org/x/text/cases"
)

var cssURLRe = regexp.MustCompile(`url\("?(.+?)"?\)`)

// Anchor describes how to find a profile section. Anchors are tried in
// order: the div with ID, then a short heading whose text contains
// Heading, then the Fallback selector. The section is the nearest ancestor
// of the anchor matching one of Containers, tried in order.
type Anchor struct {
	// ID is the id of a marker div inside the section.
	ID string

	// Heading is the section title, matched case-insensitively.
	Heading string

	// HeadingTags selects candidate heading elements. Defaults to "h2".
	HeadingTags string

	// Containers are selectors for the enclosing section-like element.
	// Defaults to "section".
	Containers []string

	// Fallback selects the section directly when no anchor is found.
	Fallback string
}

// locate returns the section for a, or an empty selection when the page
// has no such section. maxHeadingRunes bounds heading text length so body
// prose mentioning the title is not mistaken for the heading.
func locate(doc *goquery.Selection, a Anchor, maxHeadingRunes int) *goquery.Selection {
	if a.ID != "" {
		marker := doc.Find("div[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			id, _ := s.Attr("id")
			return id == a.ID
		}).First()
		if sec := enclosing(marker, a.Containers); sec.Length() > 0 {
			return sec
		}
	}

	if a.Heading != "" {
		tags := a.HeadingTags
		if tags == "" {
			tags = "h2"
		}
		heading := doc.Find(tags).FilterFunction(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(spacedText(s))
			return text != "" && pagerec.RuneLen(text) < maxHeadingRunes && containsFold(text, a.Heading)
		}).First()
		if sec := enclosing(heading, a.Containers); sec.Length() > 0 {
			return sec
		}
	}

	if a.Fallback != "" {
		return doc.Find(a.Fallback).First()
	}
	return doc.Slice(0, 0)
}

// enclosing returns the nearest strict ancestor of s matching the first
// container selector that matches anything.
func enclosing(s *goquery.Selection, containers []string) *goquery.Selection {
	if s.Length() == 0 {
		return s
	}
	if len(containers) == 0 {
		containers = []string{"section"}
	}
	parent := s.Parent()
	for _, c := range containers {
		if sec := parent.Closest(c); sec.Length() > 0 {
			return sec
		}
	}
	return s.Slice(0, 0)
}

// containsFold reports whether s contains any of the words under Unicode
// case folding.
func containsFold(s string, words ...string) bool {
	fold := cases.Fold()
	fs := fold.String(s)
	for _, w := range words {
		if strings.Contains(fs, fold.String(w)) {
			return true
		}
	}
	return false
}
