package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
)

// FieldFunc extracts one field from an element. It reports false when the
// strategy found nothing usable, so the next strategy in a chain can run.
type FieldFunc func(s *goquery.Selection) (string, bool)

// firstOf runs strategies in order and returns the first usable value, or
// NotAvailable when every strategy came up empty.
func firstOf(s *goquery.Selection, fns []FieldFunc) string {
	for _, fn := range fns {
		if v, ok := fn(s); ok {
			return v
		}
	}
	return pagerec.NotAvailable
}

func found(v string) (string, bool) {
	return v, pagerec.IsAvailable(v)
}

// textOf cleans the first element matching selector.
func textOf(selector string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		return found(Clean(s.Find(selector).First()))
	}
}

// nthTextOf cleans the n-th (zero-based) element matching selector.
func nthTextOf(selector string, n int) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		return found(Clean(s.Find(selector).Eq(n)))
	}
}

// attrOf returns an attribute of the first element matching selector.
func attrOf(selector, attr string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		v, _ := s.Find(selector).First().Attr(attr)
		return found(strings.TrimSpace(v))
	}
}

// attrContaining returns the attribute of the first element matching
// selector whose value contains substr.
func attrContaining(selector, attr, substr string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		var v string
		s.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			val, ok := el.Attr(attr)
			if ok && strings.Contains(val, substr) {
				v = strings.TrimSpace(val)
				return false
			}
			return true
		})
		return found(v)
	}
}

// textExcluding cleans the first element matching selector whose text does
// not contain exclude.
func textExcluding(selector, exclude string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		var v string
		s.Find(selector).EachWithBreak(func(_ int, el *goquery.Selection) bool {
			if strings.Contains(el.Text(), exclude) {
				return true
			}
			v = Clean(el)
			return false
		})
		return found(v)
	}
}

// textMatching cleans the first element matching selector whose own text
// contains any of the words, compared case-insensitively.
func textMatching(selector string, words ...string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		el := s.Find(selector).FilterFunction(func(_ int, el *goquery.Selection) bool {
			return containsFold(el.Text(), words...)
		}).First()
		return found(Clean(el))
	}
}

// longestTextOf picks the longest cleaned text among elements matching
// selector inside the first container, skipping any that mention skills.
// Expanded and collapsed entries nest their description differently; the
// longest run is the description either way.
func longestTextOf(container, selector string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		var longest string
		s.Find(container).First().Find(selector).Each(func(_ int, el *goquery.Selection) {
			text := Clean(el)
			if !pagerec.IsAvailable(text) || strings.Contains(strings.ToLower(text), "skills") {
				return
			}
			if pagerec.RuneLen(text) > pagerec.RuneLen(longest) {
				longest = text
			}
		})
		return found(longest)
	}
}

// joinedTextOf cleans every element matching selector and joins the
// results with sep.
func joinedTextOf(selector, sep string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		var parts []string
		s.Find(selector).Each(func(_ int, el *goquery.Selection) {
			if text := pagerec.Clean(spacedText(el)); pagerec.IsAvailable(text) {
				parts = append(parts, text)
			}
		})
		return found(strings.Join(parts, sep))
	}
}

// expandableTextOf cleans the first element matching selector after
// dropping its expand button, whose label would otherwise end the text.
func expandableTextOf(selector, button string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		box := s.Find(selector).First()
		if box.Length() == 0 {
			return pagerec.NotAvailable, false
		}
		box = box.Clone()
		box.Find(button).Remove()
		return found(Clean(box))
	}
}

// ownText is the flat text of the element itself.
func ownText() FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		return found(pagerec.Clean(spacedText(s)))
	}
}

// nthTextOutside cleans the n-th element matching selector unless it sits
// inside an element matching ancestor.
func nthTextOutside(selector string, n int, ancestor string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		el := s.Find(selector).Eq(n)
		if el.Length() == 0 || el.Closest(ancestor).Length() > 0 {
			return pagerec.NotAvailable, false
		}
		return found(Clean(el))
	}
}

// lastTextOf cleans the last element matching selector.
func lastTextOf(selector string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		return found(Clean(s.Find(selector).Last()))
	}
}

// styleURLOf returns the url(...) of the first element matching selector's
// inline style.
func styleURLOf(selector string) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		style, _ := s.Find(selector).First().Attr("style")
		m := cssURLRe.FindStringSubmatch(style)
		if m == nil {
			return pagerec.NotAvailable, false
		}
		return found(m[1])
	}
}

// minRunes rejects values of n characters or fewer.
func minRunes(n int, fn FieldFunc) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		v, ok := fn(s)
		if !ok || pagerec.RuneLen(v) <= n {
			return pagerec.NotAvailable, false
		}
		return v, true
	}
}

// withKeyword rejects values that contain none of the keywords. The match is
// case-sensitive: "Master" marks a degree, "master" may be prose.
func withKeyword(keywords []string, fn FieldFunc) FieldFunc {
	return func(s *goquery.Selection) (string, bool) {
		v, ok := fn(s)
		if !ok {
			return v, false
		}
		for _, k := range keywords {
			if strings.Contains(v, k) {
				return v, true
			}
		}
		return pagerec.NotAvailable, false
	}
}
