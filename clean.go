package pagerec

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// JunkPhrases are UI strings that leak into saved page text. Longer phrases
// come first so "...see more" is removed whole rather than leaving "...".
var JunkPhrases = []string{
	"Skip to main content",
	"...see more",
	"…see more",
	"… more",
	"See more",
}

var (
	horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe      = regexp.MustCompile(`\n{3,}`)
	junkRe            = junkPattern(JunkPhrases)
)

// Clean normalizes extracted text: invalid UTF-8 is replaced, runs of spaces
// and tabs collapse to one space, three or more newlines collapse to a blank
// line, junk phrases are removed and the result is trimmed. It returns
// NotAvailable when nothing meaningful is left.
func Clean(s string) string {
	if s == "" {
		return NotAvailable
	}
	s, _, err := transform.String(runes.ReplaceIllFormed(), s)
	if err != nil {
		return NotAvailable
	}
	s = horizontalSpaceRe.ReplaceAllString(s, " ")
	s = blankLinesRe.ReplaceAllString(strings.TrimSpace(s), "\n\n")
	s = strings.TrimSpace(junkRe.ReplaceAllString(s, ""))
	if s == "" {
		return NotAvailable
	}
	return s
}

// IsAvailable reports whether s holds extracted text.
func IsAvailable(s string) bool {
	return s != "" && s != NotAvailable
}

// RuneLen returns the number of characters in s. Length heuristics count
// characters, not bytes, so non-Latin profiles are not penalized.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// junkPattern builds one case-insensitive alternation of phrases. Word
// boundaries are only required next to letters and digits, since \b never
// matches before a leading "." or "…".
func junkPattern(phrases []string) *regexp.Regexp {
	alts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		var sb strings.Builder
		first, _ := utf8.DecodeRuneInString(p)
		last, _ := utf8.DecodeLastRuneInString(p)
		if isWordRune(first) {
			sb.WriteString(`\b`)
		}
		sb.WriteString(regexp.QuoteMeta(p))
		if isWordRune(last) {
			sb.WriteString(`\b`)
		}
		alts = append(alts, sb.String())
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
}

func isWordRune(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}
