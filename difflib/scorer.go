// Package difflib scores text similarity with go-difflib's SequenceMatcher
// (Ratcliff/Obershelp matching blocks).
package difflib

import (
	"github.com/fwojciec/pagerec"
	"github.com/pmezard/go-difflib/difflib"
)

// Ensure Scorer implements pagerec.Scorer at compile time.
var _ pagerec.Scorer = (*Scorer)(nil)

// Scorer computes character-level similarity ratios.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Ratio returns 2*M/T, where M is the number of characters in matching
// blocks and T the total number of characters in both strings.
// Two empty strings are identical.
func (s *Scorer) Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcher(chars(a), chars(b))
	return m.Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
