package pagerec

import "strings"

// DefaultSimilarityThreshold is the ratio at or above which two texts count
// as near-duplicates.
const DefaultSimilarityThreshold = 0.90

// Scorer measures how similar two strings are, from 0 (disjoint) to 1
// (identical).
type Scorer interface {
	Ratio(a, b string) float64
}

// DuplicateDetector decides whether a profile's about blurb repeats text
// already present in its experience or education entries. Saved pages
// sometimes clone an entry's description into the about card.
type DuplicateDetector struct {
	// Scorer computes edit similarity. When nil only substring containment
	// is checked.
	Scorer Scorer

	// Threshold is the minimum ratio treated as a duplicate.
	// Defaults to DefaultSimilarityThreshold.
	Threshold float64
}

// IsAboutDuplicate reports whether about matches any text field of the
// given entries, either by containment in one direction or by a similarity
// ratio at or above the threshold. Comparison ignores case and whitespace.
func (d *DuplicateDetector) IsAboutDuplicate(about string, experience []ExperienceEntry, education []EducationEntry) bool {
	if !IsAvailable(about) {
		return false
	}
	a := normalizeForCompare(about)
	if a == "" {
		return false
	}

	for _, e := range experience {
		if d.matchesAny(a, e.Details, e.CompanyName, e.Role, e.CompanyLocation) {
			return true
		}
	}
	for _, e := range education {
		if d.matchesAny(a, e.Details, e.Degree, e.InstitutionName) {
			return true
		}
	}
	return false
}

func (d *DuplicateDetector) matchesAny(a string, fields ...string) bool {
	for _, field := range fields {
		if !IsAvailable(field) {
			continue
		}
		f := normalizeForCompare(field)
		if f == "" {
			continue
		}
		if strings.Contains(a, f) || strings.Contains(f, a) {
			return true
		}
		if d.Scorer != nil && d.Scorer.Ratio(a, f) >= d.threshold() {
			return true
		}
	}
	return false
}

func (d *DuplicateDetector) threshold() float64 {
	if d.Threshold > 0 {
		return d.Threshold
	}
	return DefaultSimilarityThreshold
}

func normalizeForCompare(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
