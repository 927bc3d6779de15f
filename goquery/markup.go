package goquery

import (
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
)

// Options holds the tunable heuristics shared by profile markups. Zero
// fields take the value from DefaultOptions.
type Options struct {
	// SimilarityThreshold is the ratio at which the about blurb counts as a
	// copy of an experience or education field.
	SimilarityThreshold float64

	// MinAboutRunes is the length an about text must exceed.
	MinAboutRunes int

	// MinEducationItemRunes is the length an education item's text must
	// reach to count as an entry.
	MinEducationItemRunes int

	// SubstantialEntryRunes is the length past which an experience item
	// without a date still counts as an entry.
	SubstantialEntryRunes int

	// ShortChipRunes is the length below which an item mentioning skills is
	// taken for a skill chip rather than a position.
	ShortChipRunes int

	// HeadingMaxRunes bounds the text of an element accepted as a section
	// heading.
	HeadingMaxRunes int

	// Now is the reference time for date ranges. Defaults to time.Now.
	Now func() time.Time
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SimilarityThreshold == 0 {
		o.SimilarityThreshold = d.SimilarityThreshold
	}
	if o.MinAboutRunes == 0 {
		o.MinAboutRunes = d.MinAboutRunes
	}
	if o.MinEducationItemRunes == 0 {
		o.MinEducationItemRunes = d.MinEducationItemRunes
	}
	if o.SubstantialEntryRunes == 0 {
		o.SubstantialEntryRunes = d.SubstantialEntryRunes
	}
	if o.ShortChipRunes == 0 {
		o.ShortChipRunes = d.ShortChipRunes
	}
	if o.HeadingMaxRunes == 0 {
		o.HeadingMaxRunes = d.HeadingMaxRunes
	}
	if o.Now == nil {
		o.Now = d.Now
	}
	return o
}

// DefaultOptions returns the standard heuristics.
func DefaultOptions() Options {
	return Options{
		SimilarityThreshold:   pagerec.DefaultSimilarityThreshold,
		MinAboutRunes:         20,
		MinEducationItemRunes: 50,
		SubstantialEntryRunes: 100,
		ShortChipRunes:        150,
		HeadingMaxRunes:       50,
		Now:                   time.Now,
	}
}

// ItemsFunc selects the repeating items of a located section.
type ItemsFunc func(section *goquery.Selection) *goquery.Selection

// AcceptFunc reports whether an item is a real entry rather than layout
// clutter.
type AcceptFunc func(item *goquery.Selection) bool

// ProfileMarkup is the set of anchors and field strategies matching one
// version of the person profile page. Every field lists strategies in
// order; the first that yields text wins.
type ProfileMarkup struct {
	Name       string
	Basic      BasicInfoMarkup
	About      AboutMarkup
	Experience ExperienceMarkup
	Education  EducationMarkup
	Skills     SkillsMarkup
	Languages  LanguagesMarkup
}

// BasicInfoMarkup locates the top card fields.
type BasicInfoMarkup struct {
	// Scope selects the top card. Empty means the whole document.
	Scope string

	Name         []FieldFunc
	Headline     []FieldFunc
	Location     []FieldFunc
	ProfileImage []FieldFunc
	CoverImage   []FieldFunc
}

// AboutMarkup locates the free-text summary.
type AboutMarkup struct {
	Anchor Anchor
	Text   []FieldFunc
}

// ExperienceMarkup locates positions.
type ExperienceMarkup struct {
	Anchor Anchor
	Items  ItemsFunc
	Accept AcceptFunc

	Role []FieldFunc
	// CompanyLine holds "Company · Employment type".
	CompanyLine []FieldFunc
	Dates       []FieldFunc
	Location    []FieldFunc
	Details     []FieldFunc
}

// EducationMarkup locates schools.
type EducationMarkup struct {
	Anchor Anchor
	Items  ItemsFunc
	Accept AcceptFunc

	Institution []FieldFunc
	Degree      []FieldFunc
	Dates       []FieldFunc
	Details     []FieldFunc
}

// SkillsMarkup locates skill names.
type SkillsMarkup struct {
	Anchor Anchor
	Items  ItemsFunc
}

// LanguagesMarkup locates languages.
type LanguagesMarkup struct {
	Anchor      Anchor
	Items       ItemsFunc
	Accept      AcceptFunc
	Language    []FieldFunc
	Proficiency []FieldFunc
}

// selectAll selects every element in the section matching selector.
func selectAll(selector string) ItemsFunc {
	return func(section *goquery.Selection) *goquery.Selection {
		return section.Find(selector)
	}
}

// firstListItems selects the direct <li> children of the section's first
// list, leaving nested sub-lists to their parent item.
func firstListItems() ItemsFunc {
	return func(section *goquery.Selection) *goquery.Selection {
		return section.Find("ul").First().ChildrenFiltered("li")
	}
}

// hasAtLeast accepts items with at least n elements matching selector.
func hasAtLeast(selector string, n int) AcceptFunc {
	return func(item *goquery.Selection) bool {
		return item.Find(selector).Length() >= n
	}
}
