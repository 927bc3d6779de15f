package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
)

const (
	ariaText   = "span[aria-hidden='true']"
	inlineMore = "div[class*='inline-show-more-text'] " + ariaText
)

// degreeKeywords mark a second education line as a degree rather than a
// field of study or an activity.
var degreeKeywords = []string{"Bachelor", "Master", "Diploma", "degree", "Intermediate"}

// skillChipIndicators appear on skill chips and "show all" links that share
// list markup with real positions.
var skillChipIndicators = []string{
	"skills", "+2 skills", "+3 skills", "+4 skills", "+5 skills",
	"and more", "show all", "see more",
}

var yearRe = regexp.MustCompile(`\d{4}`)

// ClassicMarkup matches the profile page layout built from artdeco list
// items, with sections marked by an anchor div carrying the section id and
// visible text duplicated into aria-hidden spans.
func ClassicMarkup(opts Options) *ProfileMarkup {
	opts = opts.withDefaults()
	role := []FieldFunc{textOf("div.display-flex.mr1 " + ariaText)}
	companyLine := []FieldFunc{textOf("span.t-14.t-normal:not(.t-black--light) " + ariaText)}
	captions := "span.t-14.t-normal.t-black--light " + ariaText
	dates := []FieldFunc{nthTextOf(captions, 0)}
	parser := &pagerec.DateParser{Now: opts.Now}

	return &ProfileMarkup{
		Name: "classic",
		Basic: BasicInfoMarkup{
			Name:         []FieldFunc{textOf("h1, .pv-text-details__left-panel h1")},
			Headline:     []FieldFunc{textOf(".text-body-medium, .pv-text-details__left-panel div")},
			Location:     []FieldFunc{textOf(".text-body-small.inline, .pv-top-card--list-panel li")},
			ProfileImage: []FieldFunc{attrOf("img[class*='pv-top-card-profile-picture__image']", "src")},
			CoverImage:   []FieldFunc{attrOf("img.profile-background-image__image", "src")},
		},
		About: AboutMarkup{
			Anchor: Anchor{ID: "about"},
			Text: []FieldFunc{
				minRunes(opts.MinAboutRunes, textOf("div.inline-show-more-text "+ariaText)),
				minRunes(opts.MinAboutRunes, textOf("div.display-flex.ph5.pv3 "+ariaText)),
			},
		},
		Experience: ExperienceMarkup{
			Anchor: Anchor{ID: "experience"},
			Items:  selectAll("ul > li.artdeco-list__item"),
			Accept: func(item *goquery.Selection) bool {
				r := firstOf(item, role)
				dated := pagerec.IsAvailable(r) &&
					pagerec.IsAvailable(firstOf(item, companyLine)) &&
					pagerec.IsAvailable(parser.Parse(firstOf(item, dates)).From)
				return isPlausiblePosition(spacedText(item), r, dated, opts)
			},
			Role:        role,
			CompanyLine: companyLine,
			Dates:       dates,
			Location:    []FieldFunc{nthTextOf(captions, 1)},
			Details: []FieldFunc{
				textOf(inlineMore),
				longestTextOf("div.pvs-entity__sub-components", ariaText),
			},
		},
		Education: EducationMarkup{
			Anchor: Anchor{
				ID:          "education",
				Heading:     "education",
				HeadingTags: "h2, h3, div",
				Containers:  []string{"section", "div"},
				Fallback:    "section#education",
			},
			Items: firstListItems(),
			Accept: func(item *goquery.Selection) bool {
				return pagerec.RuneLen(spacedText(item)) >= opts.MinEducationItemRunes
			},
			Institution: []FieldFunc{nthTextOf(ariaText, 0)},
			Degree:      []FieldFunc{withKeyword(degreeKeywords, nthTextOf(ariaText, 1))},
			Dates:       []FieldFunc{ownText()},
			Details:     []FieldFunc{joinedTextOf(inlineMore, " ")},
		},
		Skills: SkillsMarkup{
			Anchor: Anchor{ID: "skills"},
			Items:  selectAll("a[data-field='skill_card_skill_topic'] " + ariaText),
		},
		Languages: LanguagesMarkup{
			Anchor:      Anchor{ID: "languages"},
			Items:       selectAll("ul > li"),
			Language:    []FieldFunc{textOf("div.t-bold " + ariaText)},
			Proficiency: []FieldFunc{textOf("span.pvs-entity__caption-wrapper[aria-hidden='true']")},
		},
	}
}

// isPlausiblePosition rejects skill chips and "show all" links. A role
// naming skills is always a chip. A dated item with a role and a company is
// a position even when a "Skills:" line makes it short. Otherwise a short
// item mentioning skills is a chip, and an item needs a year, a "present"
// marker or a substantial amount of text.
func isPlausiblePosition(text, role string, dated bool, opts Options) bool {
	if pagerec.IsAvailable(role) && mentionsChip(strings.ToLower(role)) {
		return false
	}
	if dated {
		return true
	}
	lower := strings.ToLower(text)
	if mentionsChip(lower) && pagerec.RuneLen(text) < opts.ShortChipRunes {
		return false
	}
	return yearRe.MatchString(text) || strings.Contains(lower, "present") ||
		pagerec.RuneLen(text) > opts.SubstantialEntryRunes
}

func mentionsChip(lower string) bool {
	for _, ind := range skillChipIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}
