package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
)

var _ pagerec.Extractor = (*ProfileExtractor)(nil)

// ProfileExtractor extracts person profiles using one markup variant.
type ProfileExtractor struct {
	markup *ProfileMarkup
	opts   Options
	dates  *pagerec.DateParser
	dups   *pagerec.DuplicateDetector
}

// NewProfileExtractor returns an extractor for markup. scorer measures about
// text similarity; when nil only containment marks a duplicate.
func NewProfileExtractor(markup *ProfileMarkup, opts Options, scorer pagerec.Scorer) *ProfileExtractor {
	opts = opts.withDefaults()
	return &ProfileExtractor{
		markup: markup,
		opts:   opts,
		dates:  &pagerec.DateParser{Now: opts.Now},
		dups:   &pagerec.DuplicateDetector{Scorer: scorer, Threshold: opts.SimilarityThreshold},
	}
}

// Name implements pagerec.Extractor.
func (e *ProfileExtractor) Name() string {
	return string(pagerec.KindPerson) + "/" + e.markup.Name
}

// Kind implements pagerec.Extractor.
func (e *ProfileExtractor) Kind() pagerec.Kind {
	return pagerec.KindPerson
}

// Extract implements pagerec.Extractor.
func (e *ProfileExtractor) Extract(html string) (pagerec.Record, error) {
	return e.ExtractProfile(html)
}

// ExtractProfile runs every section extractor over the page and assembles
// the profile. Sections are independent: one that finds nothing, or fails
// outright, leaves its fields at their defaults.
func (e *ProfileExtractor) ExtractProfile(html string) (*pagerec.ProfileRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagerec.Errorf(pagerec.EINVALID, "failed to parse HTML: %v", err)
	}
	root := doc.Selection

	r := &pagerec.ProfileRecord{Type: pagerec.KindPerson}
	basic := guard(basicInfo{}, func() basicInfo { return e.basicInfo(root) })
	r.Name, r.Headline, r.Location = basic.name, basic.headline, basic.location
	r.ProfilePicURL, r.CoverPicURL = basic.profileImage, basic.coverImage
	r.About = guard(pagerec.NotAvailable, func() string { return e.about(root) })
	r.Experience = guard(nil, func() []pagerec.ExperienceEntry { return e.experience(root) })
	r.Education = guard(nil, func() []pagerec.EducationEntry { return e.education(root) })
	r.Skills = guard(nil, func() []string { return e.skills(root) })
	r.Languages = guard(nil, func() []pagerec.LanguageEntry { return e.languages(root) })

	if e.dups.IsAboutDuplicate(r.About, r.Experience, r.Education) {
		r.About = pagerec.NotAvailable
	}
	r.HighestEducationLevel = pagerec.HighestEducationLevel(r.Education)
	r.FillDefaults()
	return r, nil
}

// guard runs fn and returns fallback if fn panics.
func guard[T any](fallback T, fn func() T) (v T) {
	defer func() {
		if recover() != nil {
			v = fallback
		}
	}()
	return fn()
}

type basicInfo struct {
	name, headline, location, profileImage, coverImage string
}

func (e *ProfileExtractor) basicInfo(root *goquery.Selection) basicInfo {
	m := e.markup.Basic
	scope := root
	if m.Scope != "" {
		scope = root.Find(m.Scope).First()
	}
	if scope.Length() == 0 {
		return basicInfo{}
	}
	return basicInfo{
		name:         firstOf(scope, m.Name),
		headline:     firstOf(scope, m.Headline),
		location:     firstOf(scope, m.Location),
		profileImage: firstOf(scope, m.ProfileImage),
		coverImage:   firstOf(scope, m.CoverImage),
	}
}

func (e *ProfileExtractor) about(root *goquery.Selection) string {
	m := e.markup.About
	sec := locate(root, m.Anchor, e.opts.HeadingMaxRunes)
	if sec.Length() == 0 {
		return pagerec.NotAvailable
	}
	return firstOf(sec, m.Text)
}

func (e *ProfileExtractor) experience(root *goquery.Selection) []pagerec.ExperienceEntry {
	m := e.markup.Experience
	sec := locate(root, m.Anchor, e.opts.HeadingMaxRunes)
	if sec.Length() == 0 {
		return nil
	}

	var entries []pagerec.ExperienceEntry
	m.Items(sec).Each(func(_ int, item *goquery.Selection) {
		if m.Accept != nil && !m.Accept(item) {
			return
		}
		role := firstOf(item, m.Role)
		company, jobType := splitCompanyLine(firstOf(item, m.CompanyLine))
		if !pagerec.IsAvailable(role) || !pagerec.IsAvailable(company) {
			return
		}
		dates := e.dates.Parse(firstOf(item, m.Dates))
		entries = append(entries, pagerec.ExperienceEntry{
			CompanyName:     company,
			CompanyLocation: firstOf(item, m.Location),
			JobType:         jobType,
			Role:            role,
			DateFrom:        dates.From,
			DateTo:          dates.To,
			Details:         firstOf(item, m.Details),
			IsCurrent:       dates.IsCurrent,
		})
	})
	return pagerec.DedupExperience(entries)
}

// splitCompanyLine splits "Company · Full-time" into the company name and
// employment type.
func splitCompanyLine(line string) (company, jobType string) {
	if !pagerec.IsAvailable(line) {
		return pagerec.NotAvailable, pagerec.NotAvailable
	}
	parts := strings.Split(line, "·")
	company, jobType = strings.TrimSpace(parts[0]), pagerec.NotAvailable
	if company == "" {
		company = pagerec.NotAvailable
	}
	if len(parts) > 1 {
		if t := strings.TrimSpace(parts[1]); t != "" {
			jobType = t
		}
	}
	return company, jobType
}

func (e *ProfileExtractor) education(root *goquery.Selection) []pagerec.EducationEntry {
	m := e.markup.Education
	sec := locate(root, m.Anchor, e.opts.HeadingMaxRunes)
	if sec.Length() == 0 {
		return nil
	}

	var entries []pagerec.EducationEntry
	m.Items(sec).Each(func(_ int, item *goquery.Selection) {
		if m.Accept != nil && !m.Accept(item) {
			return
		}
		institution := firstOf(item, m.Institution)
		if !pagerec.IsAvailable(institution) {
			return
		}
		dates := e.dates.Parse(firstOf(item, m.Dates))
		entries = append(entries, pagerec.EducationEntry{
			InstitutionName: institution,
			Degree:          firstOf(item, m.Degree),
			DateFrom:        dates.From,
			DateTo:          dates.To,
			Details:         firstOf(item, m.Details),
			IsCurrent:       dates.IsCurrent,
		})
	})
	return pagerec.DedupEducation(entries)
}

func (e *ProfileExtractor) skills(root *goquery.Selection) []string {
	m := e.markup.Skills
	sec := locate(root, m.Anchor, e.opts.HeadingMaxRunes)
	if sec.Length() == 0 {
		return nil
	}

	var skills []string
	m.Items(sec).Each(func(_ int, el *goquery.Selection) {
		if name := Clean(el); pagerec.IsAvailable(name) {
			skills = append(skills, name)
		}
	})
	return skills
}

func (e *ProfileExtractor) languages(root *goquery.Selection) []pagerec.LanguageEntry {
	m := e.markup.Languages
	sec := locate(root, m.Anchor, e.opts.HeadingMaxRunes)
	if sec.Length() == 0 {
		return nil
	}

	var langs []pagerec.LanguageEntry
	m.Items(sec).Each(func(_ int, item *goquery.Selection) {
		if m.Accept != nil && !m.Accept(item) {
			return
		}
		name := firstOf(item, m.Language)
		if !pagerec.IsAvailable(name) {
			return
		}
		langs = append(langs, pagerec.LanguageEntry{
			Language:    name,
			Proficiency: firstOf(item, m.Proficiency),
		})
	})
	return langs
}
