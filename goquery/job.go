package goquery

import (
	"strings"

	"github.com/fwojciec/pagerec"
)

var (
	_ pagerec.Extractor = (*LinkedInJobExtractor)(nil)
	_ pagerec.Extractor = (*IndeedJobExtractor)(nil)
)

// LinkedInJobExtractor extracts LinkedIn job postings.
type LinkedInJobExtractor struct {
	cfg pageConfig
}

// NewLinkedInJobExtractor returns a LinkedIn job posting extractor.
func NewLinkedInJobExtractor(opts ...PageOption) *LinkedInJobExtractor {
	return &LinkedInJobExtractor{cfg: newPageConfig(opts)}
}

// Name implements pagerec.Extractor.
func (e *LinkedInJobExtractor) Name() string { return "job/linkedin" }

// Kind implements pagerec.Extractor.
func (e *LinkedInJobExtractor) Kind() pagerec.Kind { return pagerec.KindJob }

// Extract implements pagerec.Extractor. The experience level is not shown
// on the posting and is always NotAvailable.
func (e *LinkedInJobExtractor) Extract(html string) (pagerec.Record, error) {
	p, err := parsePage(e.cfg, html)
	if err != nil {
		return nil, err
	}

	const (
		topCard     = ".job-details-jobs-unified-top-card__"
		primary     = topCard + "primary-description-container"
		tertiary    = topCard + "tertiary-description-container"
		preferences = ".job-details-fit-level-preferences button strong"
	)

	r := &pagerec.JobRecord{
		Type:            pagerec.KindJob,
		JobTitle:        p.field(textOf("h1.t-24")),
		CompanyName:     p.field(textOf(topCard + "company-name a")),
		Location:        p.field(textOf(primary + " span.tvm__text--low-emphasis")),
		DatePosted:      p.field(textMatching(tertiary+" span", "ago", "Posted")),
		ApplicantsCount: p.field(textMatching(tertiary+" strong", "applicant", "apply")),
		WorkplaceType:   p.field(nthTextOf(preferences, 0)),
		EmploymentType:  p.field(nthTextOf(preferences, 1)),
		ExperienceLevel: pagerec.NotAvailable,
		JobDescription:  p.longForm(p.doc.Selection, "div#job-details"),
	}
	r.JobTitle = p.title(r.JobTitle)
	r.FillDefaults()
	return r, nil
}

// IndeedJobExtractor extracts Indeed job postings. Indeed shows no posting
// date, applicant count or experience level.
type IndeedJobExtractor struct {
	cfg pageConfig
}

// NewIndeedJobExtractor returns an Indeed job posting extractor.
func NewIndeedJobExtractor(opts ...PageOption) *IndeedJobExtractor {
	return &IndeedJobExtractor{cfg: newPageConfig(opts)}
}

// Name implements pagerec.Extractor.
func (e *IndeedJobExtractor) Name() string { return "job/indeed" }

// Kind implements pagerec.Extractor.
func (e *IndeedJobExtractor) Kind() pagerec.Kind { return pagerec.KindIndeedJob }

// Extract implements pagerec.Extractor.
func (e *IndeedJobExtractor) Extract(html string) (pagerec.Record, error) {
	p, err := parsePage(e.cfg, html)
	if err != nil {
		return nil, err
	}

	const salaryInfo = "div#salaryInfoAndJobType"

	r := &pagerec.IndeedJobRecord{
		Type:           pagerec.KindIndeedJob,
		JobTitle:       p.field(textOf("h1.jobsearch-JobInfoHeader-title")),
		CompanyName:    p.field(textOf(`div[data-company-name="true"] a`)),
		Location:       p.field(textOf(`div[data-testid="inlineHeader-companyLocation"]`)),
		Salary:         p.field(textOf(salaryInfo + " span:first-child")),
		JobType:        p.field(textOf(salaryInfo + " span:last-child")),
		JobDescription: p.longForm(p.doc.Selection, "div#jobDescriptionText"),
	}
	// The type span is rendered as " - Full-time" after the salary.
	if pagerec.IsAvailable(r.JobType) {
		r.JobType = pagerec.Clean(strings.ReplaceAll(r.JobType, "-", ""))
	}
	r.JobTitle = p.title(r.JobTitle)
	r.FillDefaults()
	return r, nil
}
