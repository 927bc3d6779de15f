package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagerec"
)

var (
	_ pagerec.Extractor = (*LinkedInCompanyExtractor)(nil)
	_ pagerec.Extractor = (*IndeedCompanyExtractor)(nil)
)

// LinkedInCompanyExtractor extracts LinkedIn organization pages.
type LinkedInCompanyExtractor struct {
	cfg pageConfig
}

// NewLinkedInCompanyExtractor returns a LinkedIn company page extractor.
func NewLinkedInCompanyExtractor(opts ...PageOption) *LinkedInCompanyExtractor {
	return &LinkedInCompanyExtractor{cfg: newPageConfig(opts)}
}

// Name implements pagerec.Extractor.
func (e *LinkedInCompanyExtractor) Name() string { return "company/linkedin" }

// Kind implements pagerec.Extractor.
func (e *LinkedInCompanyExtractor) Kind() pagerec.Kind { return pagerec.KindCompany }

// Extract implements pagerec.Extractor.
func (e *LinkedInCompanyExtractor) Extract(html string) (pagerec.Record, error) {
	p, err := parsePage(e.cfg, html)
	if err != nil {
		return nil, err
	}

	r := &pagerec.CompanyRecord{
		Type:          pagerec.KindCompany,
		CompanyName:   p.field(textOf("h1.org-top-card-summary__title")),
		Tagline:       p.field(textOf("p.org-top-card-summary__tagline")),
		LogoURL:       p.field(attrOf("img.org-top-card-primary-content__logo", "src")),
		FollowerCount: p.field(textMatching("div.org-top-card-summary-info-list__info-item", "followers")),
		CoverPicURL: p.field(
			attrOf("img.pic-cropper__target-image", "src"),
			styleURLOf("div.org-cropped-image__cover-image"),
		),
	}

	// Details live in the Overview card; older pages have no such heading.
	overview := p.doc.Selection
	if sec := locate(p.doc.Selection, Anchor{Heading: "Overview"}, DefaultOptions().HeadingMaxRunes); sec.Length() > 0 {
		overview = sec
	}
	r.About = p.longForm(overview, "p.break-words")
	r.Website = detailItem(overview, "Website")
	r.Industry = detailItem(overview, "Industry")
	r.CompanySize = detailItem(overview, "Company size")
	r.Headquarters = detailItem(overview, "Headquarters")
	r.Founded = detailItem(overview, "Founded")
	r.Specialties = detailItem(overview, "Specialties")

	r.FillDefaults()
	return r, nil
}

// detailItem returns the <dd> following the <dt> whose <h3> reads label.
func detailItem(s *goquery.Selection, label string) string {
	h := s.Find("dt h3").FilterFunction(func(_ int, el *goquery.Selection) bool {
		return containsFold(el.Text(), label)
	}).First()
	if h.Length() == 0 {
		return pagerec.NotAvailable
	}
	return Clean(h.Closest("dt").NextAllFiltered("dd").First())
}

// IndeedCompanyExtractor extracts Indeed company overview pages. Indeed has
// no tagline, follower count, specialties or cover image.
type IndeedCompanyExtractor struct {
	cfg pageConfig
}

// NewIndeedCompanyExtractor returns an Indeed company page extractor.
func NewIndeedCompanyExtractor(opts ...PageOption) *IndeedCompanyExtractor {
	return &IndeedCompanyExtractor{cfg: newPageConfig(opts)}
}

// Name implements pagerec.Extractor.
func (e *IndeedCompanyExtractor) Name() string { return "company/indeed" }

// Kind implements pagerec.Extractor.
func (e *IndeedCompanyExtractor) Kind() pagerec.Kind { return pagerec.KindIndeedCompany }

// Extract implements pagerec.Extractor.
func (e *IndeedCompanyExtractor) Extract(html string) (pagerec.Record, error) {
	p, err := parsePage(e.cfg, html)
	if err != nil {
		return nil, err
	}

	r := &pagerec.CompanyRecord{
		Type:        pagerec.KindIndeedCompany,
		CompanyName: p.field(textOf(`div[itemprop="name"]`)),
		LogoURL:     p.field(attrOf(`div.css-19l789z img[itemprop="image"]`, "src")),
		Website:     p.field(attrOf(`a[data-testid='companyLink[]']`, "href")),
	}

	if about := p.doc.Find(`section[data-testid="AboutSection-section"]`).First(); about.Length() > 0 {
		r.About = p.longForm(about, `div[data-testid="less-text"], div.css-1qewhxk`)
		r.Industry = testIDItem(about, "companyInfo-industry")
		r.CompanySize = testIDItem(about, "companyInfo-employee")
		r.Headquarters = testIDItem(about, "companyInfo-headquartersLocation")
		r.Founded = testIDItem(about, "companyInfo-founded")
	}

	r.FillDefaults()
	return r, nil
}

// testIDItem returns the innermost value of the list item tagged with id.
func testIDItem(s *goquery.Selection, id string) string {
	item := s.Find("li[data-testid='" + id + "']").First()
	if item.Length() == 0 {
		return pagerec.NotAvailable
	}
	return Clean(item.Find("div, span").Last())
}
