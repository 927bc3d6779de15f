package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagerec"
	"github.com/fwojciec/pagerec/goquery"
	"github.com/fwojciec/pagerec/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linkedInCompanyHTML = `<!DOCTYPE html>
<html>
<body>
<div class="org-top-card">
	<div class="org-cropped-image__cover-image" style="background-image: url(&quot;https://media.example/cover.png&quot;)"></div>
	<img class="org-top-card-primary-content__logo" src="https://media.example/logo.png">
	<h1 class="org-top-card-summary__title">Acme Robotics</h1>
	<p class="org-top-card-summary__tagline">Robots for every warehouse</p>
	<div class="org-top-card-summary-info-list">
		<div class="org-top-card-summary-info-list__info-item">Industrial Automation</div>
		<div class="org-top-card-summary-info-list__info-item">12,345 followers</div>
	</div>
</div>
<section>
	<h2>Overview</h2>
	<p class="break-words">Acme builds autonomous picking robots.<br>Founded by warehouse workers.</p>
	<dl>
		<dt><h3>Website</h3></dt>
		<dd><a href="https://acme.example">https://acme.example</a></dd>
		<dt><h3>Industry</h3></dt>
		<dd>Automation Machinery Manufacturing</dd>
		<dt><h3>Company size</h3></dt>
		<dd>201-500 employees</dd>
		<dd>312 associated members</dd>
		<dt><h3>Headquarters</h3></dt>
		<dd>Munich, Bavaria</dd>
		<dt><h3>Founded</h3></dt>
		<dd>2016</dd>
	</dl>
</section>
</body>
</html>`

func TestLinkedInCompanyExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts the top card and overview details", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkedInCompanyExtractor()
		assert.Equal(t, "company/linkedin", e.Name())
		assert.Equal(t, pagerec.KindCompany, e.Kind())

		rec, err := e.Extract(linkedInCompanyHTML)
		require.NoError(t, err)

		assert.Equal(t, &pagerec.CompanyRecord{
			Type:          pagerec.KindCompany,
			CompanyName:   "Acme Robotics",
			Tagline:       "Robots for every warehouse",
			LogoURL:       "https://media.example/logo.png",
			CoverPicURL:   "https://media.example/cover.png",
			FollowerCount: "12,345 followers",
			About:         "Acme builds autonomous picking robots.\nFounded by warehouse workers.",
			Website:       "https://acme.example",
			Industry:      "Automation Machinery Manufacturing",
			CompanySize:   "201-500 employees",
			Headquarters:  "Munich, Bavaria",
			Founded:       "2016",
			Specialties:   pagerec.NotAvailable,
		}, rec)
	})

	t.Run("prefers the cover image element over the styled div", func(t *testing.T) {
		t.Parallel()

		html := `<img class="pic-cropper__target-image" src="https://media.example/cropped.png">
<div class="org-cropped-image__cover-image" style="background-image: url(https://media.example/cover.png)"></div>`

		rec, err := goquery.NewLinkedInCompanyExtractor().Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "https://media.example/cropped.png", rec.(*pagerec.CompanyRecord).CoverPicURL)
	})

	t.Run("renders about as markdown with a converter", func(t *testing.T) {
		t.Parallel()

		var got string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				got = html
				return "Acme builds **robots**.\n", nil
			},
		}

		rec, err := goquery.NewLinkedInCompanyExtractor(goquery.WithConverter(conv)).Extract(linkedInCompanyHTML)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(got, `<p class="break-words">`))
		assert.Equal(t, "Acme builds **robots**.", rec.(*pagerec.CompanyRecord).About)
	})

	t.Run("empty page yields defaults", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewLinkedInCompanyExtractor().Extract(`<html><body></body></html>`)
		require.NoError(t, err)

		r := rec.(*pagerec.CompanyRecord)
		assert.Equal(t, pagerec.KindCompany, r.Type)
		assert.Equal(t, pagerec.NotAvailable, r.CompanyName)
		assert.Equal(t, pagerec.NotAvailable, r.About)
		assert.Equal(t, pagerec.NotAvailable, r.Website)
	})
}

const indeedCompanyHTML = `<!DOCTYPE html>
<html>
<body>
<div class="css-19l789z"><img itemprop="image" src="https://d2q79iu7y748jz.example/logo.png"></div>
<div itemprop="name">Globex Corporation</div>
<section data-testid="AboutSection-section">
	<div data-testid="less-text"><p>Globex makes everything.</p><p>Since 1989.</p></div>
	<ul>
		<li data-testid="companyInfo-industry"><div>Industry</div><div><span>Manufacturing</span></div></li>
		<li data-testid="companyInfo-employee"><div>Company size</div><div>more than 10,000</div></li>
		<li data-testid="companyInfo-headquartersLocation"><div>Headquarters</div><div>Cypress Creek</div></li>
		<li data-testid="companyInfo-founded"><div>Founded</div><div>1989</div></li>
	</ul>
	<a data-testid="companyLink[]" href="https://globex.example">Globex website</a>
</section>
</body>
</html>`

func TestIndeedCompanyExtractor(t *testing.T) {
	t.Parallel()

	t.Run("extracts about section details", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewIndeedCompanyExtractor()
		assert.Equal(t, "company/indeed", e.Name())
		assert.Equal(t, pagerec.KindIndeedCompany, e.Kind())

		rec, err := e.Extract(indeedCompanyHTML)
		require.NoError(t, err)

		assert.Equal(t, &pagerec.CompanyRecord{
			Type:          pagerec.KindIndeedCompany,
			CompanyName:   "Globex Corporation",
			Tagline:       pagerec.NotAvailable,
			LogoURL:       "https://d2q79iu7y748jz.example/logo.png",
			CoverPicURL:   pagerec.NotAvailable,
			FollowerCount: pagerec.NotAvailable,
			About:         "Globex makes everything.\nSince 1989.",
			Website:       "https://globex.example",
			Industry:      "Manufacturing",
			CompanySize:   "more than 10,000",
			Headquarters:  "Cypress Creek",
			Founded:       "1989",
			Specialties:   pagerec.NotAvailable,
		}, rec)
	})

	t.Run("missing about section leaves details unavailable", func(t *testing.T) {
		t.Parallel()

		rec, err := goquery.NewIndeedCompanyExtractor().Extract(`<div itemprop="name">Globex</div>`)
		require.NoError(t, err)

		r := rec.(*pagerec.CompanyRecord)
		assert.Equal(t, "Globex", r.CompanyName)
		assert.Equal(t, pagerec.NotAvailable, r.About)
		assert.Equal(t, pagerec.NotAvailable, r.Industry)
		assert.Equal(t, pagerec.NotAvailable, r.Founded)
	})
}
