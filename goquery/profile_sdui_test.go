package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagerec"
	"github.com/fwojciec/pagerec/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sduiProfileHTML = `<!DOCTYPE html>
<html>
<body>
<main>
<section class="_140ad967">
	<img class="_5d57a262" src="https://media.example/profile-displaybackgroundimage-shrink_350/cover.jpg">
	<img class="_5d57a262" src="https://media.example/profile-displayphoto-shrink_200/photo.jpg">
	<p class="_9cd462e2 _58b9cc0a">Amara Okafor</p>
	<p class="a256db30 ba57d3d2">Data Scientist · ML Platforms</p>
	<p class="_3e1f d89f4058">Contact info</p>
	<p class="d89f4058 _77aa">Lagos, Nigeria</p>
</section>

<section>
	<h2>About</h2>
	<span data-testid="expandable-text-box">Researcher turned engineer. I ship models to production.<button data-testid="expandable-text-button">… more</button></span>
</section>

<section>
	<h2>Experience</h2>
	<div componentkey="entity-collection-item-1">
		<p class="_9cd462e2">Senior Data Scientist</p>
		<p class="_9cd462e2">Paystack · Full-time</p>
		<p class="_9cd462e2">Feb 2021 - Present · 3 yrs 5 mos</p>
		<p class="_9cd462e2">Lagos, Nigeria · Hybrid</p>
		<span data-testid="expandable-text-box">Built fraud detection models.<button data-testid="expandable-text-button">… more</button></span>
	</div>
	<div componentkey="entity-collection-item-2">
		<p class="_9cd462e2">Analyst</p>
		<p class="_9cd462e2">Andela</p>
		<p class="_9cd462e2">2018 - 2021</p>
	</div>
</section>

<section>
	<h2>Education</h2>
	<div class="_0a9a31e1">
		<p class="_9cd462e2">University of Ibadan</p>
		<p class="_9cd462e2">Doctor of Philosophy - PhD, Statistics</p>
		<p class="_9cd462e2">2014 - 2018</p>
		<p class="_9cd462e2">Dissertation on Bayesian methods.</p>
	</div>
	<div class="_0a9a31e1">
		<p class="_9cd462e2">University of Lagos</p>
		<p class="_9cd462e2">BSc, Mathematics</p>
		<p class="_9cd462e2">2009 - 2013</p>
		<div role="button"><p class="_9cd462e2">Statistics, R and +2 skills</p></div>
	</div>
</section>

<section>
	<h2>Skills</h2>
	<div componentkey="com.linkedin.sdui.profile.skill(1)"><p class="a256db30 _1c2d">Machine Learning</p></div>
	<div componentkey="com.linkedin.sdui.profile.skill(2)"><p class="a256db30 _1c2d">Python</p></div>
</section>

<section>
	<h2>Languages</h2>
	<div class="_0a9a31e1"><p class="_9cd462e2">Yoruba</p><p class="_9cd462e2">Native or bilingual proficiency</p></div>
	<div class="_0a9a31e1"><p class="_9cd462e2">French</p></div>
</section>
</main>
</body>
</html>`

func TestProfileExtractor_SDUI(t *testing.T) {
	t.Parallel()

	opts := fixedOptions()
	e := goquery.NewProfileExtractor(goquery.SDUIMarkup(opts), opts, nil)
	assert.Equal(t, "person/sdui", e.Name())

	r, err := e.ExtractProfile(sduiProfileHTML)
	require.NoError(t, err)

	t.Run("top card", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Amara Okafor", r.Name)
		assert.Equal(t, "Data Scientist · ML Platforms", r.Headline)
		assert.Equal(t, "Lagos, Nigeria", r.Location)
		assert.Equal(t, "https://media.example/profile-displayphoto-shrink_200/photo.jpg", r.ProfilePicURL)
		assert.Equal(t, "https://media.example/profile-displaybackgroundimage-shrink_350/cover.jpg", r.CoverPicURL)
	})

	t.Run("about drops the expand button", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Researcher turned engineer. I ship models to production.", r.About)
	})

	t.Run("experience needs four lines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []pagerec.ExperienceEntry{{
			CompanyName:     "Paystack",
			CompanyLocation: "Lagos, Nigeria · Hybrid",
			JobType:         "Full-time",
			Role:            "Senior Data Scientist",
			DateFrom:        "Feb 2021",
			DateTo:          "Present",
			Details:         "Built fraud detection models.",
			IsCurrent:       true,
		}}, r.Experience)
	})

	t.Run("education ignores the skills button", func(t *testing.T) {
		t.Parallel()

		require.Len(t, r.Education, 2)
		assert.Equal(t, pagerec.EducationEntry{
			InstitutionName: "University of Ibadan",
			Degree:          "Doctor of Philosophy - PhD, Statistics",
			DateFrom:        "2014",
			DateTo:          "2018",
			Details:         "Dissertation on Bayesian methods.",
		}, r.Education[0])
		assert.Equal(t, "BSc, Mathematics", r.Education[1].Degree)
		assert.Equal(t, pagerec.NotAvailable, r.Education[1].Details)
		assert.Equal(t, pagerec.LevelPhD, r.HighestEducationLevel)
	})

	t.Run("skills and languages", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"Machine Learning", "Python"}, r.Skills)
		assert.Equal(t, []pagerec.LanguageEntry{
			{Language: "Yoruba", Proficiency: "Native or bilingual proficiency"},
		}, r.Languages)
	})
}

func TestProfileExtractor_SDUIWithoutTopCard(t *testing.T) {
	t.Parallel()

	opts := fixedOptions()
	e := goquery.NewProfileExtractor(goquery.SDUIMarkup(opts), opts, nil)

	r, err := e.ExtractProfile(`<html><body><h1>Jane Doe</h1><p class="_9cd462e2 _58b9cc0a">Stray</p></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, pagerec.NewProfileRecord(), r)
}
