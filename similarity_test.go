package pagerec_test

import (
	"testing"

	"github.com/fwojciec/pagerec"
	"github.com/fwojciec/pagerec/mock"
	"github.com/stretchr/testify/assert"
)

func TestDuplicateDetector_IsAboutDuplicate(t *testing.T) {
	t.Parallel()

	t.Run("exact match against a role is a duplicate", func(t *testing.T) {
		t.Parallel()

		d := &pagerec.DuplicateDetector{}
		exp := []pagerec.ExperienceEntry{{Role: "Software engineer at Acme"}}

		assert.True(t, d.IsAboutDuplicate("Software engineer at Acme", exp, nil))
	})

	t.Run("unrelated text is not a duplicate", func(t *testing.T) {
		t.Parallel()

		d := &pagerec.DuplicateDetector{
			Scorer: &mock.Scorer{RatioFn: func(a, b string) float64 { return 0.1 }},
		}
		exp := []pagerec.ExperienceEntry{{Role: "Software engineer"}}

		assert.False(t, d.IsAboutDuplicate("Loves hiking", exp, nil))
	})

	t.Run("containment ignores case and whitespace", func(t *testing.T) {
		t.Parallel()

		d := &pagerec.DuplicateDetector{}
		exp := []pagerec.ExperienceEntry{{Details: "Built the   PAYMENTS platform\nfrom scratch and led a team of five."}}

		assert.True(t, d.IsAboutDuplicate("built the payments platform from scratch", exp, nil))
	})

	t.Run("about containing an education field is a duplicate", func(t *testing.T) {
		t.Parallel()

		d := &pagerec.DuplicateDetector{}
		edu := []pagerec.EducationEntry{{InstitutionName: "Stanford University"}}

		assert.True(t, d.IsAboutDuplicate("Graduated from Stanford University in 2010", nil, edu))
	})

	t.Run("ratio at threshold is a duplicate", func(t *testing.T) {
		t.Parallel()

		d := &pagerec.DuplicateDetector{
			Scorer:    &mock.Scorer{RatioFn: func(a, b string) float64 { return 0.9 }},
			Threshold: 0.9,
		}
		exp := []pagerec.ExperienceEntry{{Details: "something else entirely"}}

		assert.True(t, d.IsAboutDuplicate("a different blurb", exp, nil))
	})

	t.Run("ratio below threshold is not a duplicate", func(t *testing.T) {
		t.Parallel()

		d := &pagerec.DuplicateDetector{
			Scorer: &mock.Scorer{RatioFn: func(a, b string) float64 { return 0.89 }},
		}
		exp := []pagerec.ExperienceEntry{{Details: "something else entirely"}}

		assert.False(t, d.IsAboutDuplicate("a different blurb", exp, nil))
	})

	t.Run("sentinel fields are skipped", func(t *testing.T) {
		t.Parallel()

		var calls int
		d := &pagerec.DuplicateDetector{
			Scorer: &mock.Scorer{RatioFn: func(a, b string) float64 { calls++; return 1 }},
		}
		exp := []pagerec.ExperienceEntry{{
			Role:            pagerec.NotAvailable,
			CompanyName:     pagerec.NotAvailable,
			CompanyLocation: pagerec.NotAvailable,
			Details:         pagerec.NotAvailable,
		}}

		assert.False(t, d.IsAboutDuplicate("Loves hiking", exp, nil))
		assert.Zero(t, calls)
	})

	t.Run("missing about is never a duplicate", func(t *testing.T) {
		t.Parallel()

		d := &pagerec.DuplicateDetector{}
		exp := []pagerec.ExperienceEntry{{Role: pagerec.NotAvailable}}

		assert.False(t, d.IsAboutDuplicate(pagerec.NotAvailable, exp, nil))
		assert.False(t, d.IsAboutDuplicate("", exp, nil))
	})
}
