package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagerec"
	"github.com/fwojciec/pagerec/mock"
	recslog "github.com/fwojciec/pagerec/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs profile section counts with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		profile := pagerec.NewProfileRecord()
		profile.Experience = []pagerec.ExperienceEntry{{Role: "Engineer"}, {Role: "Intern"}}
		profile.Skills = []string{"Go"}
		inner := &mock.Extractor{
			ExtractFn: func(html string) (pagerec.Record, error) { return profile, nil },
			NameFn:    func() string { return "person/classic" },
		}

		ext := recslog.NewLoggingExtractor(inner, logger)
		rec, err := ext.Extract("<html></html>")

		require.NoError(t, err)
		assert.Same(t, profile, rec)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "extractor=person/classic")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "experience=2")
		assert.Contains(t, output, "education=0")
		assert.Contains(t, output, "skills=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("omits section counts for other records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (pagerec.Record, error) { return &pagerec.JobRecord{}, nil },
			NameFn:    func() string { return "job/indeed" },
		}

		_, err := recslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "extractor=job/indeed")
		assert.NotContains(t, buf.String(), "experience=")
	})

	t.Run("logs errors at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (pagerec.Record, error) {
				return nil, pagerec.Errorf(pagerec.EINVALID, "failed to parse HTML")
			},
			NameFn: func() string { return "company/linkedin" },
		}

		_, err := recslog.NewLoggingExtractor(inner, logger).Extract("x")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "failed to parse HTML")
	})
}

func TestLoggingExtractor_Delegates(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	inner := &mock.Extractor{
		KindFn: func() pagerec.Kind { return pagerec.KindIndeedJob },
		NameFn: func() string { return "job/indeed" },
	}

	ext := recslog.NewLoggingExtractor(inner, logger)

	assert.Equal(t, pagerec.KindIndeedJob, ext.Kind())
	assert.Equal(t, "job/indeed", ext.Name())
}
