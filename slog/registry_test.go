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

func TestLoggingRegistry_Get(t *testing.T) {
	t.Parallel()

	t.Run("wraps found extractor with logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.ExtractorRegistry{
			GetFn: func(name string) pagerec.Extractor {
				return &mock.Extractor{
					ExtractFn: func(html string) (pagerec.Record, error) { return &pagerec.JobRecord{}, nil },
					KindFn:    func() pagerec.Kind { return pagerec.KindJob },
					NameFn:    func() string { return name },
				}
			},
		}

		ext := recslog.NewLoggingRegistry(inner, logger).Get("job/linkedin")
		require.NotNil(t, ext)
		assert.IsType(t, &recslog.LoggingExtractor{}, ext)

		_, err := ext.Extract("<html></html>")
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "extractor lookup")
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, "extractor=job/linkedin")
	})

	t.Run("logs unknown names and returns nil", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ExtractorRegistry{
			GetFn: func(name string) pagerec.Extractor { return nil },
		}

		ext := recslog.NewLoggingRegistry(inner, logger).Get("person/unknown")

		assert.Nil(t, ext)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "name=person/unknown")
	})
}

func TestLoggingRegistry_Delegates(t *testing.T) {
	t.Parallel()

	var registered string
	inner := &mock.ExtractorRegistry{
		RegisterFn: func(extractor pagerec.Extractor) { registered = extractor.Name() },
		ListFn:     func() []string { return []string{"job/indeed", "job/linkedin"} },
	}
	registry := recslog.NewLoggingRegistry(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	registry.Register(&mock.Extractor{NameFn: func() string { return "job/indeed" }})

	assert.Equal(t, "job/indeed", registered)
	assert.Equal(t, []string{"job/indeed", "job/linkedin"}, registry.List())
}
