package main

import (
	"fmt"

	"github.com/fwojciec/pagerec"
)

// noPathMessage is reported when the command is run without a page.
const noPathMessage = "No file path provided to the extractor."

// ExtractCmd turns one saved page into one record.
type ExtractCmd struct {
	Path      string
	Extractor string
}

// Run loads the page, extracts the record and writes it. A missing path or
// file is reported as an error record, not as a failure.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	rec, err := c.extract(deps)
	if err != nil {
		return err
	}
	return writeRecord(deps, rec)
}

func (c *ExtractCmd) extract(deps *Dependencies) (pagerec.Record, error) {
	if c.Path == "" {
		deps.Logger.Warn("no input path", "extractor", c.Extractor)
		return &pagerec.ErrorRecord{Error: noPathMessage}, nil
	}

	ext := deps.Registry.Get(c.Extractor)
	if ext == nil {
		return nil, pagerec.Errorf(pagerec.EINVALID, "no extractor named %q", c.Extractor)
	}

	html, err := deps.Source.Load(c.Path)
	if pagerec.ErrorCode(err) == pagerec.ENOTFOUND {
		return pagerec.NewErrorRecord(ext.Kind(), pagerec.ErrorMessage(err)), nil
	} else if err != nil {
		return nil, err
	}

	return ext.Extract(html)
}

func writeRecord(deps *Dependencies, rec pagerec.Record) error {
	if deps.Writer != nil {
		return deps.Writer.WriteRecord(rec)
	}
	b, err := pagerec.MarshalRecord(rec)
	if err != nil {
		return err
	}
	if _, err := deps.Stdout.Write(b); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}
