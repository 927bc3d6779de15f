package mock

import "github.com/fwojciec/pagerec"

var _ pagerec.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagerec.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
