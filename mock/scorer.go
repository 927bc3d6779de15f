package mock

import "github.com/fwojciec/pagerec"

var _ pagerec.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of pagerec.Scorer.
type Scorer struct {
	RatioFn func(a, b string) float64
}

func (s *Scorer) Ratio(a, b string) float64 {
	return s.RatioFn(a, b)
}
