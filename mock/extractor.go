package mock

import "github.com/fwojciec/faleproxy"

var _ faleproxy.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of faleproxy.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*faleproxy.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*faleproxy.ExtractResult, error) {
	return e.ExtractFn(html)
}
