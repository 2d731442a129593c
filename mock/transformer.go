package mock

import "github.com/fwojciec/faleproxy"

var _ faleproxy.Transformer = (*Transformer)(nil)

// Transformer is a mock implementation of faleproxy.Transformer.
type Transformer struct {
	TransformFn func(html string) (*faleproxy.TransformResult, error)
}

func (t *Transformer) Transform(html string) (*faleproxy.TransformResult, error) {
	return t.TransformFn(html)
}
