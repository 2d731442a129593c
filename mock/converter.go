package mock

import "github.com/fwojciec/faleproxy"

var _ faleproxy.Converter = (*Converter)(nil)

// Converter is a mock implementation of faleproxy.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
