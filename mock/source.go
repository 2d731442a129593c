package mock

import (
	"context"
	"net/url"

	"github.com/fwojciec/faleproxy"
)

var _ faleproxy.Source = (*Source)(nil)

// Source is a mock implementation of faleproxy.Source.
type Source struct {
	ResolveFn func(ctx context.Context, u *url.URL) (*faleproxy.RawDocument, error)
}

func (s *Source) Resolve(ctx context.Context, u *url.URL) (*faleproxy.RawDocument, error) {
	return s.ResolveFn(ctx, u)
}
