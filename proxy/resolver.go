// Package proxy composes URL validation, source resolution and document
// transformation into the fetch-and-rewrite pipeline.
package proxy

import (
	"context"
	"net/url"
	"os"

	"github.com/fwojciec/faleproxy"
)

// Ensure Resolver implements faleproxy.Source at compile time.
var _ faleproxy.Source = (*Resolver)(nil)

// Resolver supplies raw documents either from the network or from an
// override payload configured at construction time.
type Resolver struct {
	fetcher  faleproxy.Fetcher
	override faleproxy.Override
}

// NewResolver creates a Resolver that fetches through fetcher. Requests to
// the override host are served from override when it is enabled.
func NewResolver(fetcher faleproxy.Fetcher, override faleproxy.Override) *Resolver {
	return &Resolver{
		fetcher:  fetcher,
		override: override,
	}
}

// Resolve returns the document for u.
func (r *Resolver) Resolve(ctx context.Context, u *url.URL) (*faleproxy.RawDocument, error) {
	if r.override.Matches(u.Hostname()) {
		return r.readOverride(ctx)
	}

	html, err := r.fetcher.Fetch(ctx, u.String())
	if err != nil {
		return nil, faleproxy.Errorf(faleproxy.EFETCH, "%v", err)
	}

	return &faleproxy.RawDocument{
		Content: html,
		Origin:  faleproxy.OriginNetwork,
	}, nil
}

// readOverride returns the override payload. The file is read on every
// call so edits to it are picked up without a restart.
func (r *Resolver) readOverride(ctx context.Context) (*faleproxy.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, faleproxy.Errorf(faleproxy.EFETCH, "%v", err)
	}

	content := r.override.HTML
	if r.override.File != "" {
		b, err := os.ReadFile(r.override.File)
		if err != nil {
			return nil, faleproxy.Errorf(faleproxy.EFETCH, "%v", err)
		}
		content = string(b)
	}

	return &faleproxy.RawDocument{
		Content: content,
		Origin:  faleproxy.OriginOverride,
	}, nil
}
