// Package trafilatura implements faleproxy.Extractor for the article view
// of rewritten pages.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/faleproxy"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements faleproxy.Extractor at compile time.
var _ faleproxy.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeLinks:   true,
		},
	}
}

// Extract returns the main content of rawHTML. Text is extracted as-is, so
// callers pass already rewritten HTML.
func (e *Extractor) Extract(rawHTML string) (*faleproxy.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, faleproxy.Errorf(faleproxy.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &faleproxy.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
