package faleproxy

import (
	"context"
	"net/url"
)

// Origin identifies where a RawDocument came from.
type Origin string

const (
	OriginNetwork  Origin = "network"
	OriginOverride Origin = "override"
)

// RawDocument is the unparsed HTML retrieved for a single request.
type RawDocument struct {
	Content string
	Origin  Origin
}

// TransformResult holds a rewritten document and its rewritten title.
type TransformResult struct {
	// Content is the serialized HTML after substitution.
	Content string

	// Title is the text of the document's title element after substitution.
	Title string
}

// Transformer rewrites text within an HTML document.
type Transformer interface {
	// Transform parses html, rewrites text nodes and the title, and returns
	// the serialized result. Markup structure, tag names and attribute values
	// are preserved. Malformed input yields best-effort output, not an error.
	Transform(html string) (*TransformResult, error)
}

// Source supplies the raw document for a validated URL.
type Source interface {
	// Resolve returns the document for u, either from the network or from a
	// configured override. Transport failures are reported as EFETCH.
	Resolve(ctx context.Context, u *url.URL) (*RawDocument, error)
}
