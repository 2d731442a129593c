package faleproxy

import (
	"context"
	"strings"
)

// DefaultOverrideHost is the host whose requests are served from an
// Override when one is configured.
const DefaultOverrideHost = "example.com"

// FetchRequest is a request to proxy and rewrite a single URL.
type FetchRequest struct {
	URL string `json:"url" form:"url"`
}

// Response is the successful result of proxying a URL.
type Response struct {
	Success     bool   `json:"success"`
	Content     string `json:"content"`
	Title       string `json:"title"`
	OriginalURL string `json:"originalUrl"`
}

// ErrorResponse is the body returned for a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProxyService runs the fetch-and-rewrite pipeline.
type ProxyService interface {
	// Fetch validates the request, retrieves the document and rewrites it.
	// Any returned error is an *Error whose code determines the status.
	Fetch(ctx context.Context, req FetchRequest) (*Response, error)
}

// Override substitutes fixed HTML for requests to a single host.
// It exists so the pipeline can be exercised without network egress.
type Override struct {
	// HTML is an in-memory override payload.
	HTML string

	// File is a path to a file with the override payload. When both are set
	// the file wins.
	File string

	// Host is the hostname served from the override. Defaults to
	// DefaultOverrideHost when empty.
	Host string
}

// Enabled reports whether an override payload is configured.
func (o Override) Enabled() bool {
	return o.HTML != "" || o.File != ""
}

// Matches reports whether requests to host should be served from the
// override. Hostnames compare case-insensitively; subdomains do not match.
func (o Override) Matches(host string) bool {
	if !o.Enabled() {
		return false
	}
	want := o.Host
	if want == "" {
		want = DefaultOverrideHost
	}
	return strings.EqualFold(host, want)
}
