package faleproxy

// ExtractResult holds the main content of a rewritten page.
type ExtractResult struct {
	// Title is the page title taken from metadata.
	Title string

	// ContentHTML is the main content as HTML with navigation, footers and
	// sidebars removed.
	ContentHTML string
}

// Extractor isolates the main content of an HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
