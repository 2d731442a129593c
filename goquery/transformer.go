// Package goquery implements faleproxy.Transformer on top of goquery's DOM
// traversal.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faleproxy"
	"golang.org/x/net/html"
)

// Ensure Transformer implements faleproxy.Transformer at compile time.
var _ faleproxy.Transformer = (*Transformer)(nil)

// Transformer rewrites text nodes inside <body> and the document title.
// Transformer is stateless and safe for concurrent use.
type Transformer struct{}

// NewTransformer creates a new Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// edit replaces the content of one node. For text nodes the data is
// replaced; for elements the children are replaced by a single text node.
type edit struct {
	node *html.Node
	text string
}

func (e edit) apply() {
	if e.node.Type == html.TextNode {
		e.node.Data = e.text
		return
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
}

// Transform parses html, rewrites text and title, and serializes the result.
// The tree is only read while edits are collected; edits are applied
// afterwards in a separate pass.
func (t *Transformer) Transform(src string) (*faleproxy.TransformResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return plainText(src), nil
	}

	edits, title := collectEdits(doc)
	for _, e := range edits {
		e.apply()
	}

	out, err := doc.Html()
	if err != nil {
		return plainText(src), nil
	}

	return &faleproxy.TransformResult{
		Content: out,
		Title:   title,
	}, nil
}

// collectEdits walks the document without modifying it and returns the
// edits to apply along with the rewritten title.
func collectEdits(doc *goquery.Document) ([]edit, string) {
	var edits []edit

	doc.Find("body, body *").Contents().Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		if n.Type != html.TextNode || !faleproxy.NeedsRewrite(n.Data) {
			return
		}
		edits = append(edits, edit{node: n, text: faleproxy.Rewrite(n.Data)})
	})

	titles := doc.Find("title")
	original := titles.Text()
	title := faleproxy.Rewrite(original)
	if title != original {
		// Title edits run last so a title inside <body> ends up with the
		// concatenated value.
		titles.Each(func(_ int, sel *goquery.Selection) {
			edits = append(edits, edit{node: sel.Get(0), text: title})
		})
	}

	return edits, title
}

// plainText treats unparseable input as text.
func plainText(src string) *faleproxy.TransformResult {
	return &faleproxy.TransformResult{Content: faleproxy.Rewrite(src)}
}
