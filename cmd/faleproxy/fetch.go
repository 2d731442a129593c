package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/faleproxy"
)

// PageWriter saves rendered output for a URL.
type PageWriter interface {
	Write(ctx context.Context, sourceURL, ext, content string) (string, error)
}

// formatExt maps output formats to file extensions.
var formatExt = map[string]string{
	"html":     ".html",
	"json":     ".json",
	"markdown": ".md",
	"article":  ".md",
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	resp, err := deps.Proxy.Fetch(deps.Ctx, faleproxy.FetchRequest{URL: c.URL})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faleproxy.ErrorMessage(err))
		return err
	}

	out, err := c.render(deps, resp)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faleproxy.ErrorMessage(err))
		return err
	}

	if deps.Writer == nil {
		_, err = fmt.Fprint(deps.Stdout, out)
		return err
	}

	path, err := deps.Writer.Write(deps.Ctx, resp.OriginalURL, formatExt[c.Format], out)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faleproxy.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "saved %s\n", path)
	return nil
}

func (c *FetchCmd) render(deps *Dependencies, resp *faleproxy.Response) (string, error) {
	switch c.Format {
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return "", err
		}
		return buf.String(), nil
	case "markdown":
		return toMarkdown(deps, resp.Title, resp.Content)
	case "article":
		if deps.Extractor == nil {
			return "", faleproxy.Errorf(faleproxy.EINTERNAL, "extractor not configured")
		}
		article, err := deps.Extractor.Extract(resp.Content)
		if err != nil {
			return "", err
		}
		title := article.Title
		if title == "" {
			title = resp.Title
		}
		return toMarkdown(deps, title, article.ContentHTML)
	default:
		return resp.Content + "\n", nil
	}
}

func toMarkdown(deps *Dependencies, title, html string) (string, error) {
	if deps.Converter == nil {
		return "", faleproxy.Errorf(faleproxy.EINTERNAL, "markdown converter not configured")
	}
	md, err := deps.Converter.Convert(html)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("# %s\n\n%s\n", title, md), nil
}
