package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/faleproxy"
	"github.com/fwojciec/faleproxy/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Transformer implements faleproxy.Transformer at compile time.
var _ faleproxy.Transformer = (*goquery.Transformer)(nil)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>Yale University Test Page</title>
  <meta name="description" content="Yale University homepage">
  <style>.yale { color: blue; }</style>
</head>
<body>
  <div class="container yale-header">
    <h1>Welcome to Yale University</h1>
    <p>Yale University is a private Ivy League research university.</p>
    <p>Founded in 1701, YALE is the third-oldest institution in the US.</p>
    <!-- Yale comment -->
    <nav>
      <a href="https://www.yale.edu/about">About Yale</a>
      <a href="https://www.yale.edu/admissions" title="Yale Admissions">Admissions</a>
    </nav>
    <img src="https://www.yale.edu/images/logo.png" alt="Yale Logo">
  </div>
</body>
</html>`

func TestTransformer_Transform(t *testing.T) {
	t.Parallel()

	t.Run("rewrites text nodes and title", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform(samplePage)

		require.NoError(t, err)
		assert.Equal(t, "Fale University Test Page", result.Title)
		assert.Contains(t, result.Content, "<title>Fale University Test Page</title>")
		assert.Contains(t, result.Content, "<h1>Welcome to Fale University</h1>")
		assert.Contains(t, result.Content, "Fale University is a private Ivy League research university.")
		assert.Contains(t, result.Content, "Founded in 1701, Fale is the third-oldest")
		assert.Contains(t, result.Content, ">About Fale<")
	})

	t.Run("preserves attribute values", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform(samplePage)

		require.NoError(t, err)
		assert.Contains(t, result.Content, `href="https://www.yale.edu/about"`)
		assert.Contains(t, result.Content, `href="https://www.yale.edu/admissions"`)
		assert.Contains(t, result.Content, `title="Yale Admissions"`)
		assert.Contains(t, result.Content, `src="https://www.yale.edu/images/logo.png"`)
		assert.Contains(t, result.Content, `alt="Yale Logo"`)
		assert.Contains(t, result.Content, `class="container yale-header"`)
		assert.Contains(t, result.Content, `content="Yale University homepage"`)
	})

	t.Run("leaves comments and head text alone", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform(samplePage)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "<!-- Yale comment -->")
		assert.Contains(t, result.Content, ".yale { color: blue; }")
	})

	t.Run("rewrites direct text children of body", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform(`<html><body>Yale<p>yale</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "<html><head></head><body>Fale<p>Fale</p></body></html>", result.Content)
	})

	t.Run("rewrites inside longer words", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform(`<p>Yalensis</p>`)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "<p>Falensis</p>")
	})

	t.Run("leaves documents without matches unchanged", func(t *testing.T) {
		t.Parallel()

		src := `<html><head><title>Harvard</title></head><body><p>Hello <b>world</b></p></body></html>`

		result, err := goquery.NewTransformer().Transform(src)

		require.NoError(t, err)
		assert.Equal(t, src, result.Content)
		assert.Equal(t, "Harvard", result.Title)
	})

	t.Run("returns empty title when document has none", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform(`<p>Yale</p>`)

		require.NoError(t, err)
		assert.Empty(t, result.Title)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		tr := goquery.NewTransformer()
		first, err := tr.Transform(samplePage)
		require.NoError(t, err)

		second, err := tr.Transform(first.Content)
		require.NoError(t, err)

		assert.Equal(t, first.Content, second.Content)
		assert.Equal(t, first.Title, second.Title)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform(`<div><p>Yale<span>unclosed`)

		require.NoError(t, err)
		assert.Contains(t, result.Content, "Fale")
		assert.NotContains(t, strings.ToLower(result.Content), "yale")
	})

	t.Run("treats plain text as body text", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewTransformer().Transform("just Yale text")

		require.NoError(t, err)
		assert.Contains(t, result.Content, "just Fale text")
	})
}
