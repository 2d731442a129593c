package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/faleproxy"
	"github.com/fwojciec/faleproxy/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "simple path",
			url:  "https://www.yale.edu/about/history",
			want: "www.yale.edu/about/history.html",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://www.yale.edu/about/",
			want: "www.yale.edu/about/index.html",
		},
		{
			name: "root path becomes index",
			url:  "https://www.yale.edu/",
			want: "www.yale.edu/index.html",
		},
		{
			name: "root without trailing slash",
			url:  "https://www.yale.edu",
			want: "www.yale.edu/index.html",
		},
		{
			name: "ignores query and fragment",
			url:  "https://www.yale.edu/news?page=2#top",
			want: "www.yale.edu/news.html",
		},
		{
			name: "drops port",
			url:  "http://example.com:3001/page",
			want: "example.com/page.html",
		},
		{
			name: "stays under host directory",
			url:  "https://www.yale.edu/../../etc/passwd",
			want: "www.yale.edu/etc/passwd.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url, ".html")

			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}

	t.Run("rejects URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := fs.URLToPath("/relative", ".html")

		require.Error(t, err)
		assert.Equal(t, faleproxy.EINVALID, faleproxy.ErrorCode(err))
	})
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes content under host directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		path, err := w.Write(context.Background(), "https://www.yale.edu/about", ".md", "# Fale")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "www.yale.edu", "about.md"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "# Fale", string(content))

		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		_, err := w.Write(context.Background(), "https://www.yale.edu/", ".html", "old")
		require.NoError(t, err)
		path, err := w.Write(context.Background(), "https://www.yale.edu/", ".html", "new")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewWriter(t.TempDir()).Write(ctx, "https://www.yale.edu/", ".html", "x")

		require.ErrorIs(t, err, context.Canceled)
	})
}
