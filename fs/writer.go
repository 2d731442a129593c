// Package fs saves rewritten pages to the local filesystem.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/faleproxy"
)

// URLToPath converts a page URL to a relative file path under a directory
// named after the host. The extension is appended to the last segment.
// Example: https://www.yale.edu/about/history, ".html" → www.yale.edu/about/history.html
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", faleproxy.Errorf(faleproxy.EINVALID, "invalid URL: %v", err)
	}
	if u.Hostname() == "" {
		return "", faleproxy.Errorf(faleproxy.EINVALID, "URL has no host: %s", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case path == "":
		path = "index" + ext
	case strings.HasSuffix(path, "/"):
		path += "index" + ext
	default:
		path += ext
	}

	// Clean removes any ".." segments so output stays under the host dir.
	return filepath.Join(u.Hostname(), filepath.Clean("/"+path)), nil
}

// Writer writes pages below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write stores content for sourceURL and returns the full path written.
// The file is written to a temporary name first and renamed into place.
func (w *Writer) Write(ctx context.Context, sourceURL, ext, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	relPath, err := URLToPath(sourceURL, ext)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	return fullPath, nil
}
