package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"testing"

	"github.com/fwojciec/faleproxy"
	"github.com/fwojciec/faleproxy/mock"
	fpslog "github.com/fwojciec/faleproxy/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSource_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs document origin", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Source{
			ResolveFn: func(context.Context, *url.URL) (*faleproxy.RawDocument, error) {
				return &faleproxy.RawDocument{Content: "<p>o</p>", Origin: faleproxy.OriginOverride}, nil
			},
		}
		u, err := url.Parse("https://example.com/")
		require.NoError(t, err)

		doc, err := fpslog.NewLoggingSource(inner, logger).Resolve(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, faleproxy.OriginOverride, doc.Origin)
		out := buf.String()
		assert.Contains(t, out, "msg=resolve")
		assert.Contains(t, out, "origin=override")
		assert.Contains(t, out, "bytes=8")
	})

	t.Run("logs error without document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Source{
			ResolveFn: func(context.Context, *url.URL) (*faleproxy.RawDocument, error) {
				return nil, faleproxy.Errorf(faleproxy.EFETCH, "dial tcp: refused")
			},
		}
		u, err := url.Parse("https://www.yale.edu/")
		require.NoError(t, err)

		_, err = fpslog.NewLoggingSource(inner, logger).Resolve(context.Background(), u)

		require.Error(t, err)
		out := buf.String()
		assert.Contains(t, out, `origin=""`)
		assert.Contains(t, out, "bytes=0")
	})
}
