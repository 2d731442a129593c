package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/faleproxy"
)

var _ faleproxy.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source and records where each document came from,
// so override hits are distinguishable from live fetches in the logs.
type LoggingSource struct {
	next   faleproxy.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next faleproxy.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

func (s *LoggingSource) Resolve(ctx context.Context, u *url.URL) (doc *faleproxy.RawDocument, err error) {
	defer func(begin time.Time) {
		var origin faleproxy.Origin
		var size int
		if doc != nil {
			origin, size = doc.Origin, len(doc.Content)
		}
		s.logger.Debug("resolve",
			"url", u.String(),
			"origin", origin,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, u)
}
