package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/faleproxy"
)

// Ensure LoggingTransformer implements faleproxy.Transformer.
var _ faleproxy.Transformer = (*LoggingTransformer)(nil)

// LoggingTransformer wraps a Transformer with debug logging.
type LoggingTransformer struct {
	next   faleproxy.Transformer
	logger *slog.Logger
}

// NewLoggingTransformer creates a new LoggingTransformer.
func NewLoggingTransformer(next faleproxy.Transformer, logger *slog.Logger) *LoggingTransformer {
	return &LoggingTransformer{next: next, logger: logger}
}

// Transform delegates to the wrapped transformer and logs sizes and timing.
func (t *LoggingTransformer) Transform(html string) (result *faleproxy.TransformResult, err error) {
	defer func(begin time.Time) {
		out := 0
		if result != nil {
			out = len(result.Content)
		}
		t.logger.Debug("transform",
			"bytes_in", len(html),
			"bytes_out", out,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Transform(html)
}
