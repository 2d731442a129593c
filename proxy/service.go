package proxy

import (
	"context"
	"log/slog"

	"github.com/fwojciec/faleproxy"
)

// Ensure Service implements faleproxy.ProxyService at compile time.
var _ faleproxy.ProxyService = (*Service)(nil)

// fetchFailedPrefix prefixes every non-input failure message.
const fetchFailedPrefix = "Failed to fetch content: "

// Service runs validate, resolve, transform for one request at a time.
// Requests share no mutable state, so Service is safe for concurrent use.
type Service struct {
	source      faleproxy.Source
	transformer faleproxy.Transformer
	logger      *slog.Logger
}

// NewService creates a new Service. A nil logger discards output.
func NewService(source faleproxy.Source, transformer faleproxy.Transformer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		source:      source,
		transformer: transformer,
		logger:      logger,
	}
}

// Fetch validates req.URL, resolves its document, rewrites it, and returns
// the result. Errors are always *faleproxy.Error with a user-facing message.
func (s *Service) Fetch(ctx context.Context, req faleproxy.FetchRequest) (*faleproxy.Response, error) {
	if req.URL == "" {
		err := faleproxy.Errorf(faleproxy.EMISSING, "URL is required")
		s.logger.Error("error fetching URL", "err", faleproxy.ErrorMessage(err))
		return nil, err
	}

	resp, err := s.fetch(ctx, req.URL)
	if err != nil {
		s.logger.Error("error fetching URL",
			"url", req.URL,
			"code", faleproxy.ErrorCode(err),
			"err", faleproxy.ErrorMessage(err),
		)
		return nil, faleproxy.Errorf(faleproxy.ErrorCode(err), "%s%s", fetchFailedPrefix, faleproxy.ErrorMessage(err))
	}

	return resp, nil
}

func (s *Service) fetch(ctx context.Context, raw string) (*faleproxy.Response, error) {
	u, err := faleproxy.ValidateURL(raw)
	if err != nil {
		return nil, err
	}

	doc, err := s.source.Resolve(ctx, u)
	if err != nil {
		return nil, err
	}

	result, err := s.transformer.Transform(doc.Content)
	if err != nil {
		return nil, err
	}

	return &faleproxy.Response{
		Success:     true,
		Content:     result.Content,
		Title:       result.Title,
		OriginalURL: raw,
	}, nil
}
