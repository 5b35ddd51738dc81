package ingestion

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/achievement-card/internal/fetch"
	"github.com/jonathan/achievement-card/internal/types"
)

const (
	halfBadges       = "badges"
	halfCertificates = "certificates"
)

// StructuredSource reads the JSON badge and certificate endpoints concurrently.
// Each half fails independently and degrades to an empty list.
type StructuredSource struct {
	baseURL string
	options *fetch.Options
	logger  *zap.Logger
}

// NewStructuredSource creates a structured-mode source.
// An empty baseURL uses DefaultBaseURL; nil options use fetch defaults.
func NewStructuredSource(baseURL string, opts *fetch.Options, logger *zap.Logger) *StructuredSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StructuredSource{
		baseURL: baseURL,
		options: resolveOptions(opts).WithHeader("Accept", "application/json"),
		logger:  logger,
	}
}

// halfResult is one slot of the fan-out.
type halfResult struct {
	records []map[string]any
	// unreachable is set when no HTTP response was received at all.
	unreachable error
}

// Fetch retrieves both halves. It only fails when neither endpoint produced an HTTP response.
func (s *StructuredSource) Fetch(ctx context.Context, username string) (*types.Material, error) {
	var badges, certs halfResult

	// Both goroutines always return nil so one half never cancels the other.
	var g errgroup.Group
	g.Go(func() error {
		badges = s.fetchHalf(ctx, halfBadges, profileURL(s.baseURL, "rest", "hackers", username, "badges"))
		return nil
	})
	g.Go(func() error {
		certs = s.fetchHalf(ctx, halfCertificates, profileURL(s.baseURL, "rest", "hackers", username, "certificates"))
		return nil
	})
	_ = g.Wait()

	if badges.unreachable != nil && certs.unreachable != nil {
		return nil, &UpstreamFetchError{
			URL:     s.baseURL,
			Message: "upstream unreachable",
			Cause:   errors.Join(badges.unreachable, certs.unreachable),
		}
	}

	return &types.Material{
		Mode:         types.ModeStructured,
		Badges:       badges.records,
		Certificates: certs.records,
	}, nil
}

func (s *StructuredSource) fetchHalf(ctx context.Context, half, url string) halfResult {
	logger := s.logger.With(zap.String("half", half), zap.String("url", url))

	result, err := fetch.URL(ctx, url, s.options)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
			logger.Warn("upstream returned non-success status", zap.Int("status", fetchErr.StatusCode))
			return halfResult{}
		}
		logger.Warn("upstream request failed", zap.Error(err))
		return halfResult{unreachable: err}
	}

	records, err := decodeModels(half, result.Body)
	if err != nil {
		logger.Warn("discarding malformed payload", zap.Error(err))
		return halfResult{}
	}

	logger.Debug("fetched records", zap.Int("count", len(records)))
	return halfResult{records: records}
}
