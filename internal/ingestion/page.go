package ingestion

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/achievement-card/internal/fetch"
	"github.com/jonathan/achievement-card/internal/types"
)

// BrowserFunc renders a URL in a headless browser and returns the resulting HTML.
type BrowserFunc func(ctx context.Context, url string) (string, error)

// PageSource scrapes the public profile page. Any failure to obtain the
// document is fatal because nothing can be extracted without it.
type PageSource struct {
	baseURL string
	options *fetch.Options
	browser BrowserFunc
	logger  *zap.Logger
}

// NewPageSource creates a page-mode source. browser may be nil to disable headless rendering.
func NewPageSource(baseURL string, opts *fetch.Options, browser BrowserFunc, logger *zap.Logger) *PageSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageSource{
		baseURL: baseURL,
		options: resolveOptions(opts),
		browser: browser,
		logger:  logger,
	}
}

// ChromeBrowser returns a BrowserFunc backed by a local Chrome/Chromium install.
func ChromeBrowser(logger *zap.Logger) BrowserFunc {
	return func(ctx context.Context, url string) (string, error) {
		return fetch.WithBrowser(ctx, url, fetch.DefaultBrowserTimeout, logger)
	}
}

// Fetch retrieves the profile document.
func (s *PageSource) Fetch(ctx context.Context, username string) (*types.Material, error) {
	pageURL := profileURL(s.baseURL, "profile", username)
	logger := s.logger.With(zap.String("url", pageURL))

	result, err := fetch.URL(ctx, pageURL, s.options)
	if err != nil {
		upstreamErr := &UpstreamFetchError{
			URL:     pageURL,
			Message: "could not retrieve profile page",
			Cause:   err,
		}
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
			upstreamErr.StatusCode = fetchErr.StatusCode
			upstreamErr.Message = fmt.Sprintf("profile page returned HTTP %d", fetchErr.StatusCode)
			upstreamErr.Cause = nil
		}
		return nil, upstreamErr
	}

	html := result.HTML()
	if s.browser != nil && s.needsBrowser(html) {
		rendered, browserErr := s.browser(ctx, pageURL)
		if browserErr != nil {
			logger.Warn("browser rendering failed, using HTTP document", zap.Error(browserErr))
		} else {
			html = rendered
		}
	}

	logger.Debug("fetched profile page", zap.Int("bytes", len(html)))
	return &types.Material{
		Mode:    types.ModePage,
		HTML:    html,
		PageURL: pageURL,
	}, nil
}

func (s *PageSource) needsBrowser(html string) bool {
	text, err := fetch.ExtractMainText(html)
	if err != nil {
		return true
	}
	return fetch.ShouldUseBrowser(text)
}
