// Package card runs the achievement card pipeline:
// acquisition, extraction, classification, layout, and rendering, memoized per profile.
package card

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/achievement-card/internal/cache"
	"github.com/jonathan/achievement-card/internal/classify"
	"github.com/jonathan/achievement-card/internal/ingestion"
	"github.com/jonathan/achievement-card/internal/layout"
	"github.com/jonathan/achievement-card/internal/parsing"
	"github.com/jonathan/achievement-card/internal/rendering"
	"github.com/jonathan/achievement-card/internal/types"
)

// Renderer produces achievement cards.
type Renderer struct {
	source ingestion.Source
	store  cache.Store
	logger *zap.Logger
	group  singleflight.Group
}

// NewRenderer creates a Renderer. A nil store disables caching.
func NewRenderer(source ingestion.Source, store cache.Store, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		source: source,
		store:  store,
		logger: logger,
	}
}

// CacheKey normalizes a username into its cache key.
func CacheKey(username string) string {
	return strings.ToLower(username)
}

// Render returns the SVG card for username. A fresh cached card is returned without
// contacting the upstream. Errors are *ingestion.UpstreamFetchError, ErrMissingIdentifier
// for an empty username, or ctx.Err() when the caller gives up first.
func (r *Renderer) Render(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", ingestion.ErrMissingIdentifier
	}

	key := CacheKey(username)
	if r.store != nil {
		if svg, ok := r.store.Get(key); ok {
			r.logger.Debug("card cache hit", zap.String("key", key))
			return svg, nil
		}
	}

	// Concurrent misses for the same key share one pipeline run. The run is detached
	// from any single caller's cancellation; each caller still stops waiting on its own ctx.
	shared := context.WithoutCancel(ctx)
	ch := r.group.DoChan(key, func() (any, error) {
		if r.store != nil {
			if svg, ok := r.store.Get(key); ok {
				return svg, nil
			}
		}
		return r.build(shared, username)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			r.logger.Debug("joined in-flight render", zap.String("key", key))
		}
		return res.Val.(string), nil
	}
}

// Profile runs acquisition, extraction, and classification without rendering or caching.
func (r *Renderer) Profile(ctx context.Context, username string) (types.ProfileData, error) {
	if username == "" {
		return types.ProfileData{}, ingestion.ErrMissingIdentifier
	}
	material, err := r.source.Fetch(ctx, username)
	if err != nil {
		return types.ProfileData{}, err
	}
	return classify.Profile(parsing.Extract(material)), nil
}

// Compose lays out and renders an already classified profile.
func Compose(username string, profile types.ProfileData) (string, layout.Geometry, error) {
	geometry := layout.Compute(len(profile.Badges), len(profile.Certificates))
	svg, err := rendering.Card(username, profile, geometry)
	if err != nil {
		return "", geometry, err
	}
	return svg, geometry, nil
}

func (r *Renderer) build(ctx context.Context, username string) (string, error) {
	start := time.Now()

	profile, err := r.Profile(ctx, username)
	if err != nil {
		r.logger.Warn("profile acquisition failed", zap.String("username", username), zap.Error(err))
		return "", err
	}

	svg, geometry, err := Compose(username, profile)
	if err != nil {
		r.logger.Error("card rendering failed", zap.String("username", username), zap.Error(err))
		return "", err
	}

	if r.store != nil {
		r.store.Put(CacheKey(username), svg)
	}

	r.logger.Info("rendered card",
		zap.String("username", username),
		zap.Int("badges", len(profile.Badges)),
		zap.Int("certificates", len(profile.Certificates)),
		zap.Int("height", geometry.Height),
		zap.Duration("elapsed", time.Since(start)),
	)
	return svg, nil
}
