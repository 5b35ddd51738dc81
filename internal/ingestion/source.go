package ingestion

import (
	"context"
	"net/url"
	"strings"

	"github.com/jonathan/achievement-card/internal/fetch"
	"github.com/jonathan/achievement-card/internal/types"
)

// DefaultBaseURL is the public upstream host.
const DefaultBaseURL = "https://www.hackerrank.com"

// Source produces raw upstream material for one profile.
type Source interface {
	Fetch(ctx context.Context, username string) (*types.Material, error)
}

// profileURL joins the base URL with escaped path segments.
func profileURL(base string, segments ...string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))
	for _, seg := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(seg))
	}
	return sb.String()
}

func resolveOptions(opts *fetch.Options) *fetch.Options {
	if opts == nil {
		return fetch.DefaultOptions()
	}
	return opts
}
