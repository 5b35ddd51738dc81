package parsing

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/achievement-card/internal/types"
)

// Extract turns raw upstream material into a deduplicated profile.
// It never fails: unusable material yields an empty profile.
func Extract(m *types.Material) types.ProfileData {
	if m == nil {
		return normalize(nil, nil)
	}

	switch m.Mode {
	case types.ModePage:
		return FromHTML(m.HTML, m.PageURL)
	default:
		return FromRecords(m.Badges, m.Certificates)
	}
}

// FromRecords builds a profile from structured badge and certificate objects.
func FromRecords(badges, certificates []map[string]any) types.ProfileData {
	return normalize(badgesFromRecords(badges), certificatesFromRecords(certificates))
}

// FromHTML builds a profile by scanning a profile page.
func FromHTML(html, pageURL string) types.ProfileData {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return normalize(nil, nil)
	}
	badges, certs := scanPage(doc, pageURL)
	return normalize(badges, certs)
}
