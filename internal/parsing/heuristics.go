// Package parsing extracts badge and certificate candidates from upstream material
// and normalizes them into deduplicated records.
package parsing

import "regexp"

// Fallback titles for records whose upstream title is missing.
const (
	DefaultBadgeTitle       = "Badge"
	DefaultCertificateTitle = "Certificate"
	DefaultTypeLabel        = "SKILL"
)

// Field tables for structured records. The first key present with a usable value wins.
var (
	badgeTitleKeys = []string{"badge_name", "name", "title"}
	badgeImageKeys = []string{"badge_url", "url", "image_url", "icon_url"}
	badgeStarKeys  = []string{"star_count", "stars"}

	certTitleKeys    = []string{"certificate_name", "name", "title"}
	certLinkKeys     = []string{"certificate_url", "url", "link"}
	certCategoryKeys = []string{"category", "type"}
)

// PageRule describes how page-mode extraction recognises one kind of candidate.
type PageRule struct {
	// Selector lists the element kinds scanned.
	Selector string
	// Token must appear (case-insensitively) in one of the inspected attributes or the text.
	Token string
	// MinTextLen and MaxTextLen bound the visible text in runes; zero disables the bound.
	MinTextLen int
	MaxTextLen int
}

var (
	badgeRule = PageRule{
		Selector: "img, image",
		Token:    "badge",
	}
	certificateRule = PageRule{
		Selector:   "a, li, div, article, section",
		Token:      "certificate",
		MinTextLen: 4,
		MaxTextLen: 99,
	}
)

// navigationLabels are certificate-token texts that are menu entries rather than certificates.
var navigationLabels = map[string]bool{
	"certificate":  true,
	"certificates": true,
}

var (
	starPattern        = regexp.MustCompile(`(?i)(\d+)\s*stars?`)
	trailingBadgeToken = regexp.MustCompile(`(?i)\s*\bbadge$`)
	parenthesized      = regexp.MustCompile(`\(([^()]*)\)`)
	whitespace         = regexp.MustCompile(`\s+`)
)
