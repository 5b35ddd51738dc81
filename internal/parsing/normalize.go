package parsing

import (
	"strconv"
	"strings"

	"github.com/jonathan/achievement-card/internal/types"
)

// badgeCandidate is a badge as scanned, before dedup and derivation.
type badgeCandidate struct {
	title    string
	imageURL string
	// stars is nil when the source carried no numeric rating.
	stars *int
}

// certificateCandidate is a certificate as scanned.
type certificateCandidate struct {
	title    string
	linkURL  string
	category string
}

// StarCount returns the first integer immediately preceding "star" in title, or 0.
func StarCount(title string) int {
	m := starPattern.FindStringSubmatch(title)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// SkillName strips the star phrase and a trailing "badge" token from a badge title.
func SkillName(title string) string {
	name := collapseSpace(starPattern.ReplaceAllString(title, " "))
	name = trailingBadgeToken.ReplaceAllString(name, "")
	return collapseSpace(name)
}

// TypeLabel derives the certificate type label: the first parenthesized part of the
// title, else the upstream category, else DefaultTypeLabel. The result is upper-case.
func TypeLabel(title, category string) string {
	if m := parenthesized.FindStringSubmatch(title); m != nil {
		if label := collapseSpace(m[1]); label != "" {
			return strings.ToUpper(label)
		}
	}
	if label := collapseSpace(category); label != "" {
		return strings.ToUpper(label)
	}
	return DefaultTypeLabel
}

// normalize dedupes both candidate lists by case-insensitive title, keeping the first
// occurrence, and derives the secondary attributes of each record.
func normalize(badges []badgeCandidate, certs []certificateCandidate) types.ProfileData {
	profile := types.ProfileData{
		Badges:       make([]types.BadgeRecord, 0, len(badges)),
		Certificates: make([]types.CertificateRecord, 0, len(certs)),
	}

	seen := make(map[string]bool)
	for _, c := range badges {
		title := collapseSpace(c.title)
		if title == "" {
			title = DefaultBadgeTitle
		}
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		seen[key] = true

		stars := StarCount(title)
		if c.stars != nil {
			stars = max(0, *c.stars)
		}
		profile.Badges = append(profile.Badges, types.BadgeRecord{
			Title:     title,
			ImageURL:  c.imageURL,
			StarCount: stars,
			SkillName: SkillName(title),
		})
	}

	seen = make(map[string]bool)
	for _, c := range certs {
		title := collapseSpace(c.title)
		if title == "" {
			title = DefaultCertificateTitle
		}
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		seen[key] = true

		profile.Certificates = append(profile.Certificates, types.CertificateRecord{
			Title:     title,
			LinkURL:   c.linkURL,
			TypeLabel: TypeLabel(title, c.category),
			Verified:  true,
		})
	}

	profile.SkillCount = SkillCount(profile.Badges)
	return profile
}

// SkillCount returns the number of distinct skill names, falling back to the badge
// count when no skill name could be derived.
func SkillCount(badges []types.BadgeRecord) int {
	skills := make(map[string]bool)
	for _, b := range badges {
		if name := strings.ToLower(b.SkillName); name != "" {
			skills[name] = true
		}
	}
	if len(skills) == 0 {
		return len(badges)
	}
	return len(skills)
}

func collapseSpace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
