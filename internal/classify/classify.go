package classify

import "github.com/jonathan/achievement-card/internal/types"

// Badge returns the visual category of a badge.
func Badge(b types.BadgeRecord) types.Category {
	if c, ok := match(BadgeRules, b.Title); ok {
		return c
	}
	for _, tier := range BadgeStarTiers {
		if b.StarCount >= tier.MinStars {
			return tier.Category
		}
	}
	return BadgeFallback
}

// Certificate returns the visual category of a certificate.
func Certificate(c types.CertificateRecord) types.Category {
	if cat, ok := match(CertificateRules, c.Title); ok {
		return cat
	}
	return CertificateFallback
}

// Profile returns a copy of p with every record classified. p is not modified.
func Profile(p types.ProfileData) types.ProfileData {
	out := types.ProfileData{
		Badges:       make([]types.BadgeRecord, len(p.Badges)),
		Certificates: make([]types.CertificateRecord, len(p.Certificates)),
		SkillCount:   p.SkillCount,
	}
	for i, b := range p.Badges {
		b.Category = Badge(b)
		out.Badges[i] = b
	}
	for i, c := range p.Certificates {
		c.Category = Certificate(c)
		out.Certificates[i] = c
	}
	return out
}
