// Package types provides type definitions for structured data used throughout the achievement-card system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MaxDisplayStars is the largest star rating drawn on a badge.
const MaxDisplayStars = 5

// Category is the visual style bucket assigned to a record during classification.
type Category string

// Badge categories
const (
	CategoryDatabase Category = "database"
	CategoryPython   Category = "python"
	CategoryJava     Category = "java"
	CategoryWeb      Category = "web"
	CategorySystems  Category = "systems"
	CategoryTop      Category = "top"
	CategoryBronze   Category = "bronze"
	CategoryUnrated  Category = "unrated"
)

// Certificate categories (CategoryWeb and CategoryJava are shared with badges)
const (
	CategoryProfessional Category = "professional"
	CategoryStandard     Category = "standard"
)

// BadgeRecord is a single deduplicated badge.
type BadgeRecord struct {
	Title     string   `json:"title"`
	ImageURL  string   `json:"image_url,omitempty"`
	StarCount int      `json:"star_count"`
	SkillName string   `json:"skill_name"`
	Category  Category `json:"category,omitempty"` // empty until classified
}

// DisplayStars returns the star count clamped to [0, MaxDisplayStars].
func (b BadgeRecord) DisplayStars() int {
	return max(0, min(b.StarCount, MaxDisplayStars))
}

// CertificateRecord is a single deduplicated certificate.
type CertificateRecord struct {
	Title     string   `json:"title"`
	LinkURL   string   `json:"link_url,omitempty"`
	TypeLabel string   `json:"type_label"`
	Verified  bool     `json:"verified"`
	Category  Category `json:"category,omitempty"`
}

// ProfileData is the ordered output of one extraction pass.
type ProfileData struct {
	Badges       []BadgeRecord       `json:"badges"`
	Certificates []CertificateRecord `json:"certificates"`
	// SkillCount is the number of distinct skill names across badges.
	SkillCount int `json:"skill_count"`
}
