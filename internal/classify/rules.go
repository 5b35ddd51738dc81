// Package classify assigns visual categories to badge and certificate records.
//
// Keywords are not mutually exclusive ("java" is a substring of "javascript"),
// so each table is evaluated top to bottom and the first matching rule wins.
package classify

import (
	"strings"

	"github.com/jonathan/achievement-card/internal/types"
)

// Rule matches a lowercased title that contains any of AnyOf and none of NoneOf.
type Rule struct {
	AnyOf    []string
	NoneOf   []string
	Category types.Category
}

// Matches reports whether the lowercased title satisfies the rule.
func (r Rule) Matches(title string) bool {
	for _, kw := range r.NoneOf {
		if strings.Contains(title, kw) {
			return false
		}
	}
	for _, kw := range r.AnyOf {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// StarTier maps a minimum star count to a category.
type StarTier struct {
	MinStars int
	Category types.Category
}

// BadgeRules is the ordered keyword cascade for badges.
var BadgeRules = []Rule{
	{AnyOf: []string{"sql", "database"}, Category: types.CategoryDatabase},
	{AnyOf: []string{"python"}, Category: types.CategoryPython},
	{AnyOf: []string{"java"}, NoneOf: []string{"javascript"}, Category: types.CategoryJava},
	{AnyOf: []string{"javascript", "react"}, Category: types.CategoryWeb},
	{AnyOf: []string{"c++", "cpp"}, Category: types.CategorySystems},
	{AnyOf: []string{"problem solving"}, Category: types.CategoryTop},
}

// BadgeStarTiers is consulted, highest first, when no keyword rule matched.
var BadgeStarTiers = []StarTier{
	{MinStars: 4, Category: types.CategoryTop},
	{MinStars: 3, Category: types.CategorySystems},
	{MinStars: 1, Category: types.CategoryBronze},
}

// BadgeFallback is used for badges with no keyword match and no stars.
const BadgeFallback = types.CategoryUnrated

// CertificateRules is the ordered keyword cascade for certificates.
var CertificateRules = []Rule{
	{AnyOf: []string{"frontend", "react", "angular"}, Category: types.CategoryWeb},
	{AnyOf: []string{"software", "engineer"}, Category: types.CategoryProfessional},
	{AnyOf: []string{"sql", "database"}, Category: types.CategoryProfessional},
	{AnyOf: []string{"java"}, NoneOf: []string{"javascript"}, Category: types.CategoryJava},
}

// CertificateFallback is used for certificates no rule matched.
const CertificateFallback = types.CategoryStandard

func match(rules []Rule, title string) (types.Category, bool) {
	lower := strings.ToLower(title)
	for _, r := range rules {
		if r.Matches(lower) {
			return r.Category, true
		}
	}
	return "", false
}
