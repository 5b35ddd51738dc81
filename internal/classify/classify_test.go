package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/achievement-card/internal/types"
)

func TestBadge_KeywordPriority(t *testing.T) {
	tests := []struct {
		title string
		stars int
		want  types.Category
	}{
		{"SQL 4 star", 4, types.CategoryDatabase},
		{"Database Design", 0, types.CategoryDatabase},
		{"Python 3 star", 3, types.CategoryPython},
		{"Python and SQL", 0, types.CategoryDatabase},
		{"Java Programming", 0, types.CategoryJava},
		{"JavaScript Basics", 0, types.CategoryWeb},
		{"Java to JavaScript", 0, types.CategoryWeb},
		{"React", 1, types.CategoryWeb},
		{"C++ 2 star", 2, types.CategorySystems},
		{"CPP Advanced", 0, types.CategorySystems},
		{"Problem Solving Badge", 0, types.CategoryTop},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Badge(types.BadgeRecord{Title: tt.title, StarCount: tt.stars})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBadge_StarTiers(t *testing.T) {
	tests := []struct {
		stars int
		want  types.Category
	}{
		{7, types.CategoryTop},
		{5, types.CategoryTop},
		{4, types.CategoryTop},
		{3, types.CategorySystems},
		{2, types.CategoryBronze},
		{1, types.CategoryBronze},
	}

	for _, tt := range tests {
		got := Badge(types.BadgeRecord{Title: "Go", StarCount: tt.stars})
		assert.Equal(t, tt.want, got, "stars=%d", tt.stars)
	}
}

// A badge with no keyword and no stars carries no signal. It must not share the
// top tier with four- and five-star badges.
func TestBadge_NoSignalIsDistinctFromTopTier(t *testing.T) {
	noSignal := Badge(types.BadgeRecord{Title: "Go"})
	top := Badge(types.BadgeRecord{Title: "Go", StarCount: 5})

	assert.Equal(t, types.CategoryUnrated, noSignal)
	assert.NotEqual(t, top, noSignal)
}

func TestCertificate(t *testing.T) {
	tests := []struct {
		title string
		want  types.Category
	}{
		{"Frontend Developer (React)", types.CategoryWeb},
		{"Angular (Basic)", types.CategoryWeb},
		{"Software Engineer", types.CategoryProfessional},
		{"SQL (Advanced)", types.CategoryProfessional},
		{"Java (Basic)", types.CategoryJava},
		{"JavaScript (Basic)", types.CategoryStandard},
		{"Python (Basic)", types.CategoryStandard},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Certificate(types.CertificateRecord{Title: tt.title}))
		})
	}
}

func TestProfile_DoesNotMutateInput(t *testing.T) {
	in := types.ProfileData{
		Badges:       []types.BadgeRecord{{Title: "Python"}},
		Certificates: []types.CertificateRecord{{Title: "Java (Basic)"}},
		SkillCount:   1,
	}

	out := Profile(in)

	require.Len(t, out.Badges, 1)
	assert.Equal(t, types.CategoryPython, out.Badges[0].Category)
	assert.Equal(t, types.CategoryJava, out.Certificates[0].Category)
	assert.Equal(t, 1, out.SkillCount)
	assert.Empty(t, in.Badges[0].Category)
	assert.Empty(t, in.Certificates[0].Category)
}

func TestRule_Matches(t *testing.T) {
	r := Rule{AnyOf: []string{"java"}, NoneOf: []string{"javascript"}}
	assert.True(t, r.Matches("java basics"))
	assert.False(t, r.Matches("javascript basics"))
	assert.False(t, r.Matches("python"))
}
