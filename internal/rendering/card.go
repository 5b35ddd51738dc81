package rendering

import (
	"embed"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/jonathan/achievement-card/internal/layout"
	"github.com/jonathan/achievement-card/internal/types"
)

//go:embed templates/card.svg.tmpl
var templateFS embed.FS

var cardTemplate = template.Must(
	template.New("card.svg.tmpl").
		Funcs(template.FuncMap{"escape": EscapeMarkup}).
		ParseFS(templateFS, "templates/card.svg.tmpl"),
)

// hexPath is the badge outline in cell-local coordinates.
const hexPath = "M 60 5 L 112 35 L 112 95 L 60 125 L 8 95 L 8 35 Z"

// Label and title truncation limits, in runes.
const (
	badgeLineWords  = 2
	badgeLineRunes  = 15
	certLineRunes   = 22
	certTitleLines  = 2
	certTitleTop    = 70
	certLineSpacing = 18
	starGlyph       = "⭐"
)

// styleDef is one entry of the style block.
type styleDef struct {
	Class string
	Fill  string
}

// badgeStyles maps badge categories to their shape classes.
var badgeStyles = map[types.Category]styleDef{
	types.CategoryTop:      {"hex-gold", "#FDB714"},
	types.CategorySystems:  {"hex-silver", "#C0C0D0"},
	types.CategoryBronze:   {"hex-bronze", "#E89B6E"},
	types.CategoryPython:   {"hex-blue", "#5B9BD5"},
	types.CategoryWeb:      {"hex-green", "#70AD47"},
	types.CategoryDatabase: {"hex-purple", "#9B7EBD"},
	types.CategoryJava:     {"hex-orange", "#FF8C42"},
	types.CategoryUnrated:  {"hex-slate", "#6C7A96"},
}

// certStyles maps certificate categories to their card classes.
var certStyles = map[types.Category]styleDef{
	types.CategoryStandard:     {"cert-green", "#39B54A"},
	types.CategoryWeb:          {"cert-blue", "#2E5CB8"},
	types.CategoryProfessional: {"cert-purple", "#7952B3"},
	types.CategoryJava:         {"cert-orange", "#FF6B35"},
}

// styleOrder fixes the order of the style block so output is byte-stable.
var styleOrder = []styleDef{
	badgeStyles[types.CategoryTop],
	badgeStyles[types.CategorySystems],
	badgeStyles[types.CategoryBronze],
	badgeStyles[types.CategoryPython],
	badgeStyles[types.CategoryWeb],
	badgeStyles[types.CategoryDatabase],
	badgeStyles[types.CategoryJava],
	badgeStyles[types.CategoryUnrated],
	certStyles[types.CategoryStandard],
	certStyles[types.CategoryWeb],
	certStyles[types.CategoryProfessional],
	certStyles[types.CategoryJava],
}

// checkStrokes colors the verified tick to contrast with its card.
var checkStrokes = map[string]string{
	"cert-green": "#0A5C2E",
	"cert-blue":  "#1A3A6E",
}

const defaultCheckStroke = "#4A2870"

type statView struct {
	X     int
	Label string
	Value int
}

type sectionView struct {
	DividerY int
	TitleY   int
	CountX   int
}

type badgeView struct {
	X, Y     int
	Title    string
	Class    string
	ImageURL string
	Stars    string
	Line1    string
	Line2    string
}

type lineView struct {
	Text string
	Y    int
}

type certView struct {
	X, Y        int
	Title       string
	Class       string
	LinkURL     string
	TitleLines  []lineView
	TypeLabel   string
	Verified    bool
	CheckStroke string
}

// cardView holds raw (unescaped) text; the template escapes at each insertion point.
type cardView struct {
	Width, Height int
	Padding       int
	RightEdge     int
	HexPath       string
	Styles        []styleDef
	Username      string
	Stats         []statView

	BadgeSection sectionView
	Badges       []badgeView

	CertSection  sectionView
	CertTotal    int
	CertOverflow int
	Certificates []certView
}

// Card renders a classified profile into a complete SVG document.
// It performs no I/O; an error indicates a template defect.
func Card(username string, profile types.ProfileData, g layout.Geometry) (string, error) {
	view := buildCardView(username, profile, g)

	var sb strings.Builder
	if err := cardTemplate.ExecuteTemplate(&sb, "card", view); err != nil {
		return "", &TemplateError{Message: "failed to execute card template", Cause: err}
	}
	return sb.String(), nil
}

// ErrorCard renders the fallback card shown when a profile cannot be loaded.
func ErrorCard(message string) string {
	var sb strings.Builder
	if err := cardTemplate.ExecuteTemplate(&sb, "error", struct{ Message string }{message}); err != nil {
		// The error template has no failure modes besides a broken writer.
		return `<svg xmlns="http://www.w3.org/2000/svg" width="700" height="200"></svg>`
	}
	return sb.String()
}

func buildCardView(username string, profile types.ProfileData, g layout.Geometry) cardView {
	statX := layout.Width - layout.Padding - 320
	view := cardView{
		Width:     g.Width,
		Height:    g.Height,
		Padding:   layout.Padding,
		RightEdge: layout.Width - layout.Padding,
		HexPath:   hexPath,
		Styles:    styleOrder,
		Username:  username,
		Stats: []statView{
			{X: statX, Label: "Total Badges", Value: len(profile.Badges)},
			{X: statX + 120, Label: "Certificates", Value: len(profile.Certificates)},
			{X: statX + 240, Label: "Skills", Value: profile.SkillCount},
		},
		CertTotal:    g.CertCount,
		CertOverflow: g.CertOverflow,
	}

	if g.HasBadges() {
		view.BadgeSection = sectionView{
			DividerY: g.BadgeSectionTop + layout.DividerOffset,
			TitleY:   g.BadgeSectionTop + layout.TitleOffset,
			CountX:   layout.Padding + 130,
		}
		view.Badges = make([]badgeView, 0, len(profile.Badges))
		for i, b := range profile.Badges {
			view.Badges = append(view.Badges, badgeViewFor(b, g.BadgeOrigin(i)))
		}
	}

	if g.HasCertificates() {
		view.CertSection = sectionView{
			DividerY: g.CertSectionTop + layout.DividerOffset,
			TitleY:   g.CertSectionTop + layout.TitleOffset,
			CountX:   layout.Padding + 210,
		}
		shown := profile.Certificates[:min(g.CertDisplayed, len(profile.Certificates))]
		view.Certificates = make([]certView, 0, len(shown))
		for i, c := range shown {
			view.Certificates = append(view.Certificates, certViewFor(c, g.CertOrigin(i)))
		}
	}

	return view
}

func badgeViewFor(b types.BadgeRecord, at layout.Point) badgeView {
	style, ok := badgeStyles[b.Category]
	if !ok {
		style = badgeStyles[types.CategoryUnrated]
	}

	label := b.SkillName
	if label == "" {
		label = b.Title
	}
	words := strings.Fields(label)

	return badgeView{
		X:        at.X,
		Y:        at.Y,
		Title:    b.Title,
		Class:    style.Class,
		ImageURL: SafeURL(b.ImageURL),
		Stars:    strings.Repeat(starGlyph, b.DisplayStars()),
		Line1:    truncateRunes(joinWords(words, 0), badgeLineRunes),
		Line2:    truncateRunes(joinWords(words, badgeLineWords), badgeLineRunes),
	}
}

func certViewFor(c types.CertificateRecord, at layout.Point) certView {
	style, ok := certStyles[c.Category]
	if !ok {
		style = certStyles[types.CategoryStandard]
	}
	stroke, ok := checkStrokes[style.Class]
	if !ok {
		stroke = defaultCheckStroke
	}

	chunks := chunkRunes(c.Title, certLineRunes)
	lines := make([]lineView, 0, certTitleLines)
	for i, chunk := range chunks[:min(len(chunks), certTitleLines)] {
		lines = append(lines, lineView{
			Text: strings.TrimSpace(chunk),
			Y:    certTitleTop + i*certLineSpacing,
		})
	}

	return certView{
		X:           at.X,
		Y:           at.Y,
		Title:       c.Title,
		Class:       style.Class,
		LinkURL:     SafeURL(c.LinkURL),
		TitleLines:  lines,
		TypeLabel:   c.TypeLabel,
		Verified:    c.Verified,
		CheckStroke: stroke,
	}
}

// joinWords joins up to badgeLineWords words starting at from.
func joinWords(words []string, from int) string {
	if from >= len(words) {
		return ""
	}
	return strings.Join(words[from:min(len(words), from+badgeLineWords)], " ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// chunkRunes splits s into consecutive pieces of at most n runes.
func chunkRunes(s string, n int) []string {
	runes := []rune(s)
	var out []string
	for len(runes) > 0 {
		k := min(n, len(runes))
		out = append(out, string(runes[:k]))
		runes = runes[k:]
	}
	return out
}
