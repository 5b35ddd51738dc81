// Package layout computes the card geometry. Every dimension is an analytic function of
// the record counts and the style constants below; nothing is measured.
package layout

// Canvas constants.
const (
	Width        = 900
	Padding      = 40
	HeaderHeight = 100
)

// Badge grid constants.
const (
	BadgeColumns         = 5
	BadgeSize            = 120
	BadgeGap             = 25
	BadgeLabelAllowance  = 35
	BadgeRowPitch        = BadgeSize + BadgeGap + BadgeLabelAllowance
	BadgeColumnPitch     = BadgeSize + BadgeGap
	BadgeSectionOverhead = 100
)

// Certificate grid constants.
const (
	CertColumns         = 4
	CertCardWidth       = 200
	CertCardHeight      = 140
	CertGap             = 20
	CertRowPitch        = CertCardHeight + CertGap
	CertColumnPitch     = CertCardWidth + CertGap
	CertMaxDisplayed    = 16
	CertSectionOverhead = 100
)

// Offsets inside a section, relative to its top.
const (
	// DividerOffset places the divider line above the section top.
	DividerOffset = -20
	// TitleOffset is the baseline of the section title.
	TitleOffset = 10
	// GridOffset is where the first row of items starts.
	GridOffset = 50
)

// Geometry is the complete layout of one card.
type Geometry struct {
	Width  int
	Height int

	BadgeCount         int
	BadgeRows          int
	BadgeSectionTop    int
	BadgeSectionHeight int

	CertCount         int
	CertDisplayed     int
	CertOverflow      int
	CertRows          int
	CertSectionTop    int
	CertSectionHeight int
}

// Point is an absolute position on the canvas.
type Point struct {
	X int
	Y int
}

// Compute returns the geometry for a card with the given record counts.
// Negative counts are treated as zero.
func Compute(badgeCount, certCount int) Geometry {
	badgeCount = max(0, badgeCount)
	certCount = max(0, certCount)

	g := Geometry{
		Width:         Width,
		BadgeCount:    badgeCount,
		CertCount:     certCount,
		CertDisplayed: min(certCount, CertMaxDisplayed),
	}
	g.CertOverflow = certCount - g.CertDisplayed

	g.BadgeRows = ceilDiv(badgeCount, BadgeColumns)
	if badgeCount > 0 {
		g.BadgeSectionHeight = g.BadgeRows*BadgeRowPitch + BadgeSectionOverhead
	}

	g.CertRows = ceilDiv(g.CertDisplayed, CertColumns)
	if g.CertDisplayed > 0 {
		g.CertSectionHeight = g.CertRows*CertRowPitch + CertSectionOverhead
	}

	g.BadgeSectionTop = HeaderHeight + Padding
	g.CertSectionTop = g.BadgeSectionTop + g.BadgeSectionHeight
	g.Height = HeaderHeight + g.BadgeSectionHeight + g.CertSectionHeight + 2*Padding

	return g
}

// HasBadges reports whether the badge section is drawn.
func (g Geometry) HasBadges() bool {
	return g.BadgeSectionHeight > 0
}

// HasCertificates reports whether the certificate section is drawn.
func (g Geometry) HasCertificates() bool {
	return g.CertSectionHeight > 0
}

// BadgeOrigin returns the top-left corner of the i-th badge cell.
func (g Geometry) BadgeOrigin(i int) Point {
	col, row := i%BadgeColumns, i/BadgeColumns
	return Point{
		X: Padding + col*BadgeColumnPitch,
		Y: g.BadgeSectionTop + GridOffset + row*BadgeRowPitch,
	}
}

// CertOrigin returns the top-left corner of the i-th certificate card.
func (g Geometry) CertOrigin(i int) Point {
	col, row := i%CertColumns, i/CertColumns
	return Point{
		X: Padding + col*CertColumnPitch,
		Y: g.CertSectionTop + GridOffset + row*CertRowPitch,
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
