// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/achievement-card/internal/layout"
	"github.com/jonathan/achievement-card/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBadges outputs the classified badges with their star ratings.
func (p *Printer) PrintBadges(badges []types.BadgeRecord) {
	if len(badges) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total badges: %d\n\n", len(badges)))

	count := min(len(badges), maxItemsToShow)
	for i := 0; i < count; i++ {
		b := badges[i]
		sb.WriteString(fmt.Sprintf("• %s\n", clip(b.Title, 40)))
		sb.WriteString(fmt.Sprintf("  %s  [%s]\n", stars(b.DisplayStars()), b.Category))
	}

	if len(badges) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more badges", len(badges)-maxItemsToShow))
	}

	p.printBox("BADGES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertificates outputs the classified certificates.
func (p *Printer) PrintCertificates(certs []types.CertificateRecord) {
	if len(certs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total certificates: %d\n\n", len(certs)))

	count := min(len(certs), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := certs[i]
		sb.WriteString(fmt.Sprintf("• %s\n", clip(c.Title, 40)))
		line := fmt.Sprintf("  %s [%s]", c.TypeLabel, c.Category)
		if c.Verified {
			line += " ✓verified"
		}
		sb.WriteString(line + "\n")
	}

	if len(certs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more certificates", len(certs)-maxItemsToShow))
	}

	p.printBox("CERTIFICATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGeometry outputs the computed card dimensions.
func (p *Printer) PrintGeometry(g layout.Geometry) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Canvas:        %d x %d\n", g.Width, g.Height))
	if g.HasBadges() {
		sb.WriteString(fmt.Sprintf("Badge rows:    %d (top %d, height %d)\n", g.BadgeRows, g.BadgeSectionTop, g.BadgeSectionHeight))
	}
	if g.HasCertificates() {
		sb.WriteString(fmt.Sprintf("Cert rows:     %d (top %d, height %d)\n", g.CertRows, g.CertSectionTop, g.CertSectionHeight))
		if g.CertOverflow > 0 {
			sb.WriteString(fmt.Sprintf("Not shown:     %d certificates\n", g.CertOverflow))
		}
	}
	p.printBox("CARD LAYOUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs every section for a classified profile.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProfile(username string, profile types.ProfileData, g layout.Geometry) {
	fmt.Fprintf(p.out, "Profile @%s: %d badges, %d certificates, %d skills\n",
		username, len(profile.Badges), len(profile.Certificates), profile.SkillCount)
	p.PrintBadges(profile.Badges)
	p.PrintCertificates(profile.Certificates)
	p.PrintGeometry(g)
}

func stars(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", types.MaxDisplayStars-n)
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
