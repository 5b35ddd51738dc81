package parsing

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// scanPage walks a profile document and collects badge and certificate candidates in document order.
func scanPage(doc *goquery.Document, pageURL string) ([]badgeCandidate, []certificateCandidate) {
	base, _ := url.Parse(pageURL)

	var badges []badgeCandidate
	doc.Find(badgeRule.Selector).Each(func(_ int, s *goquery.Selection) {
		alt := strings.TrimSpace(s.AttrOr("alt", ""))
		src := imageSource(s)
		if !containsFold(alt, badgeRule.Token) && !containsFold(src, badgeRule.Token) {
			return
		}

		title := alt
		if title == "" {
			title = strings.TrimSpace(s.AttrOr("title", ""))
		}
		badges = append(badges, badgeCandidate{
			title:    title,
			imageURL: resolve(base, src),
		})
	})

	var certs []certificateCandidate
	doc.Find(certificateRule.Selector).Each(func(_ int, s *goquery.Selection) {
		text := collapseSpace(s.Text())
		href := linkTarget(s)
		class := s.AttrOr("class", "")
		if !containsFold(text, certificateRule.Token) &&
			!containsFold(href, certificateRule.Token) &&
			!containsFold(class, certificateRule.Token) {
			return
		}
		if !withinBounds(text, certificateRule) || navigationLabels[strings.ToLower(text)] {
			return
		}

		certs = append(certs, certificateCandidate{
			title:   text,
			linkURL: resolve(base, href),
		})
	})

	return badges, certs
}

// linkTarget returns the element's own href, or the href of its first descendant link.
func linkTarget(s *goquery.Selection) string {
	if href := strings.TrimSpace(s.AttrOr("href", "")); href != "" {
		return href
	}
	return strings.TrimSpace(s.Find("a[href]").First().AttrOr("href", ""))
}

// imageSource reads the locator of an <img> or an SVG <image>.
func imageSource(s *goquery.Selection) string {
	for _, attr := range []string{"src", "href", "xlink:href", "data-src"} {
		if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return ""
}

func withinBounds(text string, rule PageRule) bool {
	n := utf8.RuneCountInString(text)
	if rule.MinTextLen > 0 && n < rule.MinTextLen {
		return false
	}
	if rule.MaxTextLen > 0 && n > rule.MaxTextLen {
		return false
	}
	return true
}

// resolve makes ref absolute against base. Unparseable refs and data URIs are dropped.
func resolve(base *url.URL, ref string) string {
	if ref == "" || strings.HasPrefix(strings.ToLower(ref), "javascript:") {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	return u.String()
}

func containsFold(s, token string) bool {
	return strings.Contains(strings.ToLower(s), token)
}
