package parsing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// badgesFromRecords maps structured badge objects onto candidates.
func badgesFromRecords(records []map[string]any) []badgeCandidate {
	out := make([]badgeCandidate, 0, len(records))
	for _, rec := range records {
		out = append(out, badgeCandidate{
			title:    firstString(rec, badgeTitleKeys),
			imageURL: firstString(rec, badgeImageKeys),
			stars:    firstInt(rec, badgeStarKeys),
		})
	}
	return out
}

// certificatesFromRecords maps structured certificate objects onto candidates.
func certificatesFromRecords(records []map[string]any) []certificateCandidate {
	out := make([]certificateCandidate, 0, len(records))
	for _, rec := range records {
		out = append(out, certificateCandidate{
			title:    firstString(rec, certTitleKeys),
			linkURL:  firstString(rec, certLinkKeys),
			category: firstString(rec, certCategoryKeys),
		})
	}
	return out
}

// firstString returns the first non-empty scalar value among keys, rendered as text.
func firstString(rec map[string]any, keys []string) string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64, json.Number, bool:
			return fmt.Sprint(v)
		}
	}
	return ""
}

// firstInt returns the first value among keys that reads as an integer.
func firstInt(rec map[string]any, keys []string) *int {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case float64:
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				n := int(v)
				return &n
			}
		case json.Number:
			if f, err := v.Float64(); err == nil {
				n := int(f)
				return &n
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return &n
			}
		}
	}
	return nil
}
