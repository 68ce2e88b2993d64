package ui

import "strings"

// fit shortens value so it occupies at most limit characters, ellipsis
// included. Card titles use catalog.CardTitle instead; fit is for chrome.
func fit(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
