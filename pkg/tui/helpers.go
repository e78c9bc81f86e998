package tui

// truncateText truncates text to fit within maxLen runes
func truncateText(text string, maxLen int) string {
	r := []rune(text)
	if len(r) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(r[:max(maxLen, 0)])
	}
	return string(r[:maxLen-3]) + "..."
}

// chatBubbleMaxWidth is 80% of the available width, floored at 30 columns
// and capped at 120, never wider than the available width itself.
func chatBubbleMaxWidth(totalWidth int) int {
	w := totalWidth * 4 / 5
	if w < 30 {
		w = 30
	}
	if w > 120 {
		w = 120
	}
	if w > totalWidth {
		w = totalWidth
	}
	return w
}
