package search

import (
	"strings"
	"unicode"
)

// Ellipsis terminates excerpts cut mid-text.
const Ellipsis = "..."

// DefaultExcerptLength bounds excerpts when the caller gives no length.
const DefaultExcerptLength = 200

// wordBoundaryFloor is the fraction of maxLength below which a whitespace
// boundary is too early to cut at, forcing a hard cut instead.
const wordBoundaryFloor = 0.8

// Excerpt bounds text to maxLength runes. Text longer than the bound is cut
// at the last whitespace boundary no earlier than 80% of maxLength (hard cut
// otherwise) and ellipsis-terminated. Shorter text passes through, gaining a
// terminal period when it does not already end in sentence punctuation.
// Every returned excerpt ends in the ellipsis or terminal punctuation and is
// at most maxLength+len(Ellipsis) runes long.
func Excerpt(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return terminate(text)
	}

	cut := runes[:maxLength]
	boundary := -1
	for i := len(cut) - 1; i >= 0; i-- {
		if unicode.IsSpace(cut[i]) {
			boundary = i
			break
		}
	}
	if boundary >= int(wordBoundaryFloor*float64(maxLength)) {
		cut = cut[:boundary]
	}
	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + Ellipsis
}

// terminate appends a terminal period unless the text already ends in
// sentence-terminal punctuation (ASCII or full-width) or an ellipsis.
func terminate(text string) string {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	if strings.HasSuffix(trimmed, Ellipsis) {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) > 0 {
		switch runes[len(runes)-1] {
		case '.', '!', '?', '。', '！', '？', '…':
			return trimmed
		}
	}
	return trimmed + "."
}
